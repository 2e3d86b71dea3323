package gigs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Gigs(ctx context.Context, page, size int) (gigapi.Page[gigapi.Gig], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(gigapi.Page[gigapi.Gig]), args.Error(1)
}

func (m *MockGateway) Gig(ctx context.Context, gigID int64) (gigapi.Gig, error) {
	args := m.Called(ctx, gigID)
	return args.Get(0).(gigapi.Gig), args.Error(1)
}

func (m *MockGateway) CreateGig(ctx context.Context, req gigapi.GigRequest) (gigapi.Gig, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(gigapi.Gig), args.Error(1)
}

func (m *MockGateway) UpdateGig(ctx context.Context, gigID int64, req gigapi.GigRequest) (gigapi.Gig, error) {
	args := m.Called(ctx, gigID, req)
	return args.Get(0).(gigapi.Gig), args.Error(1)
}

func (m *MockGateway) PublishGig(ctx context.Context, gigID int64) error {
	args := m.Called(ctx, gigID)
	return args.Error(0)
}

func (m *MockGateway) CompleteGig(ctx context.Context, gigID int64) error {
	args := m.Called(ctx, gigID)
	return args.Error(0)
}

func (m *MockGateway) CancelGig(ctx context.Context, gigID int64, reason string) error {
	args := m.Called(ctx, gigID, reason)
	return args.Error(0)
}

func (m *MockGateway) GigApplications(ctx context.Context, gigID int64, page, size int) (gigapi.Page[gigapi.Application], error) {
	args := m.Called(ctx, gigID, page, size)
	return args.Get(0).(gigapi.Page[gigapi.Application]), args.Error(1)
}

func serviceWith(gateway Gateway) *Service {
	return NewService(func(string) Gateway { return gateway }, inflight.New()).
		WithLocation(time.FixedZone("UTC+2", 2*60*60))
}

func TestService_Create_NormalizesTimestamps(t *testing.T) {
	gateway := new(MockGateway)

	var captured gigapi.GigRequest
	gateway.On("CreateGig", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(gigapi.GigRequest) }).
		Return(gigapi.Gig{ID: 1, Status: gigapi.GigStatusDraft}, nil)

	service := serviceWith(gateway)

	input := GigInput{
		Title:               "Jazz night",
		Category:            "LIVE_MUSIC",
		Location:            "Berlin",
		EventDate:           "2025-06-01T20:00",
		ApplicationDeadline: "2025-05-20T12:00",
		PriceAmount:         25000,
		Currency:            "EUR",
		PriceType:           "FIXED",
		PaymentMethod:       "BANK_TRANSFER",
	}

	gig, err := service.Create(context.Background(), "tok", input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gig.ID)
	// bare local input in UTC+2 is shifted to UTC
	assert.Equal(t, "2025-06-01T18:00:00Z", captured.EventDate)
	assert.Equal(t, "2025-05-20T10:00:00Z", captured.ApplicationDeadline)
}

func TestService_Create_DeadlineAfterEvent(t *testing.T) {
	service := serviceWith(new(MockGateway))

	input := GigInput{
		Title:               "Jazz night",
		EventDate:           "2025-06-01T20:00",
		ApplicationDeadline: "2025-06-02T12:00",
		PriceAmount:         25000,
	}

	_, err := service.Create(context.Background(), "tok", input)
	assert.ErrorIs(t, err, ErrDeadlineAfterEvent)
}

func TestService_Create_NonPositivePrice(t *testing.T) {
	service := serviceWith(new(MockGateway))

	input := GigInput{Title: "Jazz night", EventDate: "2025-06-01T20:00", PriceAmount: 0}

	_, err := service.Create(context.Background(), "tok", input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_UnparseableDateFallsBackToRaw(t *testing.T) {
	gateway := new(MockGateway)

	var captured gigapi.GigRequest
	gateway.On("CreateGig", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(gigapi.GigRequest) }).
		Return(gigapi.Gig{ID: 1}, nil)

	service := serviceWith(gateway)

	input := GigInput{Title: "Jazz night", EventDate: "sometime in June", PriceAmount: 100}

	_, err := service.Create(context.Background(), "tok", input)
	require.NoError(t, err)
	assert.Equal(t, "sometime in June", captured.EventDate)
}

func TestService_Cancel_RequiresReason(t *testing.T) {
	service := serviceWith(new(MockGateway))

	_, err := service.Cancel(context.Background(), "tok", 5, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestService_Publish_RefetchesDetail(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("PublishGig", mock.Anything, int64(5)).Return(nil)
	gateway.On("Gig", mock.Anything, int64(5)).
		Return(gigapi.Gig{ID: 5, Status: gigapi.GigStatusOpen}, nil)
	gateway.On("GigApplications", mock.Anything, int64(5), 0, applicationPageSize).
		Return(gigapi.Page[gigapi.Application]{}, nil)

	service := serviceWith(gateway)

	detail, err := service.Publish(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.Equal(t, gigapi.GigStatusOpen, detail.Gig.Status)
	assert.NotNil(t, detail.Applications)
	gateway.AssertExpectations(t)
}

func TestService_Publish_FailureDoesNotRefetch(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("PublishGig", mock.Anything, int64(5)).
		Return(&gigapi.APIError{StatusCode: 409, Body: "not a draft"})

	service := serviceWith(gateway)

	_, err := service.Publish(context.Background(), "tok", 5)
	require.Error(t, err)
	assert.True(t, gigapi.IsStatus(err, 409))
	gateway.AssertNotCalled(t, "Gig", mock.Anything, mock.Anything)
}

func TestService_Transition_InFlightExclusivity(t *testing.T) {
	gateway := new(MockGateway)

	started := make(chan struct{})
	release := make(chan struct{})
	gateway.On("CompleteGig", mock.Anything, int64(5)).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil)
	gateway.On("Gig", mock.Anything, int64(5)).Return(gigapi.Gig{ID: 5}, nil)
	gateway.On("GigApplications", mock.Anything, int64(5), 0, applicationPageSize).
		Return(gigapi.Page[gigapi.Application]{}, nil)
	gateway.On("PublishGig", mock.Anything, int64(5)).Return(nil)
	gateway.On("PublishGig", mock.Anything, int64(6)).Return(nil)
	gateway.On("Gig", mock.Anything, int64(6)).Return(gigapi.Gig{ID: 6}, nil)
	gateway.On("GigApplications", mock.Anything, int64(6), 0, applicationPageSize).
		Return(gigapi.Page[gigapi.Application]{}, nil)

	service := serviceWith(gateway)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = service.Complete(context.Background(), "tok", 5)
	}()
	<-started

	// same gig is blocked while the first action runs
	_, err := service.Publish(context.Background(), "tok", 5)
	assert.ErrorIs(t, err, ErrActionInFlight)

	// a different gig is not affected
	_, err = service.Publish(context.Background(), "tok", 6)
	assert.NoError(t, err)

	close(release)
	wg.Wait()

	// and the key is released afterwards
	_, err = service.Publish(context.Background(), "tok", 5)
	assert.NoError(t, err)
}

func TestFilterGigs_Idempotent(t *testing.T) {
	list := []gigapi.Gig{
		{ID: 1, Title: "Jazz night", Status: gigapi.GigStatusOpen},
		{ID: 2, Title: "Rock festival", Status: gigapi.GigStatusDraft},
		{ID: 3, Title: "Late night jam", Status: gigapi.GigStatusOpen},
	}

	once := FilterGigs(list, "night", gigapi.GigStatusOpen)
	twice := FilterGigs(once, "night", gigapi.GigStatusOpen)
	assert.Equal(t, once, twice)
	require.Len(t, once, 2)
	assert.Equal(t, int64(1), once[0].ID)
	assert.Equal(t, int64(3), once[1].ID)
}

func TestFilterGigs_AllStatusShortCircuits(t *testing.T) {
	list := []gigapi.Gig{
		{ID: 1, Status: gigapi.GigStatusOpen},
		{ID: 2, Status: gigapi.GigStatusCancelled},
	}

	assert.Len(t, FilterGigs(list, "", "all"), 2)
	assert.Len(t, FilterGigs(list, "", ""), 2)
	assert.Len(t, FilterGigs(list, "", "ALL"), 2)
}

func TestPartitionGigs_CompleteAndDisjoint(t *testing.T) {
	list := []gigapi.Gig{
		{ID: 1, Status: gigapi.GigStatusOpen},
		{ID: 2, Status: gigapi.GigStatusDraft},
		{ID: 3, Status: gigapi.GigStatusOpen},
		{ID: 4, Status: gigapi.GigStatusCancelled},
	}

	buckets := PartitionGigs(list)

	total := 0
	seen := map[int64]int{}
	for _, bucket := range buckets {
		total += len(bucket)
		for _, gig := range bucket {
			seen[gig.ID]++
		}
	}
	assert.Equal(t, len(list), total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "gig %d must land in exactly one bucket", id)
	}
	assert.Len(t, buckets[gigapi.GigStatusOpen], 2)
	// empty buckets are present so the UI can render empty tabs
	assert.NotNil(t, buckets[gigapi.GigStatusBooked])
}
