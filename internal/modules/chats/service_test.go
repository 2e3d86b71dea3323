package chats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gigdesk/internal/gigapi"
	"gigdesk/internal/inflight"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Chats(ctx context.Context, page, size int) (gigapi.Page[gigapi.Chat], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(gigapi.Page[gigapi.Chat]), args.Error(1)
}

func (m *MockGateway) Chat(ctx context.Context, chatID int64) (gigapi.Chat, error) {
	args := m.Called(ctx, chatID)
	return args.Get(0).(gigapi.Chat), args.Error(1)
}

func (m *MockGateway) Messages(ctx context.Context, chatID int64, page, size int, since string) (gigapi.Page[gigapi.Message], error) {
	args := m.Called(ctx, chatID, page, size, since)
	return args.Get(0).(gigapi.Page[gigapi.Message]), args.Error(1)
}

func (m *MockGateway) SendMessage(ctx context.Context, chatID int64, content, messageType string) (gigapi.Message, error) {
	args := m.Called(ctx, chatID, content, messageType)
	return args.Get(0).(gigapi.Message), args.Error(1)
}

func (m *MockGateway) MarkChatRead(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockGateway) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func serviceWith(gateway Gateway) *Service {
	return NewService(func(string) Gateway { return gateway }, inflight.New())
}

func TestService_List_PartitionsAndSumsUnread(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("Chats", mock.Anything, 0, chatPageSize).Return(gigapi.Page[gigapi.Chat]{
		Content: []gigapi.Chat{
			{ID: 1, GigTitle: "Jazz night", Status: gigapi.ChatStatusActive, UnreadCount: 2},
			{ID: 2, GigTitle: "Rock festival", Status: gigapi.ChatStatusArchived, UnreadCount: 1},
			{ID: 3, GigTitle: "Late jam", Status: gigapi.ChatStatusActive},
		},
		Last: true,
	}, nil)

	list, err := serviceWith(gateway).List(context.Background(), "tok", ListQuery{})
	require.NoError(t, err)
	assert.Len(t, list.Chats, 3)
	assert.Equal(t, 3, list.TotalUnread)
	assert.Len(t, list.Buckets[gigapi.ChatStatusActive], 2)
	assert.Len(t, list.Buckets[gigapi.ChatStatusArchived], 1)
}

func TestService_List_FilterByPerformer(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("Chats", mock.Anything, 0, chatPageSize).Return(gigapi.Page[gigapi.Chat]{
		Content: []gigapi.Chat{
			{ID: 1, PerformerName: "Anna Blake", Status: gigapi.ChatStatusActive, UnreadCount: 2},
			{ID: 2, PerformerName: "Chris Doe", Status: gigapi.ChatStatusActive, UnreadCount: 5},
		},
		Last: true,
	}, nil)

	list, err := serviceWith(gateway).List(context.Background(), "tok", ListQuery{Search: "blake"})
	require.NoError(t, err)
	require.Len(t, list.Chats, 1)
	assert.Equal(t, int64(1), list.Chats[0].ID)
	// the badge counts all chats, not the filtered view
	assert.Equal(t, 7, list.TotalUnread)
}

func TestService_Thread_MarksReadAndClearsCounter(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("Chat", mock.Anything, int64(1)).
		Return(gigapi.Chat{ID: 1, UnreadCount: 4, Status: gigapi.ChatStatusActive}, nil)
	gateway.On("Messages", mock.Anything, int64(1), 0, defaultMessageSize, "").
		Return(gigapi.Page[gigapi.Message]{
			Content: []gigapi.Message{{ID: 100, ChatID: 1, Content: "hi"}},
			Last:    true,
		}, nil)
	gateway.On("MarkChatRead", mock.Anything, int64(1)).Return(nil)

	thread, err := serviceWith(gateway).Thread(context.Background(), "tok", 1, MessagesQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, thread.Chat.UnreadCount)
	require.Len(t, thread.Messages, 1)
	gateway.AssertExpectations(t)
}

func TestService_Thread_MarkReadFailureKeepsView(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("Chat", mock.Anything, int64(1)).
		Return(gigapi.Chat{ID: 1, UnreadCount: 4}, nil)
	gateway.On("Messages", mock.Anything, int64(1), 0, defaultMessageSize, "").
		Return(gigapi.Page[gigapi.Message]{Last: true}, nil)
	gateway.On("MarkChatRead", mock.Anything, int64(1)).
		Return(&gigapi.APIError{StatusCode: 500, Body: "boom"})

	thread, err := serviceWith(gateway).Thread(context.Background(), "tok", 1, MessagesQuery{})
	require.NoError(t, err)
	// the counter stays stale, the view still renders
	assert.Equal(t, 4, thread.Chat.UnreadCount)
	assert.NotNil(t, thread.Messages)
}

func TestService_Thread_UnknownChat(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("Chat", mock.Anything, int64(9)).
		Return(gigapi.Chat{}, &gigapi.APIError{StatusCode: 404, Body: "no such chat"})

	_, err := serviceWith(gateway).Thread(context.Background(), "tok", 9, MessagesQuery{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Send_EmptyContent(t *testing.T) {
	service := serviceWith(new(MockGateway))

	_, err := service.Send(context.Background(), "tok", 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestService_Send_UsesTextType(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("SendMessage", mock.Anything, int64(1), "see you at 8", gigapi.MessageTypeText).
		Return(gigapi.Message{ID: 100, ChatID: 1, Content: "see you at 8"}, nil)

	msg, err := serviceWith(gateway).Send(context.Background(), "tok", 1, "see you at 8")
	require.NoError(t, err)
	assert.Equal(t, int64(100), msg.ID)
	gateway.AssertExpectations(t)
}
