package gigapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigdesk/internal/gigapi"
)

func newClient(t *testing.T, srv *httptest.Server) *gigapi.Client {
	t.Helper()
	client, err := gigapi.New(gigapi.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, srv.Client())
	require.NoError(t, err)
	return client
}

func TestClient_BearerAndContentType(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"email":"org@example.com","name":"Org"}`))
	}))
	defer srv.Close()

	client := newClient(t, srv).WithToken("tok-123")

	profile, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, int64(7), profile.ID)
}

func TestClient_WithTokenDoesNotMutateReceiver(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	base := newClient(t, srv)
	_ = base.WithToken("tok-123")

	_, err := base.Profile(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "bare client must not send Authorization")
}

func TestClient_NoContentResolvesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newClient(t, srv).WithToken("tok")

	err := client.PublishGig(context.Background(), 42)
	assert.NoError(t, err)

	// 204 with a typed target must not attempt a decode either
	var out struct{ Whatever string }
	err = client.Request(context.Background(), http.MethodGet, "/api/organizer/profile", nil, nil, nil, &out)
	assert.NoError(t, err)
	assert.Empty(t, out.Whatever)
}

func TestClient_NonSuccessBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gig not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newClient(t, srv).WithToken("tok")

	_, err := client.Gig(context.Background(), 99)
	require.Error(t, err)

	var apiErr *gigapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "gig not found")
	assert.True(t, gigapi.IsNotFound(err))
	assert.False(t, gigapi.IsUnauthorized(err))
}

func TestClient_CallerHeadersMerged(t *testing.T) {
	var gotRequestID, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newClient(t, srv)

	headers := http.Header{}
	headers.Set("X-Request-ID", "req-1")
	err := client.Request(context.Background(), http.MethodGet, "/api/organizer/profile", nil, headers, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "req-1", gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClient_PaginationAndQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content":[{"id":1,"title":"Jazz night","status":"OPEN"}],
			"totalElements":1,"totalPages":1,"size":20,"number":0,"first":true,"last":true
		}`))
	}))
	defer srv.Close()

	client := newClient(t, srv).WithToken("tok")

	page, err := client.Gigs(context.Background(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, "0", gotQuery.Get("page"))
	assert.Equal(t, "20", gotQuery.Get("size"))
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Jazz night", page.Content[0].Title)
	assert.True(t, page.Last)
}

func TestClient_InvalidBaseURL(t *testing.T) {
	_, err := gigapi.New(gigapi.Config{BaseURL: "not a url"}, nil)
	assert.Error(t, err)
}
