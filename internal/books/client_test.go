package books

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var logs bytes.Buffer
	c, err := NewClient(Options{
		Endpoint:    server.URL + "/books/v1/volumes",
		ReadTimeout: time.Second,
		Logger:      zerolog.New(&logs).Level(zerolog.DebugLevel),
	})
	require.NoError(t, err)
	return c, &logs
}

func TestClient_SearchEndToEnd(t *testing.T) {
	t.Parallel()

	var gotRawQuery string
	var gotQuery url.Values
	c, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoVolumes))
	})

	assert.Contains(t, c.QueryURL("harry potter"), "q=harry+potter")

	found, err := c.Search(context.Background(), "harry potter")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Harry Potter and the Philosopher's Stone", found[0].Title)
	assert.Equal(t, "Harry Potter and the Chamber of Secrets", found[1].Title)

	assert.Contains(t, gotRawQuery, "q=harry+potter")
	assert.Equal(t, "harry potter", gotQuery.Get("q"))
	assert.Equal(t, "paid-ebooks", gotQuery.Get("filter"))
	assert.Equal(t, "40", gotQuery.Get("maxResults"))

	assert.Contains(t, logs.String(), `"request_id"`)
	assert.Contains(t, logs.String(), "search finished")
}

func TestClient_SearchStatusError(t *testing.T) {
	t.Parallel()

	c, logs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	found, err := c.Search(context.Background(), "anything")
	assert.Empty(t, found)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.Code)
	assert.Contains(t, logs.String(), `"status":503`)
}

func TestClient_SearchMalformedBody(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"nope"}`))
	})

	found, err := c.Search(context.Background(), "x")
	assert.Empty(t, found)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_SearchBooksSwallowsFailures(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	assert.Empty(t, c.SearchBooks(context.Background(), "x"))
}

func TestClient_SearchBooksReturnsResults(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(twoVolumes))
	})
	assert.Len(t, c.SearchBooks(context.Background(), "harry potter"), 2)
}

func TestNewClient_RejectsBadEndpoint(t *testing.T) {
	_, err := NewClient(Options{Endpoint: "localhost:1234"})
	assert.Error(t, err)
}

func TestNewClient_DefaultEndpoint(t *testing.T) {
	c, err := NewClient(Options{Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, c.Endpoint())
}
