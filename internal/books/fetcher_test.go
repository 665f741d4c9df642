package books

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_ReturnsBodyOn200(t *testing.T) {
	t.Parallel()

	var gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	t.Cleanup(server.Close)

	body, err := NewFetcher(FetcherOptions{}).Fetch(context.Background(), server.URL+"/volumes?q=x")
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, body)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
}

func TestFetcher_Non200YieldsEmptyBodyAndStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	body, err := NewFetcher(FetcherOptions{}).Fetch(context.Background(), server.URL+"/missing")
	assert.Empty(t, body)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr), "err = %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "404")

	parsed, parseErr := Parse(body)
	assert.Empty(t, parsed)
	assert.ErrorIs(t, parseErr, ErrEmptyBody)
}

func TestFetcher_MalformedURL(t *testing.T) {
	f := NewFetcher(FetcherOptions{})
	for _, raw := range []string{"://nope", "ftp://example.com/file", "not a url"} {
		body, err := f.Fetch(context.Background(), raw)
		assert.Empty(t, body, raw)
		assert.Error(t, err, raw)
	}
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := server.URL
	server.Close()

	body, err := NewFetcher(FetcherOptions{ConnectTimeout: time.Second}).Fetch(context.Background(), addr)
	assert.Empty(t, body)
	assert.Error(t, err)
}

func TestFetcher_ReadTimeoutOnStalledBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"items":[`))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	f := NewFetcher(FetcherOptions{ReadTimeout: 50 * time.Millisecond})
	start := time.Now()
	body, err := f.Fetch(context.Background(), server.URL)
	assert.Empty(t, body)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFetcher_ContextCancel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	t.Cleanup(cancel)

	body, err := NewFetcher(FetcherOptions{}).Fetch(ctx, server.URL)
	assert.Empty(t, body)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetcher_NilReceiver(t *testing.T) {
	var f *Fetcher
	_, err := f.Fetch(context.Background(), "http://example.com")
	assert.Error(t, err)
}
