package books

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Searcher is implemented by *Client and can be replaced in tests.
type Searcher interface {
	Search(ctx context.Context, term string) ([]Book, error)
}

// Ensure Client implements Searcher at compile time.
var _ Searcher = (*Client)(nil)

// Options configure a Client.
type Options struct {
	Endpoint       string // empty uses DefaultEndpoint
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
	Logger         zerolog.Logger
}

// Client runs book searches against the volumes API.
type Client struct {
	endpoint string
	fetcher  *Fetcher
	log      zerolog.Logger
}

// NewClient validates the endpoint and builds a Client.
func NewClient(opts Options) (*Client, error) {
	endpoint, err := normalizeEndpoint(opts.Endpoint)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: endpoint,
		fetcher: NewFetcher(FetcherOptions{
			ConnectTimeout: opts.ConnectTimeout,
			ReadTimeout:    opts.ReadTimeout,
			UserAgent:      opts.UserAgent,
		}),
		log: opts.Logger.With().Str("component", "books").Logger(),
	}, nil
}

// Endpoint returns the normalized search endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// QueryURL returns the URL a search for term will request.
func (c *Client) QueryURL(term string) string {
	return BuildQueryURL(c.endpoint, term)
}

// Search builds the query, fetches it and parses the body. On any failure the
// returned slice is empty and the error says which stage failed.
func (c *Client) Search(ctx context.Context, term string) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	log := c.log.With().
		Str("request_id", uuid.NewString()).
		Str("term", term).
		Logger()
	start := time.Now()
	target := c.QueryURL(term)
	log.Debug().Str("url", target).Msg("search started")

	body, err := c.fetcher.Fetch(ctx, target)
	if err != nil {
		evt := log.Warn().Err(err).Dur("took", time.Since(start))
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			evt = evt.Int("status", statusErr.Code)
		}
		evt.Msg("search fetch failed")
		return nil, fmt.Errorf("fetch volumes: %w", err)
	}

	found, skipped, err := parse(body)
	for _, s := range skipped {
		log.Debug().Int("item", s.Index).Str("reason", s.Reason).Msg("skipped malformed item")
	}
	if err != nil {
		log.Warn().Err(err).Int("bytes", len(body)).Dur("took", time.Since(start)).Msg("search parse failed")
		return nil, fmt.Errorf("parse volumes: %w", err)
	}

	log.Info().
		Int("results", len(found)).
		Int("skipped", len(skipped)).
		Dur("took", time.Since(start)).
		Msg("search finished")
	return found, nil
}

// SearchBooks is the compatibility surface for presentation code: failures are
// logged by Search and collapse into an empty result.
func (c *Client) SearchBooks(ctx context.Context, term string) []Book {
	found, err := c.Search(ctx, term)
	if err != nil {
		return nil
	}
	return found
}
