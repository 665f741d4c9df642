package books

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultConnectTimeout bounds dialing the API host.
	DefaultConnectTimeout = 15 * time.Second

	// DefaultReadTimeout bounds each read from an established connection.
	DefaultReadTimeout = 10 * time.Second

	defaultUserAgent = "booklist/0.1"
	drainLimit       = 64 * 1024
)

// FetcherOptions configure a Fetcher. Zero values use the defaults.
type FetcherOptions struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	UserAgent      string
}

// Fetcher performs the single blocking GET behind a search.
type Fetcher struct {
	http      *http.Client
	userAgent string
}

// NewFetcher builds a Fetcher whose transport enforces the connect timeout at
// dial time and the read timeout on every socket read.
func NewFetcher(opts FetcherOptions) *Fetcher {
	connectTimeout := opts.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	dialer := &net.Dialer{Timeout: connectTimeout}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return &readTimeoutConn{Conn: conn, timeout: readTimeout}, nil
		},
		TLSHandshakeTimeout:   connectTimeout,
		ResponseHeaderTimeout: readTimeout,
		MaxIdleConns:          4,
		IdleConnTimeout:       30 * time.Second,
	}

	return &Fetcher{
		http:      &http.Client{Transport: transport},
		userAgent: userAgent,
	}
}

// Fetch returns the body of rawURL when the server answers 200. Any other
// status yields an empty body and a *StatusError; transport failures yield an
// empty body and a wrapped error. The response body is always closed.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f == nil {
		return "", fmt.Errorf("fetcher is nil")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("parse url: unsupported scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
		return "", &StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}

// readTimeoutConn pushes the read deadline forward before every Read, so a
// stalled server trips the timeout while a slow but steady one does not.
type readTimeoutConn struct {
	net.Conn
	timeout time.Duration
}

func (c *readTimeoutConn) Read(p []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}
	return c.Conn.Read(p)
}
