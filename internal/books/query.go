package books

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultEndpoint is the public Google Books volumes search endpoint.
	DefaultEndpoint = "https://www.googleapis.com/books/v1/volumes"

	// MaxResults caps a single search.
	MaxResults = 40

	saleFilter = "paid-ebooks"
)

// BuildQueryURL composes the search URL for term against endpoint.
// Spaces become '+'; nothing else is escaped.
func BuildQueryURL(endpoint, term string) string {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	terms := strings.ReplaceAll(term, " ", "+")

	var b strings.Builder
	b.WriteString(endpoint)
	b.WriteString("?q=")
	b.WriteString(terms)
	b.WriteString("&filter=")
	b.WriteString(saleFilter)
	b.WriteString("&maxResults=")
	b.WriteString(strconv.Itoa(MaxResults))
	return b.String()
}

// normalizeEndpoint validates a configured endpoint and strips any query or
// fragment so BuildQueryURL can append its own.
func normalizeEndpoint(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultEndpoint, nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("endpoint %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("endpoint %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}
