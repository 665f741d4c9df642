package books

import (
	"errors"
	"fmt"
)

// NoAuthor is substituted when a volume lists no usable author.
const NoAuthor = "No author"

// Book is one parsed search result.
type Book struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	CoverURL    string `json:"coverUrl"`
	PurchaseURL string `json:"purchaseUrl"`
}

var (
	// ErrEmptyBody is returned by Parse when there is nothing to parse.
	ErrEmptyBody = errors.New("empty response body")

	// ErrMalformedResponse is returned by Parse when the body is not JSON or
	// has no top-level items array. The whole batch is discarded.
	ErrMalformedResponse = errors.New("malformed volumes response")
)

// StatusError reports a non-200 HTTP response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("volumes api returned status %d", e.Code)
}
