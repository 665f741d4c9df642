// Package books searches the Google Books volumes API for purchasable e-books.
//
// # Overview
//
// The package is the core of booklist: it turns a free-text term into a query
// URL, fetches the response with fixed connect and read timeouts, and parses
// the JSON body into an ordered slice of Book values.
//
// # Files
//
//   - book.go: the Book value, the "No author" sentinel and the error values
//   - query.go: query URL construction and endpoint validation
//   - fetcher.go: the HTTP GET with dial and per-read timeouts
//   - parser.go: the gjson walk over items / volumeInfo / imageLinks / saleInfo
//   - client.go: Search and SearchBooks, which tie the three together
//
// # Usage
//
//	client, err := books.NewClient(books.Options{Logger: log})
//	if err != nil {
//		return err
//	}
//	found, err := client.Search(ctx, "harry potter")
//	if err != nil {
//		// found is empty; err wraps *StatusError, ErrMalformedResponse, ...
//	}
//
// # Error Handling
//
// Nothing in this package retries. Search returns the first failure together
// with an empty slice:
//
//   - transport failures (dial, timeout, reset) are wrapped errors
//   - non-200 responses are *StatusError carrying the status code
//   - a blank body is ErrEmptyBody
//   - invalid JSON or a missing items array is ErrMalformedResponse
//
// SearchBooks collapses all of these into an empty slice for callers that only
// render "No books found."
//
// # Query Limitations
//
// Spaces in the term are replaced with '+'. Other characters are passed
// through unescaped, so a term containing '&' or '#' changes the query.
package books
