package books

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	coverURLPrefix = "https://books.google.com/books/content/images/frontcover/"
	coverURLSuffix = "?fife=w300"
)

// skippedItem records why one entry of the items array was dropped.
type skippedItem struct {
	Index  int
	Reason string
}

// Parse converts a volumes response into books, preserving item order.
//
// A blank body yields ErrEmptyBody. A body that is not JSON, or that lacks a
// top-level items array, yields ErrMalformedResponse and no books. A response
// that reports totalItems of zero without an items array is an empty result,
// not an error. Individual items missing a required field are skipped.
func Parse(body string) ([]Book, error) {
	found, _, err := parse(body)
	return found, err
}

func parse(body string) ([]Book, []skippedItem, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil, ErrEmptyBody
	}
	if !gjson.Valid(body) {
		return nil, nil, fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	root := gjson.Parse(body)
	if !root.IsObject() {
		return nil, nil, fmt.Errorf("%w: top level is not an object", ErrMalformedResponse)
	}

	items := root.Get("items")
	if !items.Exists() {
		if total := root.Get("totalItems"); total.Type == gjson.Number && total.Int() == 0 {
			return nil, nil, nil
		}
	}
	if !items.IsArray() {
		return nil, nil, fmt.Errorf("%w: missing items array", ErrMalformedResponse)
	}

	var (
		out     []Book
		skipped []skippedItem
	)
	for i, item := range items.Array() {
		book, reason := parseItem(item)
		if reason != "" {
			skipped = append(skipped, skippedItem{Index: i, Reason: reason})
			continue
		}
		out = append(out, book)
	}
	return out, skipped, nil
}

func parseItem(item gjson.Result) (Book, string) {
	if !item.IsObject() {
		return Book{}, "item is not an object"
	}

	info := item.Get("volumeInfo")
	if !info.IsObject() {
		return Book{}, "missing volumeInfo"
	}

	title := info.Get("title")
	if title.Type != gjson.String || strings.TrimSpace(title.String()) == "" {
		return Book{}, "missing title"
	}

	links := info.Get("imageLinks")
	if !links.IsObject() {
		return Book{}, "missing imageLinks"
	}
	thumb := links.Get("smallThumbnail")
	if thumb.Type != gjson.String {
		thumb = links.Get("thumbnail")
	}
	id, ok := CoverID(thumb.String())
	if !ok {
		return Book{}, "thumbnail has no id"
	}

	sale := item.Get("saleInfo")
	if !sale.IsObject() {
		return Book{}, "missing saleInfo"
	}
	buy := sale.Get("buyLink")
	if buy.Type != gjson.String || strings.TrimSpace(buy.String()) == "" {
		return Book{}, "missing buyLink"
	}

	return Book{
		Title:       title.String(),
		Author:      firstAuthor(info.Get("authors")),
		CoverURL:    CoverURL(id),
		PurchaseURL: buy.String(),
	}, ""
}

func firstAuthor(authors gjson.Result) string {
	if !authors.IsArray() {
		return NoAuthor
	}
	first := authors.Get("0")
	if first.Type != gjson.String || strings.TrimSpace(first.String()) == "" {
		return NoAuthor
	}
	return first.String()
}

// CoverID extracts the volume id embedded in a thumbnail URL's id parameter.
func CoverID(thumbnail string) (string, bool) {
	thumbnail = strings.TrimSpace(thumbnail)
	if thumbnail == "" {
		return "", false
	}
	if u, err := url.Parse(thumbnail); err == nil {
		if id := u.Query().Get("id"); id != "" {
			return id, true
		}
	}

	// Fall back to a raw scan for thumbnails that do not parse as URLs.
	idx := strings.Index(thumbnail, "id=")
	if idx < 0 {
		return "", false
	}
	rest := thumbnail[idx+len("id="):]
	if end := strings.IndexAny(rest, "&#"); end >= 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// CoverURL composes the fixed-width front cover URL for a volume id.
func CoverURL(id string) string {
	return coverURLPrefix + id + coverURLSuffix
}
