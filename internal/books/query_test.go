package books

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryURL_ReplacesSpaces(t *testing.T) {
	for _, term := range []string{"harry potter", " leading", "trailing ", "a  b   c", "one"} {
		got := BuildQueryURL("", term)
		assert.NotContains(t, got, " ", term)
		assert.True(t, strings.HasPrefix(got, DefaultEndpoint+"?q="), got)
	}
}

func TestBuildQueryURL_Template(t *testing.T) {
	got := BuildQueryURL(DefaultEndpoint, "harry potter")
	assert.Equal(t,
		"https://www.googleapis.com/books/v1/volumes?q=harry+potter&filter=paid-ebooks&maxResults=40",
		got)
}

func TestBuildQueryURL_EmptyTerm(t *testing.T) {
	got := BuildQueryURL("http://127.0.0.1:9999/volumes", "")
	assert.Equal(t, "http://127.0.0.1:9999/volumes?q=&filter=paid-ebooks&maxResults=40", got)
}

func TestBuildQueryURL_DoesNotEscapeOtherCharacters(t *testing.T) {
	got := BuildQueryURL("", "tom&jerry")
	assert.Contains(t, got, "q=tom&jerry&")
}

func TestNormalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, got)

	got, err = normalizeEndpoint("  http://127.0.0.1:8080/books/v1/volumes?key=x#frag ")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/books/v1/volumes", got)

	for _, bad := range []string{"ftp://example.com/v", "127.0.0.1:8080", "http:///nohost", "://"} {
		_, err := normalizeEndpoint(bad)
		assert.Error(t, err, bad)
	}
}
