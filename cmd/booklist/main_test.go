package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/booklist/internal/app"
	"github.com/five82/booklist/internal/books"
)

var sample = []books.Book{
	{Title: "Dune", Author: "Frank Herbert", PurchaseURL: "https://buy/dune", CoverURL: "https://cover/dune"},
	{Title: "Dune Messiah", Author: books.NoAuthor, PurchaseURL: "https://buy/messiah", CoverURL: "https://cover/messiah"},
}

type call struct {
	opts app.Options
	term string
}

func stubSearch(t *testing.T, found []books.Book, err error) *[]call {
	t.Helper()
	var calls []call
	orig := searchFunc
	searchFunc = func(ctx context.Context, opts app.Options, term string) ([]books.Book, error) {
		calls = append(calls, call{opts: opts, term: term})
		return found, err
	}
	t.Cleanup(func() { searchFunc = orig })
	return &calls
}

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp()
	a.Writer = &stdout
	a.ErrWriter = &stderr
	err := a.RunContext(context.Background(), append([]string{"booklist"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestSearchCommand_Text(t *testing.T) {
	calls := stubSearch(t, sample, nil)

	out, _, err := runApp(t, "--config", "/tmp/c.toml", "--log-level", "debug", "search", "frank", "herbert")
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, "frank herbert", got.term)
	assert.Equal(t, "/tmp/c.toml", got.opts.ConfigPath)
	assert.Equal(t, "debug", got.opts.LogLevel)
	assert.Nil(t, got.opts.Console)

	want := "Dune\n  by Frank Herbert\n  Buy:   https://buy/dune\n  Cover: https://cover/dune\n" +
		"\n" +
		"Dune Messiah\n  by No author\n  Buy:   https://buy/messiah\n  Cover: https://cover/messiah\n"
	assert.Equal(t, want, out)
}

func TestSearchCommand_JSON(t *testing.T) {
	stubSearch(t, sample, nil)

	out, _, err := runApp(t, "search", "--json", "dune")
	require.NoError(t, err)

	var decoded []books.Book
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sample, decoded)
	assert.Contains(t, out, `"purchaseUrl": "https://buy/dune"`)
}

func TestSearchCommand_JSONEmptyIsArray(t *testing.T) {
	stubSearch(t, nil, nil)

	out, _, err := runApp(t, "search", "--json", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestSearchCommand_NoResults(t *testing.T) {
	stubSearch(t, nil, nil)

	out, _, err := runApp(t, "search", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "No books found.\n", out)
}

func TestSearchCommand_VerboseSetsConsole(t *testing.T) {
	calls := stubSearch(t, nil, nil)

	_, _, err := runApp(t, "search", "--verbose", "x")
	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.NotNil(t, (*calls)[0].opts.Console)
}

func TestSearchCommand_Errors(t *testing.T) {
	stubSearch(t, nil, errors.New("fetch volumes: boom"))

	_, _, err := runApp(t, "search", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, _, err = runApp(t, "search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terms")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "booklist dev\n", out)
}
