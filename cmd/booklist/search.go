package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/five82/booklist/internal/app"
	"github.com/five82/booklist/internal/books"
)

// searchFunc is replaced in tests.
var searchFunc = app.Search

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Run one search and print the results",
		ArgsUsage: "<terms...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as a JSON array",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "mirror logs to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			term := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(term) == "" {
				return fmt.Errorf("search: no terms given")
			}

			opts := globalOptions(c)
			if c.Bool("verbose") {
				opts.Console = c.App.ErrWriter
			}

			found, err := searchFunc(c.Context, opts, term)
			if err != nil {
				return fmt.Errorf("search %q: %w", term, err)
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, found)
			}
			return writeText(c.App.Writer, found)
		},
	}
}

func writeJSON(w io.Writer, found []books.Book) error {
	if found == nil {
		found = []books.Book{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(found)
}

func writeText(w io.Writer, found []books.Book) error {
	if len(found) == 0 {
		_, err := fmt.Fprintln(w, "No books found.")
		return err
	}
	for i, b := range found {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n  by %s\n  Buy:   %s\n  Cover: %s\n",
			b.Title, b.Author, b.PurchaseURL, b.CoverURL); err != nil {
			return err
		}
	}
	return nil
}
