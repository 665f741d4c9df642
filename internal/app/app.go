package app

import (
	"context"
	"io"

	"github.com/five82/booklist/internal/books"
	"github.com/five82/booklist/internal/prefs"
	"github.com/five82/booklist/internal/ui"
)

// Options configure the booklist application.
type Options struct {
	ConfigPath string
	PrefsPath  string    // empty uses default ~/.config/booklist/prefs.toml
	LogLevel   string    // overrides log_level from the config when set
	Console    io.Writer // mirrors logs in human-readable form; never set for the TUI
	Version    string
}

// Run boots the booklist TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	opts.Console = nil
	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	s.log.Info().
		Str("version", opts.Version).
		Str("theme", userPrefs.Theme).
		Str("initial_query", s.cfg.InitialQuery).
		Msg("booklist starting")

	// Initial load; the UI picks the result up from the store on its next tick.
	s.loader.Start(ctx, s.cfg.InitialQuery, nil)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     s.store,
		Loader:    s.loader,
		LogPath:   s.cfg.LogPath(),
		Logger:    s.log,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	s.log.Info().Err(err).Msg("booklist stopped")
	return err
}

// Search runs a single search with the same wiring as the TUI. Fetch and
// parse failures are returned so the caller can report them.
func Search(ctx context.Context, opts Options, term string) ([]books.Book, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	res := s.loader.Run(ctx, term)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Books, nil
}
