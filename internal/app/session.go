package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/booklist/internal/books"
	"github.com/five82/booklist/internal/config"
	"github.com/five82/booklist/internal/loader"
	"github.com/five82/booklist/internal/logging"
	"github.com/five82/booklist/internal/state"
)

// session holds the components shared by the TUI and the one-shot search.
type session struct {
	cfg    config.Config
	log    zerolog.Logger
	closer io.Closer
	client *books.Client
	store  *state.Store
	loader *loader.Loader
}

func newSession(opts Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		level = v
	}
	log, closer, err := logging.New(logging.Options{
		Level:   level,
		Path:    cfg.LogPath(),
		Console: opts.Console,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	userAgent := ""
	if opts.Version != "" {
		userAgent = "booklist/" + opts.Version
	}
	client, err := books.NewClient(books.Options{
		Endpoint:       cfg.APIURL,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
		UserAgent:      userAgent,
		Logger:         log,
	})
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("init books client: %w", err)
	}

	store := &state.Store{}
	l := loader.New(client.Search, loader.Hooks{
		Begin: func(term string, gen uint64) {
			store.Begin(term, gen)
		},
		Finish: func(r loader.Result) {
			store.Finish(r.Generation, r.Books, r.Err)
		},
	})

	log.Debug().
		Str("endpoint", client.Endpoint()).
		Dur("connect_timeout", cfg.ConnectTimeout).
		Dur("read_timeout", cfg.ReadTimeout).
		Str("log_path", cfg.LogPath()).
		Msg("session ready")

	return &session{
		cfg:    cfg,
		log:    log,
		closer: closer,
		client: client,
		store:  store,
		loader: l,
	}, nil
}

// Close cancels any running search and flushes the log file.
func (s *session) Close() error {
	s.loader.Cancel()
	return s.closer.Close()
}
