package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/five82/booklist/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp().RunContext(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "booklist: %v\n", err)
		return 1
	}
	return 0
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "booklist",
		Usage:       "Search Google Books for paid ebooks from the terminal",
		Version:     version,
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "override config path (default ~/.config/booklist/config.toml)",
			},
			&cli.StringFlag{
				Name:  "prefs",
				Usage: "override prefs path (default ~/.config/booklist/prefs.toml)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides log_level from the config)",
			},
		},
		Action: func(c *cli.Context) error {
			return app.Run(c.Context, globalOptions(c))
		},
		Commands: []*cli.Command{
			searchCommand(),
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprintf(c.App.Writer, "booklist %s\n", version)
					return err
				},
			},
		},
	}
}

func globalOptions(c *cli.Context) app.Options {
	return app.Options{
		ConfigPath: c.String("config"),
		PrefsPath:  c.String("prefs"),
		LogLevel:   c.String("log-level"),
		Version:    version,
	}
}
