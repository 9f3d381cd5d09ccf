package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/datalab/internal/cli"
	"github.com/louisbranch/datalab/internal/cli/formatter"
	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/platform/config"
	"github.com/mattn/go-isatty"
)

// env mirrors the site's content settings so both commands read the same data.
type env struct {
	ContentDir string `env:"SITE_CONTENT_DIR"`
	ContentDSN string `env:"SITE_CONTENT_DSN"`
}

func main() {
	if err := run(); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var e env
	if err := config.ParseEnv(&e); err != nil {
		return err
	}

	app := &cli.App{
		Location: content.Location{Dir: e.ContentDir, DSN: e.ContentDSN},
		Styler: formatter.Styler{
			Color: os.Getenv("NO_COLOR") == "" &&
				(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())),
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
