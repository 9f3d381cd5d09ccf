// Package site parses site command flags and composes the server.
package site

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/datalab/internal/content"
	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/particles"
	entrypoint "github.com/louisbranch/datalab/internal/platform/cmd"
	"github.com/louisbranch/datalab/internal/platform/timeouts"
	sitesvc "github.com/louisbranch/datalab/internal/services/site"
	"github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/typing"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr       string        `env:"SITE_HTTP_ADDR"       envDefault:"localhost:8080"`
	ContentDir     string        `env:"SITE_CONTENT_DIR"`
	ContentDSN     string        `env:"SITE_CONTENT_DSN"`
	WatchContent   bool          `env:"SITE_CONTENT_WATCH"`
	Particles      int           `env:"SITE_PARTICLES"       envDefault:"80"`
	FPS            int           `env:"SITE_FPS"             envDefault:"60"`
	FieldWidth     float64       `env:"SITE_FIELD_WIDTH"     envDefault:"1200"`
	FieldHeight    float64       `env:"SITE_FIELD_HEIGHT"    envDefault:"800"`
	StreamInterval time.Duration `env:"SITE_STREAM_INTERVAL" envDefault:"100ms"`
	Phrases        []string      `env:"SITE_TYPING_PHRASES"  envSeparator:"|"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentDir, "content-dir", cfg.ContentDir, "directory with projects.yaml, members.yaml and department.yaml")
	fs.StringVar(&cfg.ContentDSN, "content-dsn", cfg.ContentDSN, "SQLite content database; overrides -content-dir")
	fs.BoolVar(&cfg.WatchContent, "watch-content", cfg.WatchContent, "reload -content-dir when its YAML files change")
	fs.IntVar(&cfg.Particles, "particles", cfg.Particles, "hero particle count")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "hero animation frames per second")
	fs.DurationVar(&cfg.StreamInterval, "stream-interval", cfg.StreamInterval, "hero event stream period")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.WatchContent && (strings.TrimSpace(cfg.ContentDir) == "" || strings.TrimSpace(cfg.ContentDSN) != "") {
		return Config{}, errors.New("watch-content needs -content-dir and no -content-dsn")
	}
	if cfg.Particles < 0 {
		return Config{}, fmt.Errorf("particles must not be negative, got %d", cfg.Particles)
	}
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.FieldWidth <= 0 || cfg.FieldHeight <= 0 {
		return Config{}, fmt.Errorf("field size must be positive, got %vx%v", cfg.FieldWidth, cfg.FieldHeight)
	}
	return cfg, nil
}

// Location returns the configured content location.
func (c Config) Location() content.Location {
	return content.Location{Dir: c.ContentDir, DSN: c.ContentDSN}
}

// Run loads content, builds the server and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		server, err := NewServer(ctx, cfg)
		if err != nil {
			return err
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

// NewServer loads content and wires the hero loops into a site server.
func NewServer(ctx context.Context, cfg Config) (*sitesvc.Server, error) {
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.ContentLoad)
	defer cancel()
	location := cfg.Location()
	store, err := location.Open(loadCtx)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	log.Printf("content loaded source=%s projects=%d members=%d", location, len(store.Projects()), len(store.Members()))

	var siteContent module.Content = store
	var watch func(context.Context) error
	if cfg.WatchContent {
		live := content.NewLive(location, store)
		siteContent = live
		watch = live.Watch
	}

	field := particles.New(cfg.FieldWidth, cfg.FieldHeight, particles.WithCount(cfg.Particles))
	server, err := sitesvc.NewServer(ctx, sitesvc.Config{
		HTTPAddr:       cfg.HTTPAddr,
		Content:        siteContent,
		ContentWatch:   watch,
		Animator:       particles.NewAnimator(field, particles.WithFPS(cfg.FPS)),
		Typewriter:     typing.New(cfg.Phrases),
		Submitter:      forms.LogSubmitter{Logger: log.Default()},
		StreamInterval: cfg.StreamInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init site server: %w", err)
	}
	return server, nil
}
