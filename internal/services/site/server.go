// Package site hosts the research-group web surface: the single page, its
// fragment endpoints and the background hero animations.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/datalab/internal/forms"
	"github.com/louisbranch/datalab/internal/particles"
	"github.com/louisbranch/datalab/internal/platform/timeouts"
	"github.com/louisbranch/datalab/internal/reveal"
	"github.com/louisbranch/datalab/internal/services/site/app"
	"github.com/louisbranch/datalab/internal/services/site/controller"
	module "github.com/louisbranch/datalab/internal/services/site/module"
	"github.com/louisbranch/datalab/internal/services/site/modules"
	"github.com/louisbranch/datalab/internal/services/site/platform/httpx"
	"github.com/louisbranch/datalab/internal/services/site/routepath"
	sitestatic "github.com/louisbranch/datalab/internal/services/site/static"
	"github.com/louisbranch/datalab/internal/typing"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/louisbranch/datalab/internal/services/site"

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr string
	Content  module.Content
	// Animator drives the hero particle field. Nil disables the field
	// endpoints and the frame loop.
	Animator *particles.Animator
	// Typewriter drives the hero typed text. Nil leaves the text empty.
	Typewriter *typing.Typewriter
	// ContentWatch runs alongside the server until its context ends, e.g.
	// content.Live.Watch. Nil disables it.
	ContentWatch   func(context.Context) error
	Submitter      forms.Submitter
	StreamInterval time.Duration
	Reveal         reveal.Options
	Logger         *log.Logger
}

// Server hosts the site HTTP surface and the background loops.
type Server struct {
	httpAddr     string
	httpServer   *http.Server
	animator     *particles.Animator
	typewriter   *typing.Typewriter
	contentWatch func(context.Context) error
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	deps := module.Dependencies{
		Content:        cfg.Content,
		Events:         controller.NewTable(cfg.Submitter, controller.WithLogger(logger)),
		Reveal:         cfg.Reveal,
		StreamInterval: cfg.StreamInterval,
		Logger:         logger,
	}
	if cfg.Animator != nil {
		deps.Field = cfg.Animator
	}
	if cfg.Typewriter != nil {
		deps.Typing = cfg.Typewriter
	}
	h, err := app.Compose(app.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.Static, http.StripPrefix(routepath.Static, http.FileServer(http.FS(sitestatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLogger(logger),
		httpx.Trace(tracerName),
	), nil
}

// NewServer validates config and constructs a site server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		animator:     cfg.Animator,
		typewriter:   cfg.Typewriter,
		contentWatch: cfg.ContentWatch,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener together with the animation loops.
// The first failure cancels the others; cancellation of ctx shuts everything
// down gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.animator != nil {
		g.Go(func() error {
			if err := s.animator.Run(gctx); err != nil {
				return fmt.Errorf("run particle animator: %w", err)
			}
			return nil
		})
	}
	if s.typewriter != nil {
		g.Go(func() error {
			if err := s.typewriter.Run(gctx); err != nil {
				return fmt.Errorf("run typewriter: %w", err)
			}
			return nil
		})
	}

	if s.contentWatch != nil {
		g.Go(func() error {
			if err := s.contentWatch(gctx); err != nil {
				return fmt.Errorf("watch content: %w", err)
			}
			return nil
		})
	}

	// Request contexts derive from gctx so open event streams end on shutdown.
	s.httpServer.BaseContext = func(net.Listener) context.Context { return gctx }
	serveErr := make(chan error, 1)
	g.Go(func() error {
		log.Printf("site listening addr=%s", listener.Addr())
		err := s.httpServer.Serve(listener)
		serveErr <- err
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve site http: %w", err)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-serveErr:
			return nil
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown site http server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close closes open server resources and stops the loops.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.animator != nil {
		s.animator.Stop()
	}
	if s.typewriter != nil {
		s.typewriter.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
