package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agritalk/cropmd/internal/account"
	"github.com/agritalk/cropmd/internal/app/web"
	platformhttp "github.com/agritalk/cropmd/internal/platform/http"
	"github.com/agritalk/cropmd/internal/platform/i18n"
	"github.com/agritalk/cropmd/internal/platform/metrics"
	"github.com/agritalk/cropmd/internal/reviewing"
	"github.com/agritalk/cropmd/internal/reviewing/storage"
)

type Server struct {
	Config  Config
	HTTP    *http.Server
	Reviews *reviewing.Store

	backend storage.Backend
}

// Stop will shut down the server safely, the review store writes anything
// still queued before the storage is closed.
func (s *Server) Stop(ctx context.Context) error {
	return errors.Join(
		s.HTTP.Shutdown(ctx),
		s.Reviews.Close(),
		s.backend.Close(),
	)
}

// Start wires up the app and starts running it
func Start(ctx context.Context, cfg Config) (*Server, error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	backend, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	reviews := reviewing.NewStore(
		backend,
		reviewing.WithKey(cfg.Storage.Key),
		reviewing.WithRetry(cfg.Persist.MaxRetries, cfg.Persist.InitialBackoff),
		reviewing.WithMetrics(metrics.NewStore(registry)),
	)
	if err := reviews.Load(ctx); err != nil {
		var decodeErr *reviewing.DeserializationError
		if !errors.As(err, &decodeErr) {
			_ = backend.Close()
			return nil, fmt.Errorf("failed to load reviews: %w", err)
		}
		// The store starts over empty, the next change overwrites what couldn't be read.
		slog.Error("stored reviews are unreadable, starting with none", "error", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		_ = reviews.Close()
		_ = backend.Close()
		return nil, fmt.Errorf("failed to listen to %q: %w", cfg.Addr, err)
	}
	cfg.Addr = ln.Addr().String() // In case cfg.Addr was random we'll update the config to point to what we ended up using

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(platformhttp.RequestLogger("cropmd", cfg.SlogLevel(), cfg.LogJSON))
	r.Use(web.Language(i18n.Parse(cfg.Language)))

	platformhttp.PublicAssets(r)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/language", web.LanguageHandler())
	r.Group(web.AccountsHandler(account.NewService()))
	r.Group(web.PagesHandler())
	r.Route("/reviews", web.ReviewsHandler(reviews))

	server := http.Server{}
	server.BaseContext = func(_ net.Listener) context.Context { return ctx }
	server.Handler = r

	go (func() {
		_ = server.Serve(ln)
	})()

	return &Server{
		Config:  cfg,
		HTTP:    &server,
		Reviews: reviews,
		backend: backend,
	}, nil
}
