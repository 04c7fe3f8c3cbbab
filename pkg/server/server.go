package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/bureau-dashboard/pkg/handlers/dashboard"
	"github.com/de-tools/bureau-dashboard/pkg/metrics"
	dashboardmiddleware "github.com/de-tools/bureau-dashboard/pkg/server/middleware"
	"github.com/de-tools/bureau-dashboard/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Snapshot   handlers.StatusReader
	Controller dashboard.Controller
}

type Config struct {
	Addr            string
	BasePath        string
	ShutdownTimeout time.Duration
	// DataDir, when set, is served read-only under {BasePath}/data.
	DataDir      string
	Dependencies Dependencies
}

func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	h := handlers.NewHandler(config.Dependencies.Snapshot, config.Dependencies.Controller, config.BasePath)

	router := chi.NewRouter()

	router.Use(dashboardmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	routes := func(r chi.Router) {
		r.Get("/", h.Page)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/status", h.GetStatus)
			r.Get("/ready", h.Ready)
			r.Get("/tabs", h.ListTabs)
			r.Get("/tabs/{tab}", h.GetTab)
			r.Get("/charts/{tab}/{chart}.png", h.GetChart)
		})

		if config.DataDir != "" {
			prefix := config.BasePath + "/data/"
			r.Handle("/data/*", http.StripPrefix(prefix, http.FileServer(http.Dir(config.DataDir))))
		}
	}

	if config.BasePath == "" {
		routes(router)
	} else {
		router.Route(config.BasePath, routes)
	}

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
