package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/geofence"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/live"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/location"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/system"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/tracking"
	"github.com/Zagato27/Lapa-sub000/internal/config"
	"github.com/Zagato27/Lapa-sub000/internal/middleware"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// Handlers bundles the per-area handlers wired by the components layer.
type Handlers struct {
	Location *location.Handler
	Tracking *tracking.Handler
	Geofence *geofence.Handler
	Live     *live.Handler
	System   *system.Handler
}

func NewServer(cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	return &Server{
		logger: logger,
		router: InitRouter(cfg, h, logger),
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	auth := middleware.Auth(cfg.Auth.JWTSecret, logger)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/locations", func(lr chi.Router) {
			lr.Use(auth)

			lr.Group(func(ir chi.Router) {
				// GPS ingest takes the hardest write load; cap it per device.
				ir.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
				ir.Post("/", h.Location.Create)
				ir.Post("/emergency", h.Location.Emergency)
			})

			lr.Route("/orders/{order_id}", func(or chi.Router) {
				or.Get("/", h.Location.List)
				or.Get("/current", h.Location.Current)
				or.Get("/history", h.Location.History)
				or.Get("/live", h.Location.Live)
			})
		})

		api.Route("/tracking/orders/{order_id}", func(tr chi.Router) {
			tr.Use(auth)
			tr.Post("/start", h.Tracking.Start)
			tr.Post("/stop", h.Tracking.Stop)
			tr.Get("/status", h.Tracking.Status)
		})

		api.Route("/geofences", func(gr chi.Router) {
			gr.Use(auth)
			gr.Post("/", h.Geofence.Create)
			gr.Get("/containing", h.Geofence.Containing)
			gr.Get("/orders/{order_id}", h.Geofence.ListForOrder)

			gr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", h.Geofence.Get)
				ir.Put("/", h.Geofence.Update)
				ir.Delete("/", h.Geofence.Delete)
				ir.Post("/toggle", h.Geofence.Toggle)
				ir.Get("/stats", h.Geofence.Stats)
			})
		})

		api.With(auth).Get("/ws/orders/{order_id}", h.Live.Serve)

		api.Get("/health", h.System.SystemHealth)
		api.Get("/ready", h.System.SystemReady)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil
	case err := <-errChan:
		return err
	}
}
