package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Zagato27/Lapa-sub000/internal/api"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/geofence"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/live"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/location"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/system"
	"github.com/Zagato27/Lapa-sub000/internal/api/handlers/http/tracking"
	"github.com/Zagato27/Lapa-sub000/internal/config"
	"github.com/Zagato27/Lapa-sub000/internal/redis"
	"github.com/Zagato27/Lapa-sub000/internal/service"
	"github.com/Zagato27/Lapa-sub000/internal/storage/postgres"
	"github.com/Zagato27/Lapa-sub000/internal/tracker"
	"github.com/Zagato27/Lapa-sub000/internal/ws"
	"github.com/Zagato27/Lapa-sub000/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Hub        *ws.Hub
	Supervisor *tracker.Supervisor
	Service    *service.Service
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	log.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	log.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, log)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	trackingStore := redis.NewTrackingStore(redisClient, cfg.Tracking.MaxDuration)
	geofenceCache := redis.NewGeofenceCache(redisClient)
	locationCache := redis.NewLocationCache(redisClient)

	hub := ws.NewHub(log, cfg.WebSocket.PingInterval, cfg.WebSocket.WriteTimeout)

	svc := service.NewService(service.Deps{
		Locations:     storage.Locations,
		Geofences:     storage.Geofences,
		Alerts:        storage.Alerts,
		Routes:        storage.Routes,
		Orders:        storage.Orders,
		Tracking:      trackingStore,
		GeofenceCache: geofenceCache,
		LocationCache: locationCache,
		Broadcaster:   hub,
		Cfg:           cfg,
		Logger:        log,
	})

	supervisor := tracker.NewSupervisor(
		trackingStore,
		svc.Location,
		hub,
		cfg.Tracking.TickInterval,
		cfg.Tracking.MaxDuration,
		log,
	)

	handlers := api.Handlers{
		Location: location.NewHandler(log, svc.Location),
		Tracking: tracking.NewHandler(log, svc.Location),
		Geofence: geofence.NewHandler(log, svc.Geofence),
		Live:     live.NewHandler(log, hub, storage.Orders, svc.Location, cfg.WebSocket.PingInterval),
		System: system.NewHandler(log, map[string]system.Check{
			"postgres": storage.Pool.Ping,
			"redis": func(ctx context.Context) error {
				return redisClient.Client.Ping(ctx).Err()
			},
		}),
	}

	httpServer := api.NewServer(cfg, log, handlers)
	log.Info("Initialized server")

	return &Components{
		logger:     log,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Hub:        hub,
		Supervisor: supervisor,
		Service:    svc,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Hub.CloseAll()
	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped", slog.Duration("latency", time.Since(start)))
}
