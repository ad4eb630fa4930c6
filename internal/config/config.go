package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string          `json:"env"`
	Http      HttpConfig      `json:"http"`
	Postgres  PostgresConfig  `json:"postgres"`
	Redis     RedisConfig     `json:"redis"`
	Auth      AuthConfig      `json:"auth"`
	Tracking  TrackingConfig  `json:"tracking"`
	Geofence  GeofenceConfig  `json:"geofence"`
	WebSocket WebSocketConfig `json:"websocket"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret string `json:"jwt_secret,omitempty"`
}

type TrackingConfig struct {
	TickInterval       time.Duration `json:"tick_interval"`
	MaxDuration        time.Duration `json:"max_duration"`
	RouteLookbackHours int           `json:"route_lookback_hours"`
	RouteMaxPoints     int           `json:"route_max_points"`
	// RouteSimplifyToleranceMeters drops consecutive waypoints closer than
	// this when a route is saved.
	RouteSimplifyToleranceMeters float64 `json:"route_simplify_tolerance_meters"`
	HistoryDefaultHours          int     `json:"history_default_hours"`
}

type GeofenceConfig struct {
	DefaultRadiusMeters        float64 `json:"default_radius_meters"`
	DefaultAlertDistanceMeters float64 `json:"default_alert_distance_meters"`
}

type WebSocketConfig struct {
	PingInterval time.Duration `json:"ping_interval"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "lapa"),
			User:            getEnv("POSTGRES_USER", "lapa_user"),
			Password:        getEnv("POSTGRES_PASSWORD", "lapa_password"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Tracking: TrackingConfig{
			TickInterval:                 getEnvDuration("TRACKING_TICK_INTERVAL", 30*time.Second),
			MaxDuration:                  getEnvDuration("MAX_TRACKING_DURATION", 12*time.Hour),
			RouteLookbackHours:           getEnvInt("ROUTE_LOOKBACK_HOURS", 12),
			RouteMaxPoints:               getEnvInt("ROUTE_MAX_POINTS", 1000),
			RouteSimplifyToleranceMeters: getEnvFloat("ROUTE_SIMPLIFICATION_TOLERANCE", 10),
			HistoryDefaultHours:          getEnvInt("HISTORY_DEFAULT_HOURS", 24),
		},
		Geofence: GeofenceConfig{
			DefaultRadiusMeters:        getEnvFloat("GEOFENCE_RADIUS_METERS", 2000),
			DefaultAlertDistanceMeters: getEnvFloat("GEOFENCE_ALERT_DISTANCE", 500),
		},
		WebSocket: WebSocketConfig{
			PingInterval: getEnvDuration("WEBSOCKET_PING_INTERVAL", 30*time.Second),
			WriteTimeout: getEnvDuration("WEBSOCKET_WRITE_TIMEOUT", 10*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Duration("tracking_tick", cfg.Tracking.TickInterval))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Tracking.TickInterval <= 0 {
		return errors.New("TRACKING_TICK_INTERVAL must be positive")
	}
	if c.Tracking.MaxDuration <= 0 {
		return errors.New("MAX_TRACKING_DURATION must be positive")
	}
	if c.Geofence.DefaultRadiusMeters <= 0 {
		return errors.New("GEOFENCE_RADIUS_METERS must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
