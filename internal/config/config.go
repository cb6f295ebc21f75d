package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                  string
	MongoURI              string
	MongoDatabase         string
	PropertyCollection    string
	SearchEventCollection string
	UserCollection        string
	Timeout               time.Duration
	QueryTimeout          time.Duration
	RequestTimeout        time.Duration
	TelemetryWorkers      int
	TelemetryTimeout      time.Duration
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	MostSearchedTTL       time.Duration
	MostSearchedLimit     int
	Timezone              string
	ServerLog             *log.Logger
	JWTConfigs            []JWTConfig
	JWTAudience           string
	AdminAPIKey           string
	AllowedOrigins        []string
}

// Load reads environment variables and returns a fully populated Config.
// カレントディレクトリに .env があれば先に読み込む。既に設定済みの環境変数は上書きしない。
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		return Config{}, errors.New("JWT secret not configured. Set AUTH_JWT_SECRET")
	}
	jwtConfigs := []JWTConfig{{
		Issuer: strings.TrimSpace(os.Getenv("AUTH_JWT_ISSUER")),
		Secret: []byte(secret),
	}}

	var errs []error
	timeout := durationOrDefault("MONGO_CONNECT_TIMEOUT", 10*time.Second, &errs)
	queryTimeout := durationOrDefault("QUERY_TIMEOUT", 5*time.Second, &errs)
	requestTimeout := durationOrDefault("REQUEST_TIMEOUT", 15*time.Second, &errs)
	telemetryTimeout := durationOrDefault("TELEMETRY_TIMEOUT", 5*time.Second, &errs)
	mostSearchedTTL := durationOrDefault("MOST_SEARCHED_TTL", time.Minute, &errs)
	telemetryWorkers := intOrDefault("TELEMETRY_WORKERS", 4, &errs)
	mostSearchedLimit := intOrDefault("MOST_SEARCHED_LIMIT", 5, &errs)
	redisDB := intOrDefault("REDIS_DB", 0, &errs)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:                  envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:              envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:         envOrDefault("MONGO_DB", "property-match"),
		PropertyCollection:    envOrDefault("PROPERTY_COLLECTION", "properties"),
		SearchEventCollection: envOrDefault("SEARCH_EVENT_COLLECTION", "searchedproperties"),
		UserCollection:        envOrDefault("USER_COLLECTION", "users"),
		Timeout:               timeout,
		QueryTimeout:          queryTimeout,
		RequestTimeout:        requestTimeout,
		TelemetryWorkers:      telemetryWorkers,
		TelemetryTimeout:      telemetryTimeout,
		RedisAddr:             strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               redisDB,
		MostSearchedTTL:       mostSearchedTTL,
		MostSearchedLimit:     mostSearchedLimit,
		Timezone:              envOrDefault("TIMEZONE", "Asia/Tokyo"),
		ServerLog:             log.New(os.Stdout, "[property-match-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:            jwtConfigs,
		JWTAudience:           strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		AdminAPIKey:           strings.TrimSpace(os.Getenv("ADMIN_API_KEY")),
		AllowedOrigins:        parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	cfg.ServerLog.Printf("loaded config: db=%q redis=%q queryTimeout=%s telemetryWorkers=%d admin=%t",
		cfg.MongoDatabase, cfg.RedisAddr, cfg.QueryTimeout, cfg.TelemetryWorkers, cfg.AdminAPIKey != "")

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationOrDefault(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		*errs = append(*errs, fmt.Errorf("%s must be a positive duration, got %q", key, raw))
		return fallback
	}
	return parsed
}

func intOrDefault(key string, fallback int, errs *[]error) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		*errs = append(*errs, fmt.Errorf("%s must be a non-negative integer, got %q", key, raw))
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
