package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Sample values shipped in .env.example; treating them as "configured"
// would point the facade at a backend that does not exist.
var placeholderValues = map[string]struct{}{
	"https://your-site.example.com": {},
	"your-access-key":               {},
	"your-secret-key":               {},
	"host=localhost user=postgres password=postgres dbname=quickblog": {},
}

// AppConfig 汇总运行服务与客户端门面所需的基础配置。
type AppConfig struct {
	ListenAddr string
	Port       string
	GinMode    string

	// server-side store selection: memory | redis | minio
	StoreDriver string
	IDStrategy  string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// facade backend selection: http | relational | none
	BackendKind    string
	BackendBaseURL string
	DatabasePath   string
	DatabaseDSN    string

	ProbeTimeout  time.Duration
	ProbeCacheTTL time.Duration
	ExcerptLength int
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr: listenAddr,
		Port:       port,
		GinMode:    envOr("GIN_MODE", "release"),

		StoreDriver: envOr("QUICKBLOG_STORE", "memory"),
		IDStrategy:  envOr("QUICKBLOG_ID_STRATEGY", "timestamp"),

		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:  strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		RedisDB:        envInt("REDIS_DB", 0),
		RedisKeyPrefix: envOr("REDIS_KEY_PREFIX", "quickblog:posts:"),

		MinioEndpoint:  strings.TrimSpace(os.Getenv("MINIO_ENDPOINT")),
		MinioAccessKey: strings.TrimSpace(os.Getenv("MINIO_ACCESS_KEY")),
		MinioSecretKey: strings.TrimSpace(os.Getenv("MINIO_SECRET_KEY")),
		MinioUseSSL:    envBool("MINIO_USE_SSL", false),
		MinioBucket:    envOr("MINIO_BUCKET", "quickblog-posts"),

		BackendKind:    envOr("QUICKBLOG_BACKEND", "none"),
		BackendBaseURL: strings.TrimSpace(os.Getenv("BACKEND_BASE_URL")),
		DatabasePath:   strings.TrimSpace(os.Getenv("DATABASE_PATH")),
		DatabaseDSN:    strings.TrimSpace(os.Getenv("DATABASE_DSN")),

		ProbeTimeout:  envDuration("PROBE_TIMEOUT", 2*time.Second),
		ProbeCacheTTL: envDuration("PROBE_CACHE_TTL", 30*time.Second),
		ExcerptLength: envInt("EXCERPT_LENGTH", 150),
	}
}

// IsBackendConfigured reports whether a remote post service is reachable
// in principle: a base URL is present and is not a sample placeholder.
// The check is synchronous and never touches the network.
func (c AppConfig) IsBackendConfigured() bool {
	return configured(c.BackendBaseURL)
}

// IsRedisConfigured reports whether Redis connection parameters are set.
func (c AppConfig) IsRedisConfigured() bool {
	return configured(c.RedisAddr)
}

// IsMinioConfigured reports whether object store credentials are set.
func (c AppConfig) IsMinioConfigured() bool {
	return configured(c.MinioEndpoint) &&
		configured(c.MinioAccessKey) &&
		configured(c.MinioSecretKey)
}

// IsDatabaseConfigured reports whether the relational variant has either
// a sqlite path or a postgres DSN to work with.
func (c AppConfig) IsDatabaseConfigured() bool {
	return configured(c.DatabasePath) || configured(c.DatabaseDSN)
}

func configured(value string) bool {
	if value == "" {
		return false
	}
	_, placeholder := placeholderValues[value]
	return !placeholder
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
