package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	GenAIBase     string
	GenAIKey      string
	GenAIModel    string
	AdminPassword string
	Workers       int
	CacheTTL      time.Duration
}

func Load() Config {
	// optional; real deployments set the environment directly
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/stay?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		GenAIBase:     env("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GenAIKey:      env("GENAI_API_KEY", ""),
		GenAIModel:    env("GENAI_MODEL", "gemini-2.5-flash"),
		AdminPassword: env("ADMIN_PASSWORD", "password123"),
		Workers:       atoi("SEED_WORKERS", 4),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.GenAIKey == "" {
		log.Warn().Msg("GENAI_API_KEY is empty; description generation disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
