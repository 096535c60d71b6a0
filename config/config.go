package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the articles client
type Config struct {
	APIURL         string
	RequestTimeout time.Duration

	TokenStore string
	TokenFile  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	LogFile string
}

// Load reads .env (if present) and the process environment.
// Flags parsed by the caller may override the returned values.
func Load() Config {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := Config{
		APIURL:         strings.TrimRight(GetEnvOrDefault("API_URL", DefaultAPIURL), "/"),
		RequestTimeout: DefaultRequestTimeout,
		TokenStore:     strings.ToLower(GetEnvOrDefault("TOKEN_STORE", StoreFile)),
		TokenFile:      GetEnvOrDefault("TOKEN_FILE", defaultTokenFile()),
		RedisAddr:      GetEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:    GetEnvOrDefault("REDIS_PREFIX", DefaultRedisPrefix),
		LogFile:        strings.TrimSpace(os.Getenv("LOG_FILE")),
	}

	if v := strings.TrimSpace(os.Getenv("REQUEST_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("Warning: invalid REQUEST_TIMEOUT %q, using %s", v, DefaultRequestTimeout)
		} else {
			cfg.RequestTimeout = d
		}
	}

	if v := strings.TrimSpace(os.Getenv("REDIS_DB")); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid REDIS_DB %q, using 0", v)
		} else {
			cfg.RedisDB = db
		}
	}

	return cfg
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName, StorageFileName)
}
