package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("TOKEN_STORE", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("REDIS_DB", "")

	cfg := Load()
	if cfg.APIURL != DefaultAPIURL {
		t.Fatalf("APIURL = %q; want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.TokenStore != StoreFile {
		t.Fatalf("TokenStore = %q; want %q", cfg.TokenStore, StoreFile)
	}
	if cfg.RequestTimeout != DefaultRequestTimeout {
		t.Fatalf("RequestTimeout = %s; want %s", cfg.RequestTimeout, DefaultRequestTimeout)
	}
	if cfg.TokenFile == "" {
		t.Fatalf("TokenFile is empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	cases := []struct {
		name        string
		env         map[string]string
		wantURL     string
		wantStore   string
		wantTimeout time.Duration
		wantDB      int
	}{
		{
			name:        "overrides",
			env:         map[string]string{"API_URL": "http://api.test/", "TOKEN_STORE": "Redis", "REQUEST_TIMEOUT": "3s", "REDIS_DB": "2"},
			wantURL:     "http://api.test",
			wantStore:   StoreRedis,
			wantTimeout: 3 * time.Second,
			wantDB:      2,
		},
		{
			name:        "invalid numbers fall back",
			env:         map[string]string{"API_URL": "http://api.test", "TOKEN_STORE": "memory", "REQUEST_TIMEOUT": "soon", "REDIS_DB": "x"},
			wantURL:     "http://api.test",
			wantStore:   StoreMemory,
			wantTimeout: DefaultRequestTimeout,
			wantDB:      0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			cfg := Load()
			if cfg.APIURL != c.wantURL {
				t.Fatalf("APIURL = %q; want %q", cfg.APIURL, c.wantURL)
			}
			if cfg.TokenStore != c.wantStore {
				t.Fatalf("TokenStore = %q; want %q", cfg.TokenStore, c.wantStore)
			}
			if cfg.RequestTimeout != c.wantTimeout {
				t.Fatalf("RequestTimeout = %s; want %s", cfg.RequestTimeout, c.wantTimeout)
			}
			if cfg.RedisDB != c.wantDB {
				t.Fatalf("RedisDB = %d; want %d", cfg.RedisDB, c.wantDB)
			}
		})
	}
}
