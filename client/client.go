package client

import (
	"net/http"
	"strings"
	"time"

	"articlesdesk/config"
)

// Client is a thin HTTP client for the articles API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new articles API client.
// An empty baseURL falls back to API_URL, then to config.DefaultAPIURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = config.GetEnvOrDefault("API_URL", config.DefaultAPIURL)
	}
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the API root this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}
