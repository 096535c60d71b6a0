package types

import (
	"strings"

	"articlesdesk/config"
)

// Credentials is the login request body
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Trimmed returns the credentials without surrounding whitespace
func (c Credentials) Trimmed() Credentials {
	return Credentials{
		Username: strings.TrimSpace(c.Username),
		Password: strings.TrimSpace(c.Password),
	}
}

// Valid reports whether the credentials meet the minimum lengths for login
func (c Credentials) Valid() bool {
	t := c.Trimmed()
	return len(t.Username) >= config.MinUsernameLength && len(t.Password) >= config.MinPasswordLength
}
