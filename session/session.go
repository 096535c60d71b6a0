// Package session owns the client's authentication token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"articlesdesk/config"
)

// ErrNoSession is returned by protected operations when no token is stored
var ErrNoSession = errors.New("no session token")

// Session wraps a Store and exposes the token under config.TokenKey
type Session struct {
	mu    sync.Mutex
	store Store
}

// New creates a session over store
func New(store Store) *Session {
	return &Session{store: store}
}

// Token returns the stored token, or "" when logged out
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.store.Get(ctx, config.TokenKey)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// RequireToken returns the stored token or ErrNoSession
func (s *Session) RequireToken(ctx context.Context) (string, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// IsAuthenticated reports whether a token is stored
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	return token != "", err
}

// Start stores token as the current session
func (s *Session) Start(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("refusing to store empty token")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, config.TokenKey, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// End removes the stored token. It reports whether a token was present.
func (s *Session) End(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok, err := s.store.Get(ctx, config.TokenKey)
	if err != nil {
		return false, fmt.Errorf("failed to read token: %w", err)
	}
	if !ok || token == "" {
		return false, nil
	}
	if err := s.store.Delete(ctx, config.TokenKey); err != nil {
		return true, fmt.Errorf("failed to delete token: %w", err)
	}
	return true, nil
}

// Close releases the underlying store
func (s *Session) Close() error {
	return s.store.Close()
}
