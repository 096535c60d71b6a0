package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"articlesdesk/config"
	"articlesdesk/types"
)

// Login exchanges credentials for a session token
func (c *Client) Login(ctx context.Context, creds types.Credentials) (*types.LoginResponse, error) {
	var result types.LoginResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, config.LoginPath, "", creds, &result); err != nil {
		return nil, err
	}

	if result.Token == "" {
		return nil, errors.New("login response did not include a token")
	}

	return &result, nil
}

// articlePath returns the resource path for a single article
func articlePath(id int) string {
	return fmt.Sprintf("%s/%d", config.ArticlesPath, id)
}
