package client

import (
	"context"
	"net/http"

	"articlesdesk/config"
	"articlesdesk/types"
)

// GetArticles fetches every article visible to the token holder
func (c *Client) GetArticles(ctx context.Context, token string) (*types.ArticlesResponse, error) {
	var result types.ArticlesResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, config.ArticlesPath, token, nil, &result); err != nil {
		return nil, err
	}

	if result.Articles == nil {
		result.Articles = []types.Article{}
	}

	return &result, nil
}

// CreateArticle posts a new article and returns the stored version
func (c *Client) CreateArticle(ctx context.Context, token string, draft types.ArticleDraft) (*types.ArticleResponse, error) {
	var result types.ArticleResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, config.ArticlesPath, token, draft, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateArticle replaces the editable fields of article id
func (c *Client) UpdateArticle(ctx context.Context, token string, id int, draft types.ArticleDraft) (*types.ArticleResponse, error) {
	var result types.ArticleResponse
	if err := c.doJSONRequest(ctx, http.MethodPut, articlePath(id), token, draft, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// DeleteArticle removes article id
func (c *Client) DeleteArticle(ctx context.Context, token string, id int) (*types.MessageResponse, error) {
	var result types.MessageResponse
	if err := c.doJSONRequest(ctx, http.MethodDelete, articlePath(id), token, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
