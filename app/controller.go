// Package app holds the articles client's controller and UI state.
//
// Controller methods perform I/O and return a Result; State.Apply folds a
// Result into the next State without side effects. Navigation is part of
// that returned State, so callers decide how to show it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"articlesdesk/client"
	"articlesdesk/config"
	"articlesdesk/session"
	"articlesdesk/types"
)

// GoodbyeMessage is the notice set when a stored token is cleared
const GoodbyeMessage = "Goodbye!"

// ErrInvalidInput is returned when a form is submitted that the backend would reject
var ErrInvalidInput = errors.New("invalid input")

// API is the subset of the articles backend the controller calls
type API interface {
	Login(ctx context.Context, creds types.Credentials) (*types.LoginResponse, error)
	GetArticles(ctx context.Context, token string) (*types.ArticlesResponse, error)
	CreateArticle(ctx context.Context, token string, draft types.ArticleDraft) (*types.ArticleResponse, error)
	UpdateArticle(ctx context.Context, token string, id int, draft types.ArticleDraft) (*types.ArticleResponse, error)
	DeleteArticle(ctx context.Context, token string, id int) (*types.MessageResponse, error)
}

// Controller runs session and article operations against the API
type Controller struct {
	api     API
	session *session.Session
	timeout time.Duration
}

// NewController creates a controller. A zero timeout uses config.DefaultRequestTimeout.
func NewController(api API, sess *session.Session, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	return &Controller{api: api, session: sess, timeout: timeout}
}

// Session returns the injected session
func (c *Controller) Session() *session.Session {
	return c.session
}

// Login authenticates and stores the issued token
func (c *Controller) Login(ctx context.Context, creds types.Credentials) Result {
	res := Result{Op: OpLogin}

	if !creds.Valid() {
		return c.fail(res, fmt.Errorf("%w: username needs %d+ characters and password %d+",
			ErrInvalidInput, config.MinUsernameLength, config.MinPasswordLength))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Login(ctx, creds)
	if err != nil {
		if client.IsUnauthorized(err) {
			return c.fail(res, fmt.Errorf("login rejected: %w", err))
		}
		return c.fail(res, fmt.Errorf("login failed: %w", err))
	}

	if err := c.session.Start(ctx, resp.Token); err != nil {
		return c.fail(res, err)
	}

	log.Printf("✅ Logged in as %s", creds.Trimmed().Username)
	res.Status = StatusSuccess
	res.Message = resp.Message
	return res
}

// Logout clears the stored token, if any. The result always navigates to login.
func (c *Controller) Logout(ctx context.Context) Result {
	res := Result{Op: OpLogout, Status: StatusSuccess}

	had, err := c.session.End(ctx)
	if had {
		res.Message = GoodbyeMessage
	}
	if err != nil {
		return c.fail(res, err)
	}
	return res
}

// FetchArticles replaces the cached list with the server's
func (c *Controller) FetchArticles(ctx context.Context) Result {
	res := Result{Op: OpFetch}

	token, done, ok := c.begin(ctx, &res)
	if !ok {
		return done
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.GetArticles(ctx, token)
	if err != nil {
		return c.protectedFailure(ctx, res, fmt.Errorf("failed to fetch articles: %w", err))
	}

	res.Status = StatusSuccess
	res.Message = resp.Message
	res.Articles = resp.Articles
	return res
}

// CreateArticle posts draft; the result carries the server's article
func (c *Controller) CreateArticle(ctx context.Context, draft types.ArticleDraft) Result {
	res := Result{Op: OpCreate}

	if !draft.Valid() {
		return c.fail(res, fmt.Errorf("%w: title, text and topic are required", ErrInvalidInput))
	}

	token, done, ok := c.begin(ctx, &res)
	if !ok {
		return done
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateArticle(ctx, token, draft.Trimmed())
	if err != nil {
		return c.protectedFailure(ctx, res, fmt.Errorf("failed to create article: %w", err))
	}

	res.Status = StatusSuccess
	res.Message = resp.Message
	res.Article = resp.Article
	return res
}

// UpdateArticle replaces article id with draft; the result carries the server's version
func (c *Controller) UpdateArticle(ctx context.Context, id int, draft types.ArticleDraft) Result {
	res := Result{Op: OpUpdate, ArticleID: id}

	if !draft.Valid() {
		return c.fail(res, fmt.Errorf("%w: title, text and topic are required", ErrInvalidInput))
	}

	token, done, ok := c.begin(ctx, &res)
	if !ok {
		return done
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.UpdateArticle(ctx, token, id, draft.Trimmed())
	if err != nil {
		return c.protectedFailure(ctx, res, fmt.Errorf("failed to update article %d: %w", id, err))
	}

	res.Status = StatusSuccess
	res.Message = resp.Message
	res.Article = resp.Article
	return res
}

// DeleteArticle removes article id
func (c *Controller) DeleteArticle(ctx context.Context, id int) Result {
	res := Result{Op: OpDelete, ArticleID: id}

	token, done, ok := c.begin(ctx, &res)
	if !ok {
		return done
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.DeleteArticle(ctx, token, id)
	if err != nil {
		return c.protectedFailure(ctx, res, fmt.Errorf("failed to delete article %d: %w", id, err))
	}

	res.Status = StatusSuccess
	res.Message = resp.Message
	return res
}

// begin loads the token for a protected call. When ok is false, done is the
// finished Result and no request must be sent.
func (c *Controller) begin(ctx context.Context, res *Result) (token string, done Result, ok bool) {
	token, err := c.session.RequireToken(ctx)
	if errors.Is(err, session.ErrNoSession) {
		log.Printf("🔒 %s skipped: not logged in", res.Op)
		r := *res
		r.Status = StatusNoSession
		r.Err = err
		return "", r, false
	}
	if err != nil {
		return "", c.fail(*res, err), false
	}
	return token, Result{}, true
}

// protectedFailure turns a 401 into a logout; anything else is a visible failure
func (c *Controller) protectedFailure(ctx context.Context, res Result, err error) Result {
	if !client.IsUnauthorized(err) {
		return c.fail(res, err)
	}

	log.Printf("🔒 %s unauthorized, clearing session: %v", res.Op, err)
	out := c.Logout(context.WithoutCancel(ctx))
	res.Status = StatusAuthFailure
	res.Message = out.Message
	res.Err = err
	return res
}

func (c *Controller) fail(res Result, err error) Result {
	log.Printf("❌ %s failed: %v", res.Op, err)
	res.Status = StatusFailure
	res.Err = err
	return res
}
