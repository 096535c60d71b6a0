package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"articlesdesk/apitest"
	"articlesdesk/client"
	"articlesdesk/session"
	"articlesdesk/types"
)

var goodCreds = types.Credentials{Username: "foo", Password: "12345678"}

func newTestController(t *testing.T) (*Controller, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	sess := session.New(session.NewMemoryStore())
	return NewController(client.NewClient(srv.URL, 2*time.Second), sess, 2*time.Second), srv
}

func storedToken(t *testing.T, c *Controller) string {
	t.Helper()
	token, err := c.Session().Token(context.Background())
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	return token
}

func TestLoginStoresServerToken(t *testing.T) {
	c, srv := newTestController(t)

	res := c.Login(context.Background(), goodCreds)
	if res.Status != StatusSuccess {
		t.Fatalf("Login status = %s, err %v", res.Status, res.Err)
	}
	if res.Message != "Welcome back, foo!" {
		t.Fatalf("Login message = %q", res.Message)
	}
	if res.Navigation() != ViewArticles {
		t.Fatalf("Login navigation = %q; want %q", res.Navigation(), ViewArticles)
	}

	// the stored token must be one the server issued: a protected call succeeds with it
	token := storedToken(t, c)
	if token == "" {
		t.Fatalf("no token stored after login")
	}
	if _, err := client.NewClient(srv.URL, time.Second).GetArticles(context.Background(), token); err != nil {
		t.Fatalf("stored token rejected by server: %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	cases := []struct {
		name         string
		creds        types.Credentials
		prepare      func(*apitest.Server)
		wantRequests int
	}{
		{"invalid input never hits the network", types.Credentials{Username: "fo", Password: "x"}, nil, 0},
		{"server error", goodCreds, func(s *apitest.Server) { s.FailNext(http.StatusInternalServerError) }, 1},
		{"rejected", goodCreds, func(s *apitest.Server) { s.FailNext(http.StatusUnauthorized) }, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestController(t)
			if tc.prepare != nil {
				tc.prepare(srv)
			}

			res := c.Login(context.Background(), tc.creds)
			if res.Status != StatusFailure || res.Err == nil {
				t.Fatalf("Login = %s, err %v; want failure with error", res.Status, res.Err)
			}
			if res.Navigation() != "" {
				t.Fatalf("failed login navigates to %q", res.Navigation())
			}
			if storedToken(t, c) != "" {
				t.Fatalf("token stored after failed login")
			}
			if got := len(srv.Requests()); got != tc.wantRequests {
				t.Fatalf("requests = %d; want %d", got, tc.wantRequests)
			}
		})
	}
}

func TestLogoutAlwaysNavigatesToLogin(t *testing.T) {
	c, _ := newTestController(t)
	ctx := context.Background()

	res := c.Logout(ctx)
	if res.Navigation() != ViewLogin || res.Message != "" {
		t.Fatalf("logout without session = %+v", res)
	}

	if r := c.Login(ctx, goodCreds); r.Status != StatusSuccess {
		t.Fatalf("Login: %v", r.Err)
	}
	res = c.Logout(ctx)
	if res.Navigation() != ViewLogin {
		t.Fatalf("Logout navigation = %q", res.Navigation())
	}
	if res.Message != GoodbyeMessage {
		t.Fatalf("Logout message = %q; want %q", res.Message, GoodbyeMessage)
	}
	if storedToken(t, c) != "" {
		t.Fatalf("token still stored after logout")
	}
}

func TestProtectedCallsWithoutTokenSkipNetwork(t *testing.T) {
	c, srv := newTestController(t)
	ctx := context.Background()
	draft := types.ArticleDraft{Title: "t", Text: "x", Topic: "React"}

	results := []Result{
		c.FetchArticles(ctx),
		c.CreateArticle(ctx, draft),
		c.UpdateArticle(ctx, 1, draft),
		c.DeleteArticle(ctx, 1),
	}

	for _, res := range results {
		if res.Status != StatusNoSession {
			t.Fatalf("%s status = %s; want %s", res.Op, res.Status, StatusNoSession)
		}
		if !errors.Is(res.Err, session.ErrNoSession) {
			t.Fatalf("%s err = %v; want ErrNoSession", res.Op, res.Err)
		}
		if res.Navigation() != ViewLogin {
			t.Fatalf("%s navigation = %q; want login", res.Op, res.Navigation())
		}
	}
	if reqs := srv.Requests(); len(reqs) != 0 {
		t.Fatalf("requests sent without token: %v", reqs)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	draft := types.ArticleDraft{Title: "t", Text: "x", Topic: "React"}
	ops := map[string]func(*Controller) Result{
		"fetch":  func(c *Controller) Result { return c.FetchArticles(context.Background()) },
		"create": func(c *Controller) Result { return c.CreateArticle(context.Background(), draft) },
		"update": func(c *Controller) Result { return c.UpdateArticle(context.Background(), 1, draft) },
		"delete": func(c *Controller) Result { return c.DeleteArticle(context.Background(), 1) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			c, srv := newTestController(t)
			if r := c.Login(context.Background(), goodCreds); r.Status != StatusSuccess {
				t.Fatalf("Login: %v", r.Err)
			}
			srv.RevokeTokens()

			res := op(c)
			if res.Status != StatusAuthFailure {
				t.Fatalf("status = %s; want %s (err %v)", res.Status, StatusAuthFailure, res.Err)
			}
			if !client.IsUnauthorized(res.Err) {
				t.Fatalf("err = %v; want unauthorized", res.Err)
			}
			if res.Message != GoodbyeMessage {
				t.Fatalf("message = %q; want %q", res.Message, GoodbyeMessage)
			}
			if res.Navigation() != ViewLogin {
				t.Fatalf("navigation = %q; want login", res.Navigation())
			}
			if storedToken(t, c) != "" {
				t.Fatalf("token not cleared after 401")
			}
		})
	}
}

func TestArticleOperations(t *testing.T) {
	c, srv := newTestController(t)
	ctx := context.Background()

	state := NewState(false).Begin().Apply(c.Login(ctx, goodCreds))
	if state.View != ViewArticles {
		t.Fatalf("view after login = %q", state.View)
	}

	state = state.Begin().Apply(c.FetchArticles(ctx))
	if state.Err != nil {
		t.Fatalf("fetch: %v", state.Err)
	}
	if len(state.Articles) != len(apitest.DefaultArticles()) {
		t.Fatalf("fetched %d articles", len(state.Articles))
	}
	if state.Message != "Here are your articles, foo!" {
		t.Fatalf("fetch message = %q", state.Message)
	}

	before := len(state.Articles)
	state = state.Begin().Apply(c.CreateArticle(ctx, types.ArticleDraft{Title: " Fresh ", Text: "Body", Topic: "Node"}))
	if state.Err != nil {
		t.Fatalf("create: %v", state.Err)
	}
	if len(state.Articles) != before+1 {
		t.Fatalf("articles after create = %d; want %d", len(state.Articles), before+1)
	}
	created := state.Articles[len(state.Articles)-1]
	server := srv.Articles()
	if created != server[len(server)-1] {
		t.Fatalf("cached article %+v differs from server %+v", created, server[len(server)-1])
	}

	state = state.SelectArticle(created.ID)
	state = state.Begin().Apply(c.UpdateArticle(ctx, created.ID, types.ArticleDraft{Title: "Edited", Text: "Body", Topic: "React"}))
	if state.Err != nil {
		t.Fatalf("update: %v", state.Err)
	}
	if state.Editing() {
		t.Fatalf("still editing after update")
	}
	if got := state.Articles[len(state.Articles)-1]; got.Title != "Edited" || got.Topic != "React" {
		t.Fatalf("updated article = %+v", got)
	}

	state = state.Begin().Apply(c.DeleteArticle(ctx, created.ID))
	if state.Err != nil {
		t.Fatalf("delete: %v", state.Err)
	}
	if len(state.Articles) != before {
		t.Fatalf("articles after delete = %d; want %d", len(state.Articles), before)
	}
	if state.Message == "" {
		t.Fatalf("delete left no notice")
	}
}

func TestServerFailureIsVisible(t *testing.T) {
	c, srv := newTestController(t)
	ctx := context.Background()
	if r := c.Login(ctx, goodCreds); r.Status != StatusSuccess {
		t.Fatalf("Login: %v", r.Err)
	}

	srv.FailNext(http.StatusInternalServerError)
	state := NewState(true).Begin().Apply(c.FetchArticles(ctx))

	if state.Err == nil {
		t.Fatalf("server failure not surfaced")
	}
	var apiErr *client.APIError
	if !errors.As(state.Err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("err = %v; want APIError 500", state.Err)
	}
	if state.View != ViewArticles {
		t.Fatalf("view = %q; want to stay on articles", state.View)
	}
	if state.Loading {
		t.Fatalf("loading flag left on")
	}
	if storedToken(t, c) == "" {
		t.Fatalf("non-auth failure cleared the session")
	}
}

func TestInvalidDraftSkipsNetwork(t *testing.T) {
	c, srv := newTestController(t)
	ctx := context.Background()
	if r := c.Login(ctx, goodCreds); r.Status != StatusSuccess {
		t.Fatalf("Login: %v", r.Err)
	}
	sent := len(srv.Requests())

	res := c.CreateArticle(ctx, types.ArticleDraft{Title: "t", Text: "", Topic: "React"})
	if res.Status != StatusFailure || !errors.Is(res.Err, ErrInvalidInput) {
		t.Fatalf("CreateArticle = %s, %v; want invalid input failure", res.Status, res.Err)
	}
	if len(srv.Requests()) != sent {
		t.Fatalf("invalid draft was sent to the server")
	}
}

func TestLoginSendsCredentialsAsEntered(t *testing.T) {
	var received types.Credentials
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(types.LoginResponse{Token: "tok", Message: "Welcome back"})
	}))
	defer srv.Close()

	sess := session.New(session.NewMemoryStore())
	c := NewController(client.NewClient(srv.URL, 2*time.Second), sess, 2*time.Second)

	creds := types.Credentials{Username: "foo", Password: " secret pass "}
	res := c.Login(context.Background(), creds)
	if res.Status != StatusSuccess {
		t.Fatalf("Login status = %s, err %v", res.Status, res.Err)
	}
	if received.Password != creds.Password {
		t.Fatalf("server received password %q; want %q", received.Password, creds.Password)
	}
	if received.Username != creds.Username {
		t.Fatalf("server received username %q; want %q", received.Username, creds.Username)
	}
}
