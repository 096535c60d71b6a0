// Package apitest runs an in-process articles backend for tests.
package apitest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"articlesdesk/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server is a fake articles API backed by memory
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	tokens   map[string]string // token -> username
	articles []types.Article
	nextID   int
	requests []string
	failNext int
}

// DefaultArticles is the catalogue every new Server starts with
func DefaultArticles() []types.Article {
	return []types.Article{
		{ID: 1, Title: "The Truth about Closures", Text: "Closures capture variables, not values.", Topic: "JavaScript"},
		{ID: 2, Title: "Hooks in Depth", Text: "useEffect runs after render.", Topic: "React"},
		{ID: 3, Title: "Event Loop Basics", Text: "Node runs your code on one thread.", Topic: "Node"},
	}
}

// NewServer starts a fake backend seeded with DefaultArticles
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		tokens:   make(map[string]string),
		articles: DefaultArticles(),
		nextID:   len(DefaultArticles()) + 1,
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

// router constructs a Gin engine with registered routes.
func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.record)

	r.POST("/api/login", s.handleLogin)

	articles := r.Group("/api/articles", s.requireToken)
	articles.GET("", s.handleGetArticles)
	articles.POST("", s.handlePostArticle)
	articles.PUT("/:id", s.handlePutArticle)
	articles.DELETE("/:id", s.handleDeleteArticle)
	return r
}

// record counts every request and applies a pending FailNext
func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
	status := s.failNext
	s.failNext = 0
	s.mu.Unlock()

	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"message": http.StatusText(status)})
		return
	}
	c.Next()
}

// requireToken rejects requests whose Authorization header is not an issued token
func (s *Server) requireToken(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Ouch: token required"})
		return
	}

	s.mu.Lock()
	username, ok := s.tokens[token]
	s.mu.Unlock()

	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Ouch: invalid token"})
		return
	}
	c.Set("username", username)
	c.Next()
}

func (s *Server) handleLogin(c *gin.Context) {
	var creds types.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !creds.Valid() {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Ouch: invalid credentials"})
		return
	}

	username := creds.Trimmed().Username
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()

	c.JSON(http.StatusOK, types.LoginResponse{
		Token:   token,
		Message: fmt.Sprintf("Welcome back, %s!", username),
	})
}

func (s *Server) handleGetArticles(c *gin.Context) {
	s.mu.Lock()
	articles := append([]types.Article{}, s.articles...)
	s.mu.Unlock()

	c.JSON(http.StatusOK, types.ArticlesResponse{
		Articles: articles,
		Message:  fmt.Sprintf("Here are your articles, %s!", c.GetString("username")),
	})
}

func (s *Server) handlePostArticle(c *gin.Context) {
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	s.mu.Lock()
	article := types.Article{ID: s.nextID, Title: draft.Title, Text: draft.Text, Topic: draft.Topic}
	s.nextID++
	s.articles = append(s.articles, article)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, types.ArticleResponse{
		Article: article,
		Message: fmt.Sprintf("Well done, %s. Great article!", c.GetString("username")),
	})
}

func (s *Server) handlePutArticle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	draft, ok := bindDraft(c)
	if !ok {
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	var article types.Article
	if idx >= 0 {
		article = types.Article{ID: id, Title: draft.Title, Text: draft.Text, Topic: draft.Topic}
		s.articles[idx] = article
	}
	s.mu.Unlock()

	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Article %d not found", id)})
		return
	}

	c.JSON(http.StatusOK, types.ArticleResponse{
		Article: article,
		Message: fmt.Sprintf("Nice update, %s!", c.GetString("username")),
	})
}

func (s *Server) handleDeleteArticle(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx >= 0 {
		s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	}
	s.mu.Unlock()

	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Article %d not found", id)})
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Message: fmt.Sprintf("Article %d was deleted, %s!", id, c.GetString("username")),
	})
}

// indexOf returns the position of article id (must hold lock)
func (s *Server) indexOf(id int) int {
	for i, a := range s.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func bindID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "article id must be a number"})
		return 0, false
	}
	return id, true
}

func bindDraft(c *gin.Context) (types.ArticleDraft, bool) {
	var draft types.ArticleDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return draft, false
	}
	if !draft.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "title, text and a valid topic are required"})
		return draft, false
	}
	return draft.Trimmed(), true
}

// Requests returns every "METHOD path" received so far
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.requests...)
}

// RevokeTokens invalidates every issued token, as if the session expired
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// IssueToken registers a valid token for username without a login request
func (s *Server) IssueToken(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = username
	return token
}

// FailNext makes the next request fail with status
func (s *Server) FailNext(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = status
}

// Articles returns a copy of the stored catalogue
func (s *Server) Articles() []types.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Article{}, s.articles...)
}
