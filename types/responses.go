package types

// LoginResponse is returned by POST /api/login
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// ArticlesResponse is returned by GET /api/articles
type ArticlesResponse struct {
	Articles []Article `json:"articles"`
	Message  string    `json:"message"`
}

// ArticleResponse is returned by POST and PUT on articles
type ArticleResponse struct {
	Article Article `json:"article"`
	Message string  `json:"message"`
}

// MessageResponse is returned by DELETE and by failed requests
type MessageResponse struct {
	Message string `json:"message"`
}
