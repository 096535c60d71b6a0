package app

import "articlesdesk/types"

// State is the root UI state. Methods return a new State and never mutate
// the receiver's article slice.
type State struct {
	View             View
	Message          string
	Err              error
	Articles         []types.Article
	CurrentArticleID int
	Loading          bool
}

// NewState returns the initial state; authenticated users start on the articles view
func NewState(authenticated bool) State {
	s := State{View: ViewLogin, Articles: []types.Article{}}
	if authenticated {
		s.View = ViewArticles
	}
	return s
}

// Begin moves to Pending: loading on, notice and error cleared
func (s State) Begin() State {
	s.Loading = true
	s.Message = ""
	s.Err = nil
	return s
}

// Apply folds an operation result into the state and moves back to Idle
func (s State) Apply(r Result) State {
	s.Loading = false
	s.Message = r.Message
	s.Err = r.Err

	switch r.Status {
	case StatusSuccess:
		s = s.patch(r)
	case StatusAuthFailure, StatusNoSession:
		s.CurrentArticleID = 0
	}

	if v := r.Navigation(); v != "" {
		s.View = v
	}
	return s
}

// patch applies a successful result's payload to the article cache
func (s State) patch(r Result) State {
	switch r.Op {
	case OpFetch:
		s.Articles = append([]types.Article{}, r.Articles...)
		if _, ok := s.CurrentArticle(); !ok {
			s.CurrentArticleID = 0
		}
	case OpCreate:
		articles := make([]types.Article, 0, len(s.Articles)+1)
		articles = append(articles, s.Articles...)
		s.Articles = append(articles, r.Article)
	case OpUpdate:
		articles := make([]types.Article, len(s.Articles))
		for i, a := range s.Articles {
			if a.ID == r.Article.ID {
				a = r.Article
			}
			articles[i] = a
		}
		s.Articles = articles
		s.CurrentArticleID = 0
	case OpDelete:
		articles := make([]types.Article, 0, len(s.Articles))
		for _, a := range s.Articles {
			if a.ID != r.ArticleID {
				articles = append(articles, a)
			}
		}
		s.Articles = articles
		if s.CurrentArticleID == r.ArticleID {
			s.CurrentArticleID = 0
		}
	case OpLogout:
		s.CurrentArticleID = 0
	}
	return s
}

// Navigate switches view without any request, like following a nav link
func (s State) Navigate(v View) State {
	s.View = v
	return s
}

// SelectArticle enters edit mode for id; unknown ids leave the state unchanged
func (s State) SelectArticle(id int) State {
	for _, a := range s.Articles {
		if a.ID == id {
			s.CurrentArticleID = id
			return s
		}
	}
	return s
}

// CancelEdit leaves edit mode
func (s State) CancelEdit() State {
	s.CurrentArticleID = 0
	return s
}

// Editing reports whether an article is selected for editing
func (s State) Editing() bool {
	return s.CurrentArticleID != 0
}

// CurrentArticle returns the article selected for editing
func (s State) CurrentArticle() (types.Article, bool) {
	if s.CurrentArticleID == 0 {
		return types.Article{}, false
	}
	for _, a := range s.Articles {
		if a.ID == s.CurrentArticleID {
			return a, true
		}
	}
	return types.Article{}, false
}
