package app

import "articlesdesk/types"

// View is a navigable screen, named after its route
type View string

const (
	ViewLogin    View = "/"
	ViewArticles View = "/articles"
)

// Op identifies the operation that produced a Result
type Op string

const (
	OpLogin  Op = "login"
	OpLogout Op = "logout"
	OpFetch  Op = "fetch"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Status is the outcome tag of an operation
type Status string

const (
	// StatusSuccess means the server accepted the request
	StatusSuccess Status = "success"
	// StatusAuthFailure means a protected call got 401; the session was cleared
	StatusAuthFailure Status = "auth_failure"
	// StatusNoSession means a protected call was skipped for lack of a token
	StatusNoSession Status = "no_session"
	// StatusFailure covers rejected logins, invalid input, network and server errors
	StatusFailure Status = "failure"
)

// Result is everything a caller needs to update UI state after an operation.
// It carries server payloads only; nothing in it is guessed client-side.
type Result struct {
	Op      Op
	Status  Status
	Message string
	Err     error

	Articles  []types.Article // OpFetch
	Article   types.Article   // OpCreate, OpUpdate
	ArticleID int             // OpUpdate, OpDelete
}

// Navigation returns the view the caller should move to, or "" to stay
func (r Result) Navigation() View {
	switch {
	case r.Op == OpLogout:
		return ViewLogin
	case r.Status == StatusAuthFailure, r.Status == StatusNoSession:
		return ViewLogin
	case r.Op == OpLogin && r.Status == StatusSuccess:
		return ViewArticles
	}
	return ""
}
