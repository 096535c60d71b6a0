package tui

import "articlesdesk/app"

// ResultMsg carries a finished controller operation back to Update
type ResultMsg struct {
	Result app.Result
}
