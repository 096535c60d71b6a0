package tui

import (
	"context"

	"articlesdesk/app"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus is the part of the articles screen receiving keys
type focus int

const (
	focusList focus = iota
	focusForm
)

// Model is the root bubbletea model. All UI state lives in State; the
// remaining fields are widgets and cursor positions.
type Model struct {
	Controller *app.Controller
	State      app.State

	ctx     context.Context
	login   loginForm
	article articleForm
	spinner spinner.Model
	cursor  int
	focus   focus
}

// NewModel creates the root model. authenticated selects the starting view.
func NewModel(ctx context.Context, controller *app.Controller, authenticated bool) Model {
	m := Model{
		Controller: controller,
		State:      app.NewState(authenticated),
		ctx:        ctx,
		login:      newLoginForm(),
		article:    newArticleForm(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))),
		),
		focus: focusList,
	}
	if m.State.View == app.ViewArticles {
		// Init issues the matching fetch
		m.State = m.State.Begin()
	}
	return m
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	if m.State.View == app.ViewArticles {
		cmds = append(cmds, fetchArticles(m.ctx, m.Controller))
	}
	return tea.Batch(cmds...)
}

// beginFetch enters Pending and loads the article list, as mounting the
// articles screen does
func (m Model) beginFetch() (Model, tea.Cmd) {
	m.State = m.State.Begin()
	return m, fetchArticles(m.ctx, m.Controller)
}

// selectedArticleID returns the id under the list cursor, or 0
func (m Model) selectedArticleID() int {
	if m.cursor < 0 || m.cursor >= len(m.State.Articles) {
		return 0
	}
	return m.State.Articles[m.cursor].ID
}

// clampCursor keeps the list cursor inside the article list
func (m Model) clampCursor() Model {
	if m.cursor >= len(m.State.Articles) {
		m.cursor = len(m.State.Articles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}
