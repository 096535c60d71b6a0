package tui

import (
	"articlesdesk/app"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ResultMsg:
		return m.handleResult(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m.updateInputs(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		m.State = m.State.Navigate(app.ViewLogin)
		cmd := m.login.focus(0)
		return m, cmd
	case "f2":
		m.State = m.State.Navigate(app.ViewArticles)
		return m.beginFetch()
	case "ctrl+o":
		return m, logout(m.ctx, m.Controller)
	}

	if m.State.View == app.ViewLogin {
		return m.handleLoginKey(msg)
	}
	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

// handleLoginKey drives the login form
func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		cmd := m.login.focus(m.login.focused + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.login.focus(m.login.focused - 1)
		return m, cmd
	case "enter":
		if !m.login.canSubmit() {
			return m, nil
		}
		m.State = m.State.Begin()
		return m, login(m.ctx, m.Controller, m.login.credentials())
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

// handleListKey drives the article list
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.State.Articles)-1 {
			m.cursor++
		}
	case "e":
		id := m.selectedArticleID()
		if m.State.Editing() || id == 0 {
			return m, nil
		}
		m.State = m.State.SelectArticle(id)
		if a, ok := m.State.CurrentArticle(); ok {
			m.article.fill(a)
		}
		m.focus = focusForm
		cmd := m.article.focus(fieldTitle)
		return m, cmd
	case "d":
		id := m.selectedArticleID()
		if m.State.Editing() || id == 0 {
			return m, nil
		}
		m.State = m.State.Begin()
		return m, deleteArticle(m.ctx, m.Controller, id)
	case "r":
		return m.beginFetch()
	case "tab":
		m.focus = focusForm
		cmd := m.article.focus(fieldTitle)
		return m, cmd
	}
	return m, nil
}

// handleFormKey drives the article form
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		cmd := m.article.focus(m.article.focused + 1)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.article.focus(m.article.focused - 1)
		return m, cmd
	case "left", "right":
		if m.article.focused == fieldTopic {
			if msg.String() == "left" {
				m.article.cycleTopic(-1)
			} else {
				m.article.cycleTopic(1)
			}
			return m, nil
		}
	case "esc":
		if m.State.Editing() {
			m.State = m.State.CancelEdit()
			m.article.reset()
		}
		m.article.blur()
		m.focus = focusList
		return m, nil
	case "enter":
		if !m.article.canSubmit() {
			return m, nil
		}
		draft := m.article.draft()
		if m.State.Editing() {
			id := m.State.CurrentArticleID
			m.State = m.State.Begin()
			return m, updateArticle(m.ctx, m.Controller, id, draft)
		}
		m.State = m.State.Begin()
		return m, postArticle(m.ctx, m.Controller, draft)
	}

	var cmd tea.Cmd
	m.article, cmd = m.article.update(msg)
	return m, cmd
}

// handleResult folds a finished operation into the state and reacts to navigation
func (m Model) handleResult(msg ResultMsg) (tea.Model, tea.Cmd) {
	prevView := m.State.View
	prevEditing := m.State.Editing()
	m.State = m.State.Apply(msg.Result)
	m = m.clampCursor()

	// the selected article went away; the form must not turn into a create
	if prevEditing && !m.State.Editing() {
		m.article.reset()
		m.article.blur()
		m.focus = focusList
	}

	if msg.Result.Status == app.StatusSuccess {
		switch msg.Result.Op {
		case app.OpLogin:
			m.login.reset()
		case app.OpCreate, app.OpUpdate:
			m.article.reset()
			m.article.blur()
			m.focus = focusList
		}
	}

	if m.State.View == prevView {
		return m, nil
	}

	switch m.State.View {
	case app.ViewArticles:
		return m.beginFetch()
	case app.ViewLogin:
		m.article.reset()
		m.article.blur()
		m.focus = focusList
		cmd := m.login.focus(0)
		return m, cmd
	}
	return m, nil
}

// updateInputs forwards non-key messages (cursor blink) to the focused input
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.State.View == app.ViewLogin:
		m.login, cmd = m.login.update(msg)
	case m.article.active:
		m.article, cmd = m.article.update(msg)
	}
	return m, cmd
}
