package tui

import (
	"articlesdesk/config"
	"articlesdesk/types"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm collects credentials
type loginForm struct {
	username textinput.Model
	password textinput.Model
	focused  int
}

func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "Enter username"
	username.CharLimit = 20
	username.Prompt = "Username: "

	password := textinput.New()
	password.Placeholder = "Enter password"
	password.CharLimit = 20
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword

	f := loginForm{username: username, password: password}
	f.focus(0)
	return f
}

func (f loginForm) credentials() types.Credentials {
	return types.Credentials{Username: f.username.Value(), Password: f.password.Value()}
}

// canSubmit mirrors the disabled state of the submit button
func (f loginForm) canSubmit() bool {
	return f.credentials().Valid()
}

func (f *loginForm) focus(i int) tea.Cmd {
	f.focused = (i%2 + 2) % 2
	if f.focused == 0 {
		f.password.Blur()
		return f.username.Focus()
	}
	f.username.Blur()
	return f.password.Focus()
}

func (f *loginForm) reset() {
	f.username.Reset()
	f.password.Reset()
	f.focus(0)
}

func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focused == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd
}

// article form fields; the topic field is chosen, not typed
const (
	fieldTitle = iota
	fieldText
	fieldTopic
	fieldCount
)

// articleForm creates or edits an article
type articleForm struct {
	title   textinput.Model
	text    textinput.Model
	topic   int // index into config.Topics, -1 when unset
	focused int
	active  bool
}

func newArticleForm() articleForm {
	title := textinput.New()
	title.Placeholder = "Enter title"
	title.CharLimit = 50
	title.Prompt = "Title: "

	text := textinput.New()
	text.Placeholder = "Enter text"
	text.CharLimit = 200
	text.Prompt = "Text:  "

	return articleForm{title: title, text: text, topic: -1}
}

func (f articleForm) draft() types.ArticleDraft {
	d := types.ArticleDraft{Title: f.title.Value(), Text: f.text.Value()}
	if f.topic >= 0 && f.topic < len(config.Topics) {
		d.Topic = config.Topics[f.topic]
	}
	return d
}

func (f articleForm) canSubmit() bool {
	return f.draft().Valid()
}

// fill loads an article into the form for editing
func (f *articleForm) fill(a types.Article) {
	f.title.SetValue(a.Title)
	f.text.SetValue(a.Text)
	f.topic = -1
	for i, t := range config.Topics {
		if t == a.Topic {
			f.topic = i
		}
	}
}

func (f *articleForm) reset() {
	f.title.Reset()
	f.text.Reset()
	f.topic = -1
}

// focus activates the form on field i; blur deactivates it
func (f *articleForm) focus(i int) tea.Cmd {
	f.active = true
	f.focused = (i%fieldCount + fieldCount) % fieldCount
	f.title.Blur()
	f.text.Blur()
	switch f.focused {
	case fieldTitle:
		return f.title.Focus()
	case fieldText:
		return f.text.Focus()
	}
	return nil
}

func (f *articleForm) blur() {
	f.active = false
	f.title.Blur()
	f.text.Blur()
}

// cycleTopic moves the topic selection by delta
func (f *articleForm) cycleTopic(delta int) {
	n := len(config.Topics)
	if f.topic < 0 {
		if delta > 0 {
			f.topic = 0
		} else {
			f.topic = n - 1
		}
		return
	}
	f.topic = ((f.topic+delta)%n + n) % n
}

func (f articleForm) update(msg tea.Msg) (articleForm, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focused {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldText:
		f.text, cmd = f.text.Update(msg)
	}
	return f, cmd
}
