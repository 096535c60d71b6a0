package tui

import (
	"fmt"
	"strings"

	"articlesdesk/app"
	"articlesdesk/config"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Spinner and message banner sit outside the dimmed wrapper
	if m.State.Loading {
		b.WriteString(m.spinner.View() + " " + SpinnerStyle.Render(TextSpinner))
		b.WriteString("\n")
	}
	if m.State.Message != "" {
		b.WriteString(NoticeStyle.Render(m.State.Message))
		b.WriteString("\n")
	}
	if m.State.Err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ %v", m.State.Err)))
		b.WriteString("\n")
	}

	wrapper := m.wrapperView()
	if m.State.Loading {
		wrapper = DimStyle.Render(wrapper)
	}
	b.WriteString(wrapper)
	b.WriteString("\n")

	b.WriteString(MutedStyle.Render(TextHelpGlobal))
	return b.String()
}

func (m Model) wrapperView() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("\n")
	b.WriteString(m.navView())
	b.WriteString("\n\n")

	switch m.State.View {
	case app.ViewLogin:
		b.WriteString(m.loginView())
	case app.ViewArticles:
		b.WriteString(m.articleFormView())
		b.WriteString("\n")
		b.WriteString(m.articlesView())
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(TextFooter))
	b.WriteString("\n")
	return b.String()
}

func (m Model) navView() string {
	link := func(label string, v app.View) string {
		if m.State.View == v {
			return NoticeStyle.Render(label)
		}
		return MutedStyle.Render(label)
	}
	return link(TextNavLogin, app.ViewLogin) + "  " + link(TextNavArticles, app.ViewArticles)
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(TextLoginHeading))
	b.WriteString("\n")
	b.WriteString(m.login.username.View())
	b.WriteString("\n")
	b.WriteString(m.login.password.View())
	b.WriteString("\n\n")
	b.WriteString(button("Submit credentials", m.login.canSubmit()))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(TextHelpLogin))
	return CardStyle.Render(b.String())
}

func (m Model) articleFormView() string {
	var b strings.Builder

	heading := TextCreateHeading
	help := TextHelpForm
	if m.State.Editing() {
		heading = TextEditHeading
		help = TextHelpFormEdit
	}
	b.WriteString(TitleStyle.Render(heading))
	b.WriteString("\n")
	b.WriteString(m.article.title.View())
	b.WriteString("\n")
	b.WriteString(m.article.text.View())
	b.WriteString("\n")
	b.WriteString(m.topicView())
	b.WriteString("\n\n")
	b.WriteString(button("Submit", m.article.canSubmit()))
	if m.State.Editing() {
		b.WriteString(" " + button("Cancel edit", true))
	}
	b.WriteString("\n")
	if m.article.active {
		b.WriteString(MutedStyle.Render(help))
	}

	if m.article.active {
		return SelectedCardStyle.Render(b.String())
	}
	return CardStyle.Render(b.String())
}

func (m Model) topicView() string {
	prefix := "Topic: "
	if m.article.active && m.article.focused == fieldTopic {
		prefix = "> Topic: "
	}
	if m.article.topic < 0 || m.article.topic >= len(config.Topics) {
		return prefix + MutedStyle.Render("-- Select topic --")
	}
	return prefix + "◀ " + config.Topics[m.article.topic] + " ▶"
}

func (m Model) articlesView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(TextListHeading))
	b.WriteString("\n")

	if len(m.State.Articles) == 0 {
		b.WriteString(MutedStyle.Render(TextNoArticles))
		b.WriteString("\n")
	}

	actions := !m.State.Editing()
	for i, a := range m.State.Articles {
		var card strings.Builder
		card.WriteString(ArticleTitleStyle.Render(a.Title))
		card.WriteString("\n")
		card.WriteString(a.Text)
		card.WriteString("\n")
		card.WriteString(MutedStyle.Render("Topic: " + a.Topic))
		card.WriteString("\n")
		card.WriteString(button("Edit", actions) + " " + button("Delete", actions))

		style := CardStyle
		if i == m.cursor && m.focus == focusList {
			style = SelectedCardStyle
		}
		b.WriteString(style.Render(card.String()))
		b.WriteString("\n")
	}

	if m.focus == focusList {
		b.WriteString(MutedStyle.Render(TextHelpList))
		b.WriteString("\n")
	}
	return b.String()
}

// button renders a pseudo-button, greyed out when disabled
func button(label string, enabled bool) string {
	if enabled {
		return NoticeStyle.Render(label)
	}
	return MutedStyle.Render("[" + label + "]")
}
