package tui

import (
	"context"

	"articlesdesk/app"
	"articlesdesk/types"

	tea "github.com/charmbracelet/bubbletea"
)

// login creates a command that authenticates with creds
func login(ctx context.Context, c *app.Controller, creds types.Credentials) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.Login(ctx, creds)}
	}
}

// logout creates a command that clears the session
func logout(ctx context.Context, c *app.Controller) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.Logout(ctx)}
	}
}

// fetchArticles creates a command that reloads the article list
func fetchArticles(ctx context.Context, c *app.Controller) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.FetchArticles(ctx)}
	}
}

// postArticle creates a command that creates an article
func postArticle(ctx context.Context, c *app.Controller, draft types.ArticleDraft) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.CreateArticle(ctx, draft)}
	}
}

// updateArticle creates a command that saves an edited article
func updateArticle(ctx context.Context, c *app.Controller, id int, draft types.ArticleDraft) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.UpdateArticle(ctx, id, draft)}
	}
}

// deleteArticle creates a command that removes an article
func deleteArticle(ctx context.Context, c *app.Controller, id int) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: c.DeleteArticle(ctx, id)}
	}
}
