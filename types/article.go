package types

import (
	"slices"
	"strings"

	"articlesdesk/config"
)

// Article represents a single article as returned by the backend
type Article struct {
	ID    int    `json:"article_id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

// ArticleDraft is the payload sent when creating or updating an article
type ArticleDraft struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

// Draft returns the editable fields of the article
func (a Article) Draft() ArticleDraft {
	return ArticleDraft{Title: a.Title, Text: a.Text, Topic: a.Topic}
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (d ArticleDraft) Trimmed() ArticleDraft {
	return ArticleDraft{
		Title: strings.TrimSpace(d.Title),
		Text:  strings.TrimSpace(d.Text),
		Topic: strings.TrimSpace(d.Topic),
	}
}

// Valid reports whether the draft may be submitted
func (d ArticleDraft) Valid() bool {
	t := d.Trimmed()
	return t.Title != "" && t.Text != "" && IsTopic(t.Topic)
}

// IsTopic reports whether topic is one of config.Topics
func IsTopic(topic string) bool {
	return slices.Contains(config.Topics, topic)
}
