package model

import "strings"

// Placeholders used when the upstream omits a field.
const (
	DefaultTitle       = "제목 없음"
	DefaultDescription = "설명 없음"
	DefaultURL         = "https://newsapi.org/"
)

// Article is a single news item reduced to what the digest renders.
type Article struct {
	Title       string
	Description string
	URL         string
	// Summary replaces Description in the digest when set.
	Summary string
}

// NewArticle builds an Article, substituting placeholders for blank fields.
func NewArticle(title, description, url string) Article {
	return Article{
		Title:       orDefault(title, DefaultTitle),
		Description: orDefault(description, DefaultDescription),
		URL:         orDefault(url, DefaultURL),
	}
}

// SummaryInput returns the text handed to a summarizer: the description, or the
// title when the description is missing.
func (a Article) SummaryInput() string {
	if a.Description == "" || a.Description == DefaultDescription {
		return a.Title
	}
	return a.Description
}

// Quote returns the text shown under the article link.
func (a Article) Quote() string {
	if a.Summary != "" {
		return a.Summary
	}
	return a.Description
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
