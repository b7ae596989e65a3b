// Package summarizer holds the language-model backed implementations of ports.Summarizer.
package summarizer

import (
	"fmt"
	"strings"
)

// Providers supported by New.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	systemPrompt = "You are a news editor. You write short, neutral Korean summaries of news articles."
	userTemplate = "다음 뉴스를 한두 문장으로 간결하게 요약해 주세요:\n\n%s"

	// maxInputRunes bounds the text sent per article.
	maxInputRunes = 4000
)

func buildPrompt(text string) string {
	return fmt.Sprintf(userTemplate, truncateRunes(strings.TrimSpace(text), maxInputRunes))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// cleanOutput collapses model output to one line so it fits a Markdown quote.
func cleanOutput(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
