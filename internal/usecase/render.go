package usecase

import (
	"fmt"
	"strings"
	"time"

	"news-digest/internal/domain/model"
)

const (
	// FetchFailedMessage is the body of a digest without articles.
	FetchFailedMessage = "⚠️ 최신 뉴스를 가져오는 데 실패했습니다."
	// SummaryFailedText replaces an article summary when generation fails.
	SummaryFailedText = "요약 실패"
	// DefaultTitle is the digest heading.
	DefaultTitle = "한국의 최신 뉴스 (자동 업데이트)"

	timestampLayout = "2006-01-02 15:04:05 MST"
)

// FormatTimestamp renders t in loc as "YYYY-MM-DD HH:MM:SS ZONE".
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(timestampLayout)
}

// FixedZone returns a location with a fixed offset in whole hours.
// An empty or "UTC" name with a non-zero offset is relabelled so the zone
// shown in the timestamp matches the clock: +9 is KST, anything else UTC±N.
func FixedZone(name string, offsetHours int) *time.Location {
	if name == "" || name == "UTC" {
		if offsetHours == 0 {
			return time.UTC
		}
		name = zoneLabel(offsetHours)
	}
	return time.FixedZone(name, offsetHours*60*60)
}

func zoneLabel(offsetHours int) string {
	if offsetHours == 9 {
		return "KST"
	}
	return fmt.Sprintf("UTC%+d", offsetHours)
}

// RenderArticles returns the Markdown body listing the articles, or the failure sentence.
func RenderArticles(articles []model.Article) string {
	if len(articles) == 0 {
		return FetchFailedMessage
	}

	var b strings.Builder
	for i, a := range articles {
		fmt.Fprintf(&b, "**%d. [%s](%s)**\n> %s\n\n", i+1, a.Title, a.URL, a.Quote())
	}
	return b.String()
}

// Render produces the full README document for a digest.
func Render(d model.Digest) string {
	title := d.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 📢 %s\n\n", title)
	b.WriteString("## 📰 오늘의 뉴스\n")
	b.WriteString(RenderArticles(d.Articles))
	fmt.Fprintf(&b, "\n⏳ 업데이트 시간: %s\n", FormatTimestamp(d.GeneratedAt, d.Location))
	return b.String()
}
