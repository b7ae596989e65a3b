// Package newsapi fetches articles from newsapi.org style endpoints.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"news-digest/internal/adapter/textclean"
	"news-digest/internal/domain/model"
	"news-digest/internal/domain/ports"
)

const (
	DefaultEverythingEndpoint = "https://newsapi.org/v2/everything"
	DefaultHeadlinesEndpoint  = "https://newsapi.org/v2/top-headlines"

	statusOK = "ok"
)

// Config holds the endpoint and credentials of a NewsAPI client.
type Config struct {
	APIKey             string
	EverythingEndpoint string
	HeadlinesEndpoint  string
	Timeout            time.Duration
}

// Client implements ports.ArticleProvider on top of the NewsAPI REST interface.
type Client struct {
	http       *resty.Client
	apiKey     string
	everything string
	headlines  string
	logger     ports.Logger
}

var _ ports.ArticleProvider = (*Client)(nil)

type response struct {
	Status   string       `json:"status"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Articles []rawArticle `json:"articles"`
}

type rawArticle struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// New builds a NewsAPI client.
func New(cfg Config, logger ports.Logger) *Client {
	if cfg.EverythingEndpoint == "" {
		cfg.EverythingEndpoint = DefaultEverythingEndpoint
	}
	if cfg.HeadlinesEndpoint == "" {
		cfg.HeadlinesEndpoint = DefaultHeadlinesEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "news-digest/1.0"),
		apiKey:     cfg.APIKey,
		everything: cfg.EverythingEndpoint,
		headlines:  cfg.HeadlinesEndpoint,
		logger:     logger,
	}
}

// FetchArticles performs one search and returns the articles in response order.
func (c *Client) FetchArticles(ctx context.Context, query model.Query) ([]model.Article, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("news api key: %w", model.ErrMissingConfig)
	}

	endpoint, params := c.request(query)
	if c.logger != nil {
		c.logger.Debug(ctx, "requesting news", "endpoint", endpoint, "q", query.Term, "page_size", params["pageSize"])
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch news: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		return nil, fmt.Errorf("%w: news api status %d: %s", model.ErrUpstreamStatus, resp.StatusCode(), responseSnippet(body))
	}

	var payload response
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}
	if payload.Status != statusOK {
		return nil, fmt.Errorf("%w: news api status %q code %q: %s", model.ErrUpstreamStatus, payload.Status, payload.Code, payload.Message)
	}

	limit := query.EffectiveLimit()
	articles := make([]model.Article, 0, min(len(payload.Articles), limit))
	for _, raw := range payload.Articles {
		if len(articles) >= limit {
			break
		}
		articles = append(articles, model.NewArticle(
			textclean.PlainText(deref(raw.Title)),
			textclean.PlainText(deref(raw.Description)),
			strings.TrimSpace(deref(raw.URL)),
		))
	}

	return articles, nil
}

func (c *Client) request(query model.Query) (string, map[string]string) {
	params := map[string]string{
		"apiKey":   c.apiKey,
		"pageSize": strconv.Itoa(query.EffectiveLimit()),
	}
	if query.Term != "" {
		params["q"] = query.Term
	}
	if !query.Headlines() {
		if query.Language != "" {
			params["language"] = query.Language
		}
		return c.everything, params
	}
	if query.Category != "" {
		params["category"] = query.Category
	}
	if query.Country != "" {
		params["country"] = query.Country
	}
	return c.headlines, params
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// responseSnippet returns a truncated snippet of the response body for logging.
func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
