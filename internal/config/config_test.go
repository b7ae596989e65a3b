package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-digest/internal/domain/model"
	"news-digest/internal/usecase"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROFILE",
		"NEWS_API_KEY", "NEWS_ENDPOINT", "NEWS_HEADLINES_ENDPOINT", "NEWS_QUERY", "NEWS_LANGUAGE",
		"NEWS_CATEGORY", "NEWS_COUNTRY", "NEWS_PAGE_SIZE", "NEWS_FALLBACK_FEEDS",
		"SUMMARIZER_ENABLED", "SUMMARIZER_PROVIDER", "SUMMARIZER_REQUESTS_PER_SECOND", "SUMMARIZER_MAX_TOKENS",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"DIGEST_TITLE", "DIGEST_ZONE_NAME", "DIGEST_UTC_OFFSET_HOURS",
		"OUTPUT_PATH", "OUTPUT_ATOMIC", "SCHEDULE_CRON", "HTTP_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func emptyEnvFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")

	cfg, err := Load(Options{EnvFile: emptyEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, ProfileEverything, cfg.Profile)
	assert.Equal(t, "key", cfg.News.APIKey)
	assert.Equal(t, "https://newsapi.org/v2/everything", cfg.News.Endpoint)
	assert.Equal(t, model.Query{Term: "Korea", Limit: 5}, cfg.Query())
	assert.False(t, cfg.Summarizer.Enabled)
	assert.Equal(t, "UTC", cfg.Digest.ZoneName)
	assert.Zero(t, cfg.Digest.UTCOffsetHours)
	assert.Equal(t, "README.md", cfg.Output.Path)
	assert.True(t, cfg.Output.Atomic)
	assert.Empty(t, cfg.Schedule.Cron)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Empty(t, cfg.News.FallbackFeeds)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{EnvFile: emptyEnvFile(t)})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMissingConfig)
}

func TestLoadProfiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			profile: ProfileLanguage,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "en", cfg.News.Language)
				assert.Equal(t, "Korea", cfg.News.Query)
			},
		},
		{
			profile: ProfileHeadlines,
			check: func(t *testing.T, cfg *Config) {
				q := cfg.Query()
				assert.True(t, q.Headlines())
				assert.Equal(t, "technology", q.Category)
				assert.Equal(t, "kr", q.Country)
				assert.Empty(t, q.Term)
			},
		},
		{
			profile: ProfileSummary,
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Summarizer.Enabled)
				assert.Equal(t, "KST", cfg.Digest.ZoneName)
				assert.Equal(t, 9, cfg.Digest.UTCOffsetHours)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("NEWS_API_KEY", "key")
			t.Setenv("OPENAI_API_KEY", "sk-test")
			t.Setenv("PROFILE", tt.profile)

			cfg, err := Load(Options{EnvFile: emptyEnvFile(t)})
			require.NoError(t, err)
			assert.Equal(t, tt.profile, cfg.Profile)
			tt.check(t, cfg)
		})
	}
}

func TestLoadUnknownProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("PROFILE", "weekly")

	_, err := Load(Options{EnvFile: emptyEnvFile(t)})
	assert.ErrorContains(t, err, "unknown profile")
}

func TestLoadEnvOverridesProfile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("PROFILE", ProfileSummary)
	t.Setenv("SUMMARIZER_PROVIDER", "Gemini")
	t.Setenv("DIGEST_UTC_OFFSET_HOURS", "0")
	t.Setenv("DIGEST_ZONE_NAME", "UTC")
	t.Setenv("NEWS_FALLBACK_FEEDS", "https://a.example/rss, https://b.example/rss")

	cfg, err := Load(Options{EnvFile: emptyEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Summarizer.Provider)
	assert.Equal(t, "UTC", cfg.Digest.ZoneName)
	assert.Zero(t, cfg.Digest.UTCOffsetHours)
	assert.Equal(t, []string{"https://a.example/rss", "https://b.example/rss"}, cfg.News.FallbackFeeds)
}

func TestLoadSummaryRequiresProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("PROFILE", ProfileSummary)

	_, err := Load(Options{EnvFile: emptyEnvFile(t)})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMissingConfig)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")
	t.Setenv("OUTPUT_PATH", "docs/NEWS.md")

	path := filepath.Join(t.TempDir(), "digest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
news:
  query: Seoul
  page_size: 3
  fallback_feeds:
    - https://feeds.example/world.xml
output:
  path: ignored.md
  atomic: false
schedule:
  cron: "0 */6 * * *"
http:
  timeout: 10s
`), 0o600))

	cfg, err := Load(Options{ConfigFile: path, EnvFile: emptyEnvFile(t), Once: true})
	require.NoError(t, err)

	assert.Equal(t, "Seoul", cfg.News.Query)
	assert.Equal(t, 3, cfg.News.PageSize)
	assert.Equal(t, []string{"https://feeds.example/world.xml"}, cfg.News.FallbackFeeds)
	assert.Equal(t, "docs/NEWS.md", cfg.Output.Path)
	assert.False(t, cfg.Output.Atomic)
	assert.Equal(t, "0 */6 * * *", cfg.Schedule.Cron)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.True(t, cfg.Once)
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")

	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml"), EnvFile: emptyEnvFile(t)})
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv never overrides variables that are already set.
	require.NoError(t, os.Unsetenv("NEWS_API_KEY"))
	require.NoError(t, os.Unsetenv("NEWS_QUERY"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("NEWS_API_KEY=from-dotenv\nNEWS_QUERY=Busan\n"), 0o600))

	cfg, err := Load(Options{EnvFile: path})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.News.APIKey)
	assert.Equal(t, "Busan", cfg.News.Query)
}

func TestLoadExplicitEnvFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")

	_, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			News:       NewsConfig{APIKey: "k", Query: "Korea", PageSize: 5},
			Summarizer: SummarizerConfig{Provider: "openai"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		wantOK bool
	}{
		{name: "valid", mutate: func(*Config) {}, wantOK: true},
		{name: "category only", mutate: func(c *Config) { c.News.Query = ""; c.News.Category = "science" }, wantOK: true},
		{name: "country only", mutate: func(c *Config) { c.News.Query = ""; c.News.Country = "kr" }, wantOK: true},
		{name: "no query, category or country", mutate: func(c *Config) { c.News.Query = "" }},
		{name: "zero page size", mutate: func(c *Config) { c.News.PageSize = 0 }},
		{name: "unknown provider", mutate: func(c *Config) { c.Summarizer.Provider = "claude" }},
		{name: "gemini without key", mutate: func(c *Config) {
			c.Summarizer.Enabled = true
			c.Summarizer.Provider = "gemini"
		}},
		{name: "disabled summarizer needs no key", mutate: func(c *Config) { c.Summarizer.Provider = "gemini" }, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoadOffsetWithDefaultZoneName(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWS_API_KEY", "key")

	path := filepath.Join(t.TempDir(), "digest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("digest:\n  utc_offset_hours: 9\n"), 0o600))

	cfg, err := Load(Options{ConfigFile: path, EnvFile: emptyEnvFile(t)})
	require.NoError(t, err)

	loc := usecase.FixedZone(cfg.Digest.ZoneName, cfg.Digest.UTCOffsetHours)
	stamp := usecase.FormatTimestamp(time.Date(2025, 3, 1, 18, 30, 5, 0, time.UTC), loc)
	assert.Equal(t, "2025-03-02 03:30:05 KST", stamp)
}
