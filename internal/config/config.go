package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"news-digest/internal/domain/model"
)

// Profile names select a preset of query, zone and summarization settings.
const (
	ProfileEverything = "everything"
	ProfileLanguage   = "language"
	ProfileHeadlines  = "headlines"
	ProfileSummary    = "summary"
)

const (
	defaultEnvFile    = ".env"
	defaultConfigName = "digest"
	defaultTimeout    = 30 * time.Second
	defaultPageSize   = 5
	defaultOutputPath = "README.md"
	defaultTitle      = "한국의 최신 뉴스 (자동 업데이트)"
)

// Options are the command-line inputs to Load.
type Options struct {
	// ConfigFile is an explicit config file; empty means digest.yaml in the working directory, if present.
	ConfigFile string
	// EnvFile is an explicit dotenv file; empty means .env, if present.
	EnvFile string
	// Once forces a single run even when a schedule is configured.
	Once bool
}

// Config contains runtime configuration values.
type Config struct {
	Profile    string           `mapstructure:"profile"`
	News       NewsConfig       `mapstructure:"news"`
	Summarizer SummarizerConfig `mapstructure:"summarizer"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Digest     DigestConfig     `mapstructure:"digest"`
	Output     OutputConfig     `mapstructure:"output"`
	Schedule   ScheduleConfig   `mapstructure:"schedule"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`

	Once bool `mapstructure:"-"`
}

type NewsConfig struct {
	APIKey            string   `mapstructure:"api_key"`
	Endpoint          string   `mapstructure:"endpoint"`
	HeadlinesEndpoint string   `mapstructure:"headlines_endpoint"`
	Query             string   `mapstructure:"query"`
	Language          string   `mapstructure:"language"`
	Category          string   `mapstructure:"category"`
	Country           string   `mapstructure:"country"`
	PageSize          int      `mapstructure:"page_size"`
	FallbackFeeds     []string `mapstructure:"fallback_feeds"`
}

type SummarizerConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	Provider          string  `mapstructure:"provider"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	MaxTokens         int     `mapstructure:"max_tokens"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type DigestConfig struct {
	Title          string `mapstructure:"title"`
	ZoneName       string `mapstructure:"zone_name"`
	UTCOffsetHours int    `mapstructure:"utc_offset_hours"`
}

type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Atomic bool   `mapstructure:"atomic"`
}

type ScheduleConfig struct {
	// Cron is a standard five-field spec; empty means run once.
	Cron string `mapstructure:"cron"`
}

type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load builds a Config from defaults, the selected profile, an optional config file,
// an optional dotenv file and the environment, in increasing precedence.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	profile := strings.ToLower(strings.TrimSpace(v.GetString("profile")))
	if err := applyProfile(v, profile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Profile = profile
	cfg.Once = opts.Once
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile", ProfileEverything)

	v.SetDefault("news.api_key", "")
	v.SetDefault("news.endpoint", "https://newsapi.org/v2/everything")
	v.SetDefault("news.headlines_endpoint", "https://newsapi.org/v2/top-headlines")
	v.SetDefault("news.query", "Korea")
	v.SetDefault("news.language", "")
	v.SetDefault("news.category", "")
	v.SetDefault("news.country", "")
	v.SetDefault("news.page_size", defaultPageSize)
	v.SetDefault("news.fallback_feeds", []string{})

	v.SetDefault("summarizer.enabled", false)
	v.SetDefault("summarizer.provider", "openai")
	v.SetDefault("summarizer.requests_per_second", 1.0)
	v.SetDefault("summarizer.max_tokens", 200)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")

	v.SetDefault("digest.title", defaultTitle)
	v.SetDefault("digest.zone_name", "UTC")
	v.SetDefault("digest.utc_offset_hours", 0)

	v.SetDefault("output.path", defaultOutputPath)
	v.SetDefault("output.atomic", true)

	v.SetDefault("schedule.cron", "")
	v.SetDefault("http.timeout", defaultTimeout)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// applyProfile overrides base defaults; values from the config file or environment still win.
func applyProfile(v *viper.Viper, profile string) error {
	switch profile {
	case "", ProfileEverything:
	case ProfileLanguage:
		v.SetDefault("news.language", "en")
	case ProfileHeadlines:
		v.SetDefault("news.query", "")
		v.SetDefault("news.category", "technology")
		v.SetDefault("news.country", "kr")
	case ProfileSummary:
		v.SetDefault("summarizer.enabled", true)
		v.SetDefault("digest.zone_name", "KST")
		v.SetDefault("digest.utc_offset_hours", 9)
	default:
		return fmt.Errorf("unknown profile %q", profile)
	}
	return nil
}

func (c *Config) normalize() {
	c.Summarizer.Provider = strings.ToLower(strings.TrimSpace(c.Summarizer.Provider))
	c.News.FallbackFeeds = splitList(c.News.FallbackFeeds)
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = defaultTimeout
	}
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
}

// Validate reports missing or inconsistent settings.
func (c *Config) Validate() error {
	if c.News.APIKey == "" {
		return fmt.Errorf("%w: NEWS_API_KEY is required", model.ErrMissingConfig)
	}
	if c.News.Query == "" && c.News.Category == "" && c.News.Country == "" {
		return fmt.Errorf("%w: news.query, news.category or news.country is required", model.ErrMissingConfig)
	}
	if c.News.PageSize <= 0 {
		return fmt.Errorf("news.page_size must be positive, got %d", c.News.PageSize)
	}
	if c.Summarizer.RequestsPerSecond < 0 {
		return fmt.Errorf("summarizer.requests_per_second must not be negative")
	}

	switch c.Summarizer.Provider {
	case "openai":
		if c.Summarizer.Enabled && c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is required when summarization is enabled", model.ErrMissingConfig)
		}
	case "gemini":
		if c.Summarizer.Enabled && c.Gemini.APIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY is required when summarization is enabled", model.ErrMissingConfig)
		}
	default:
		return fmt.Errorf("unsupported summarizer.provider %q", c.Summarizer.Provider)
	}
	return nil
}

// Query returns the news query described by the configuration.
func (c *Config) Query() model.Query {
	return model.Query{
		Term:     c.News.Query,
		Language: c.News.Language,
		Category: c.News.Category,
		Country:  c.News.Country,
		Limit:    c.News.PageSize,
	}
}

// splitList flattens comma-separated entries and drops blanks.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
