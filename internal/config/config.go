package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nekomori/animeseek/internal/fuzzy"
	"github.com/nekomori/animeseek/internal/logging"
	"github.com/nekomori/animeseek/internal/paths"
	"github.com/nekomori/animeseek/internal/provider"
	"github.com/nekomori/animeseek/internal/resolver"
)

type Config struct {
	Source   provider.Config `mapstructure:"source"`
	Matcher  fuzzy.Config    `mapstructure:"matcher"`
	Resolver resolver.Config `mapstructure:"resolver"`
	Cache    CacheConfig     `mapstructure:"cache"`
	Fetch    FetchConfig     `mapstructure:"fetch"`
	Server   ServerConfig    `mapstructure:"server"`
	Logging  logging.Config  `mapstructure:"logging"`
}

// CacheConfig tunes the in-memory result caches.
type CacheConfig struct {
	TTL      time.Duration `mapstructure:"ttl"`
	Capacity int           `mapstructure:"capacity"`
}

// FetchConfig tunes the HTTP page fetcher.
type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: provider.Config{
			SearchURL: "https://nyaa.si/?f=0&c=1_2&q=%s",
			BaseURL:   "https://nyaa.si",
		},
		Matcher:  fuzzy.DefaultConfig(),
		Resolver: resolver.DefaultConfig(),
		Cache: CacheConfig{
			TTL:      5 * time.Minute,
			Capacity: 100,
		},
		Fetch: FetchConfig{
			Timeout:   15 * time.Second,
			UserAgent: "animeseek/1.0",
		},
		Server: ServerConfig{
			Addr: ":8787",
		},
		Logging: logging.Config{
			Level:     "info",
			File:      "",
			MaxSizeMB: 10,
		},
	}
}

// Load loads configuration from the default location or returns defaults.
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from an explicit file path. A missing file
// is not an error; defaults cover it.
func LoadFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}

	content := c.ToTOML()
	return os.WriteFile(configFile, []byte(content), 0644)
}

func ConfigPath() (string, error) {
	return paths.ConfigPath()
}

func ConfigExists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# Animeseek Configuration
# Generated by: animeseek config init

# ============================================================================
# SOURCE
# The torrent index searched for anime pages. search_url must contain one
# %%s placeholder for the escaped query; base_url resolves relative links.
# ============================================================================
[source]
search_url = "%s"
base_url = "%s"

# ============================================================================
# TITLE MATCHER
# Scoring thresholds for fuzzy title comparison
# ============================================================================
[matcher]
max_edit_distance = %d
min_similarity = %.2f

[matcher.weights]
exact = %d
fuzzy = %d
normalized = %d
phonetic = %d

# ============================================================================
# PAGE RESOLVER
# ============================================================================
[resolver]
min_title_length = %d
early_exit_score = %d
max_fuzzy_candidates = %d

# ============================================================================
# RESULT CACHE
# In-memory only; entries expire after ttl, oldest evicted at capacity
# ============================================================================
[cache]
ttl = "%s"
capacity = %d

# ============================================================================
# HTTP FETCH
# ============================================================================
[fetch]
timeout = "%s"
user_agent = "%s"

# ============================================================================
# API SERVER
# For animeseek serve
# ============================================================================
[server]
addr = "%s"

# ============================================================================
# LOGGING
# ============================================================================
[logging]
level = "%s"
file = "%s"
max_size_mb = %d
`,
		escapeTOML(c.Source.SearchURL),
		escapeTOML(c.Source.BaseURL),
		c.Matcher.MaxEditDistance,
		c.Matcher.MinSimilarity,
		c.Matcher.Weights.Exact,
		c.Matcher.Weights.Fuzzy,
		c.Matcher.Weights.Normalized,
		c.Matcher.Weights.Phonetic,
		c.Resolver.MinTitleLength,
		c.Resolver.EarlyExitScore,
		c.Resolver.MaxFuzzyCandidates,
		c.Cache.TTL,
		c.Cache.Capacity,
		c.Fetch.Timeout,
		escapeTOML(c.Fetch.UserAgent),
		c.Server.Addr,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
	)
}

func escapeTOML(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
