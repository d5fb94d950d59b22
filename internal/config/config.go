package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Theme is the user-facing color scheme, loaded at startup and written
// back on change.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Config is the top-level citeview configuration, corresponding to
// citeview.yml.
type Config struct {
	Addr    string `yaml:"addr" koanf:"addr"`
	DocsDir string `yaml:"docs_dir" koanf:"docs_dir"`

	// APIKey guards the API when set; empty means open access for a
	// local viewer.
	APIKey string `yaml:"api_key,omitempty" koanf:"api_key"`

	Theme Theme `yaml:"theme" koanf:"theme"`

	// ReplyDelay is how long the mock assistant waits before replying.
	ReplyDelay time.Duration `yaml:"reply_delay" koanf:"reply_delay"`

	// PDFFallbackPdftotext enables the pdftotext fallback when the Go
	// PDF library fails to extract text.
	PDFFallbackPdftotext bool `yaml:"pdf_fallback_pdftotext" koanf:"pdf_fallback_pdftotext"`

	// AllowAllOrigins opens CORS to any origin (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:                 ":8091",
		DocsDir:              "docs",
		Theme:                ThemeLight,
		ReplyDelay:           1200 * time.Millisecond,
		PDFFallbackPdftotext: true,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CITEVIEW_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// CITEVIEW_DOCS_DIR -> docs_dir, etc.
	if err := k.Load(env.Provider("CITEVIEW_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CITEVIEW_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		return fmt.Errorf("invalid theme %q: must be light or dark", c.Theme)
	}
	if c.ReplyDelay < 0 {
		return fmt.Errorf("reply_delay must be non-negative")
	}
	return nil
}
