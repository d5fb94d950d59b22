package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "citeview.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8091" {
		t.Errorf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected default theme light, got %q", cfg.Theme)
	}
	if cfg.ReplyDelay != 1200*time.Millisecond {
		t.Errorf("expected default reply delay, got %v", cfg.ReplyDelay)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citeview.yml")
	yaml := "addr: \":9000\"\ndocs_dir: /srv/docs\ntheme: dark\nreply_delay: 500ms\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("expected addr :9000, got %q", cfg.Addr)
	}
	if cfg.DocsDir != "/srv/docs" {
		t.Errorf("expected docs_dir /srv/docs, got %q", cfg.DocsDir)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("expected theme dark, got %q", cfg.Theme)
	}
	if cfg.ReplyDelay != 500*time.Millisecond {
		t.Errorf("expected reply delay 500ms, got %v", cfg.ReplyDelay)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citeview.yml")
	if err := os.WriteFile(path, []byte("docs_dir: /from/file\n"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("CITEVIEW_DOCS_DIR", "/from/env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DocsDir != "/from/env" {
		t.Errorf("expected env override, got %q", cfg.DocsDir)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "citeview.yml")

	cfg := Default()
	cfg.Theme = ThemeDark
	cfg.DocsDir = "library"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if loaded.Theme != ThemeDark {
		t.Errorf("expected theme to survive round trip, got %q", loaded.Theme)
	}
	if loaded.DocsDir != "library" {
		t.Errorf("expected docs_dir to survive round trip, got %q", loaded.DocsDir)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"missing addr", func(c *Config) { c.Addr = "" }, false},
		{"missing docs dir", func(c *Config) { c.DocsDir = "" }, false},
		{"bad theme", func(c *Config) { c.Theme = "sepia" }, false},
		{"negative delay", func(c *Config) { c.ReplyDelay = -time.Second }, false},
		{"dark theme", func(c *Config) { c.Theme = ThemeDark }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
