package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Contact.DelayMS != 1000 {
		t.Errorf("expected default delay_ms 1000, got %d", cfg.Contact.DelayMS)
	}
	if cfg.Contact.Archive {
		t.Error("archive must be off by default")
	}
	if cfg.Site.Theme != ThemeDark {
		t.Errorf("expected default theme %q, got %q", ThemeDark, cfg.Site.Theme)
	}
	if len(cfg.Site.Projects) != 3 {
		t.Errorf("expected 3 default projects, got %d", len(cfg.Site.Projects))
	}
	if cfg.ContactDelay() != time.Second {
		t.Errorf("ContactDelay = %v, want 1s", cfg.ContactDelay())
	}
}

func TestDefaultConfigIsolated(t *testing.T) {
	a := DefaultConfig()
	a.Site.Projects[0].Title = "changed"
	if DefaultConfig().Site.Projects[0].Title == "changed" {
		t.Error("DefaultConfig shares project slices between calls")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	original := DefaultConfig()
	original.Server.Port = 8081
	original.Site.Name = "Grace Hopper"
	original.Site.Theme = ThemeLight
	original.Site.Skills = []string{"COBOL", "Compilers"}
	original.Contact.DelayMS = 250
	original.Contact.Archive = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Server.Port != 8081 {
		t.Errorf("port: got %d, want 8081", loaded.Server.Port)
	}
	if loaded.Site.Name != original.Site.Name {
		t.Errorf("name: got %q, want %q", loaded.Site.Name, original.Site.Name)
	}
	if loaded.Site.Theme != ThemeLight {
		t.Errorf("theme: got %q, want %q", loaded.Site.Theme, ThemeLight)
	}
	if loaded.Contact.DelayMS != 250 {
		t.Errorf("delay_ms: got %d, want 250", loaded.Contact.DelayMS)
	}
	if !loaded.Contact.Archive {
		t.Error("archive: got false, want true")
	}
	if len(loaded.Site.Skills) != 2 || loaded.Site.Skills[1] != "Compilers" {
		t.Errorf("skills: got %v", loaded.Site.Skills)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Site.Name != DefaultConfig().Site.Name {
		t.Errorf("expected default name, got %q", cfg.Site.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults loaded from a missing file should validate: %v", err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	data := `site:
  name: Ada Lovelace
  projects:
    - title: Analytical Engine
      description: Notes on the **engine**
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Site.Name != "Ada Lovelace" {
		t.Errorf("name: got %q", cfg.Site.Name)
	}
	// The file's list replaces the default list rather than merging into it.
	if len(cfg.Site.Projects) != 1 {
		t.Fatalf("projects: got %d, want 1", len(cfg.Site.Projects))
	}
	if cfg.Site.Email != DefaultConfig().Site.Email {
		t.Errorf("email should keep its default, got %q", cfg.Site.Email)
	}
	if cfg.Contact.DelayMS != 1000 {
		t.Errorf("delay_ms should keep its default, got %d", cfg.Contact.DelayMS)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("PORTFOLIO_SERVER__PORT", "9090")
	t.Setenv("PORTFOLIO_CONTACT__DELAY_MS", "0")
	t.Setenv("PORTFOLIO_SITE__THEME", "light")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port override failed: got %d", loaded.Server.Port)
	}
	if loaded.Contact.DelayMS != 0 {
		t.Errorf("delay override failed: got %d", loaded.Contact.DelayMS)
	}
	if loaded.Site.Theme != ThemeLight {
		t.Errorf("theme override failed: got %q", loaded.Site.Theme)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yml")
	if err := os.WriteFile(path, []byte("site: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateDelayBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contact.DelayMS = MaxDelayMS
	if err := cfg.Validate(); err != nil {
		t.Errorf("delay of %d ms should be valid, got: %v", MaxDelayMS, err)
	}
	cfg.Contact.DelayMS = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero delay should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"empty name", func(c *Config) { c.Site.Name = "  " }},
		{"unknown theme", func(c *Config) { c.Site.Theme = "sepia" }},
		{"untitled project", func(c *Config) { c.Site.Projects[1].Title = "" }},
		{"negative delay", func(c *Config) { c.Contact.DelayMS = -1 }},
		{"delay past write timeout", func(c *Config) { c.Contact.DelayMS = MaxDelayMS + 1 }},
		{"zero body limit", func(c *Config) { c.Contact.MaxBodyBytes = 0 }},
		{"archive without data dir", func(c *Config) { c.Contact.Archive = true; c.Contact.DataDir = "" }},
		{"relative webhook", func(c *Config) { c.Contact.WebhookURL = "/hooks/contact" }},
		{"ftp webhook", func(c *Config) { c.Contact.WebhookURL = "ftp://example.com/hook" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
