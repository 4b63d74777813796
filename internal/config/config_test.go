package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/menusmith/menusmith/internal/menu"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != "basic" {
		t.Errorf("template = %q, want basic", cfg.Template)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("output dir = %q, want dist", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".menusmith.yml")
	content := []byte("template: elegant\noutput_dir: out\nserver:\n  port: 9090\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != menu.TemplateElegant {
		t.Errorf("template = %q, want elegant", cfg.Template)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("output dir = %q, want out", cfg.OutputDir)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MENUSMITH_TEMPLATE", "modern")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Template != menu.TemplateModern {
		t.Errorf("template = %q, want modern from env", cfg.Template)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".menusmith.yml")

	orig := DefaultConfig()
	orig.Template = menu.TemplatePremium
	orig.OutputDir = "public"
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Template != menu.TemplatePremium {
		t.Errorf("template = %q", loaded.Template)
	}
	if loaded.OutputDir != "public" {
		t.Errorf("output dir = %q", loaded.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad template", func(c *Config) { c.Template = "neon" }, true},
		{"empty template ok", func(c *Config) { c.Template = "" }, false},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
