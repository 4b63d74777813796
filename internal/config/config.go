// Package config loads and validates the menusmith configuration file
// and its environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/menusmith/menusmith/internal/menu"
)

// DefaultPath is the config file looked for when --config is not given.
const DefaultPath = ".menusmith.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (MENUSMITH_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: MENUSMITH_TEMPLATE -> template, etc.
	if err := k.Load(env.Provider("MENUSMITH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MENUSMITH_"))
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

// validTemplates is the set of recognized template values.
var validTemplates = map[menu.TemplateType]bool{
	menu.TemplateBasic:   true,
	menu.TemplatePremium: true,
	menu.TemplateModern:  true,
	menu.TemplateElegant: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Template != "" && !validTemplates[c.Template] {
		return fmt.Errorf("invalid template %q: must be one of basic, premium, modern, elegant", c.Template)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	return nil
}
