package config

import "github.com/menusmith/menusmith/internal/menu"

// Config is the top-level menusmith configuration, corresponding to
// .menusmith.yml.
type Config struct {
	Template  menu.TemplateType `yaml:"template" koanf:"template"`
	OutputDir string            `yaml:"output_dir" koanf:"output_dir"`
	Include   []string          `yaml:"include" koanf:"include"`
	Exclude   []string          `yaml:"exclude" koanf:"exclude"`
	Server    ServerConfig      `yaml:"server" koanf:"server"`
}

// ServerConfig holds editor server settings.
type ServerConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	DataDir  string `yaml:"data_dir" koanf:"data_dir"`
	AllowAll bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
