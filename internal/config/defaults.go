package config

// DefaultIncludes are glob patterns for restaurant files picked up by
// build when none are configured.
var DefaultIncludes = []string{
	"*.menu.json",
	"*.menu.yml",
	"*.menu.yaml",
	"menus/**/*.{json,yml,yaml}",
}

// DefaultExcludes are glob patterns skipped by build by default.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Template:  "basic",
		OutputDir: "dist",
		Include:   DefaultIncludes,
		Exclude:   DefaultExcludes,
		Server: ServerConfig{
			Port:    8080,
			DataDir: ".menusmith",
		},
	}
}
