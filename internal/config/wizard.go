package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/menusmith/menusmith/internal/menu"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .menusmith.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to menusmith! Let's configure your project.")
	fmt.Println()

	// 1. Template selection.
	templatePrompt := promptui.Select{
		Label: "Select menu template",
		Items: []string{
			"basic   — clean single-column layout",
			"premium — bolder palette, rounded cards",
			"modern  — dark-leaning palette, sharp corners",
			"elegant — serif type, muted colors",
		},
	}
	templateIdx, _, err := templatePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("template selection: %w", err)
	}
	templates := []menu.TemplateType{
		menu.TemplateBasic, menu.TemplatePremium, menu.TemplateModern, menu.TemplateElegant,
	}
	template := templates[templateIdx]

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for generated menus",
		Default: "dist",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Restaurant file patterns (comma-separated globs)",
		Default: strings.Join(DefaultIncludes, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	include := splitAndTrim(includeStr)

	// 4. Editor server port.
	portPrompt := promptui.Prompt{
		Label:   "Editor server port",
		Default: "8080",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	// Build the config.
	cfg := &Config{
		Template:  template,
		OutputDir: outputDir,
		Include:   include,
		Exclude:   DefaultExcludes,
		Server: ServerConfig{
			Port:    port,
			DataDir: ".menusmith",
		},
	}

	// Save to .menusmith.yml.
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
