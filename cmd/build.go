package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/menusmith/menusmith/internal/generator"
	"github.com/menusmith/menusmith/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build [files...]",
	Short: "Build static menu sites from restaurant definition files",
	Long: `Reads restaurant definitions (JSON or YAML) and writes one
self-contained .html file per restaurant to the output directory.
Without arguments, the configured include globs select the inputs.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	var files []string
	if len(args) > 0 {
		files = args
	} else {
		files, err = discoverInputs(".", cfg.Include, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("discovering inputs: %w", err)
		}
	}

	if len(files) == 0 {
		fmt.Println("No restaurant files found to build.")
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	gen := generator.New()
	reporter := progress.NewReporter()
	reporter.Start(len(files))

	var failed int
	for i, path := range files {
		reporter.Update(i+1, path)

		r, err := loadRestaurant(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			failed++
			continue
		}

		name := generator.Slugify(r.Info.Name)
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		outPath := filepath.Join(outputDir, name+".html")

		if err := os.WriteFile(outPath, []byte(gen.Generate(r)), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: writing %s: %v\n", outPath, err)
			failed++
			continue
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "%s -> %s\n", path, outPath)
		}
	}
	reporter.Finish()

	fmt.Println()
	fmt.Println("Menu build complete!")
	fmt.Printf("  Menus built:  %d\n", len(files)-failed)
	fmt.Printf("  Failed:       %d\n", failed)
	fmt.Printf("  Duration:     %s\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("  Output:       %s\n", outputDir)

	if failed > 0 {
		return fmt.Errorf("%d of %d menus failed to build", failed, len(files))
	}
	return nil
}

// discoverInputs walks the tree under root and returns files matching
// the include globs but none of the exclude globs.
func discoverInputs(root string, include, exclude []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if matchesAny(rel, include) && !matchesAny(rel, exclude) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support and also matches on the bare
// filename so top-level patterns find nested files.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
