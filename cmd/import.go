package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/menusmith/menusmith/internal/importer"
	"github.com/menusmith/menusmith/internal/menu"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Convert bulk menu text into a restaurant definition",
	Long: `Parses bulk menu text in the "Category" / "- Item: Description = Price"
line format and prints a restaurant JSON skeleton to stdout. Reads from
stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("name", "", "restaurant name for the generated definition")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	categories := importer.ParseText(string(data))
	if len(categories) == 0 {
		return fmt.Errorf("no menu items found in input")
	}

	name, _ := cmd.Flags().GetString("name")
	r := &menu.Restaurant{
		Info:       menu.Info{Name: name},
		Categories: categories,
	}
	menu.Normalize(r)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding restaurant: %w", err)
	}

	if verbose {
		items := 0
		for _, c := range categories {
			items += len(c.Items)
		}
		fmt.Fprintf(os.Stderr, "Imported %d categories, %d items\n", len(categories), items)
	}
	return nil
}
