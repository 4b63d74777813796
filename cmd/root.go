package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "menusmith",
	Short: "Restaurant menu site generator with cart and checkout",
	Long: `Menusmith turns restaurant menu definitions into single-file static
HTML sites with an optional shopping cart that checks out over SMS or
WhatsApp deep links. It also runs the editor backend the browser UI
talks to.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".menusmith.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
