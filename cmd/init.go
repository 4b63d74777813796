package cmd

import (
	"github.com/spf13/cobra"

	"github.com/menusmith/menusmith/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize menusmith configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure menusmith for your project and generates a .menusmith.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
