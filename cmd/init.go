package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yamabiko-bot/yamabiko/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize yamabiko configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure yamabiko and generates a .yamabiko.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
