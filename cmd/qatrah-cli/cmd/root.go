package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qatrah-cli",
	Short: "Qatrah Hayat CLI tool",
	Long: `qatrah-cli is a command-line companion for the Qatrah Hayat front end.

Available commands:
  routes    List the HTTP routes the server registers
  check     Run the login form validation on the given values
  version   Print the CLI version

Use "qatrah-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
