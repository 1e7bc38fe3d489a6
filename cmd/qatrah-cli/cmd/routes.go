package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Youssef-Elmorali/blood-project-frontend/internal/config"
	"github.com/Youssef-Elmorali/blood-project-frontend/internal/server"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the HTTP routes the server registers",
	Long: `Builds the server with development settings, without starting it, and
prints every registered route. Static file routes are omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &config.Config{
			Env:            "development",
			SessionSecret:  "routes-listing-only",
			LoginRateLimit: 1,
		}
		s, err := server.New(server.Dependencies{Config: cfg})
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		defer s.Close()
		s.RegisterRoutes()

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH")
		fmt.Fprintln(w, "------\t----")
		for _, r := range s.Routes() {
			fmt.Fprintf(w, "%s\t%s\n", r.Method, r.Path)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
