package main

import (
	"os"

	"github.com/spf13/cobra"

	"intervia/internal/interfaces/cli/migrate"
	"intervia/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intervia",
		Short: "Intervia - field-service intervention dashboard backend",
		Long:  `Intervia serves the intervention dashboard API and ships the matching database migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
