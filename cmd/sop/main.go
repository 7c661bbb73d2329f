// Package main provides the entry point for the sop CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version       = "0.1.0-dev"
	globalVerbose bool
)

func main() {
	// The API key may live in a .env file next to the project.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "sop",
		Short:   "Generate and manage Standard Operating Procedures for equipment assets",
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVar(&globalVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newAssetsCmd(),
		newGenerateCmd(),
		newHistoryCmd(),
		newShowCmd(),
		newExportCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
