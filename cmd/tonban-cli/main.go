// Package main is the entry point for the tonban-cli application.
// It initializes the root command and registers the dataset loading and
// maintenance sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/lllpei/tonban/cmd/tonban-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "tonban-cli",
		Short: "Tariff statistical code dataset tool",
		Long: `tonban-cli maintains the export/import statistical code database.
It loads the classification tables (sections, chapters, headings, subheadings)
and the statistical code lines from CSV files, and manages the search indexes.

The database connection is read from the configuration file passed with
--config. WORKERS overrides the number of concurrent table loads.`,
	}

	rootCmd.PersistentFlags().String("config", "configs/cli.yaml", "Path to the configuration file")

	// Initialize all command groups BEFORE executing
	if err := commands.InitLoadCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize load commands: %w", err)
	}
	if err := commands.InitIndexCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize index commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
