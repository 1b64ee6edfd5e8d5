package commands

import (
	"fmt"

	"github.com/lllpei/tonban/internal/domain/dataset"

	"github.com/spf13/cobra"
)

// LoadTableCmd replaces the contents of one table with the rows of a CSV file
func LoadTableCmd(cmd *cobra.Command, args []string) error {
	table, err := dataset.ParseTable(args[0])
	if err != nil {
		return err
	}

	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.close()

	report, err := ctx.importService.ImportTable(cmd.Context(), table, args[1])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", table, err)
	}

	ctx.logger.Info("Loaded ", report.Rows, " rows into ", report.Table, " in ", report.Duration, " (batch ", report.BatchID, ")")
	return nil
}

// LoadAllCmd loads every table from its conventional CSV file inside a directory
func LoadAllCmd(cmd *cobra.Command, args []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.close()

	reports, err := ctx.importService.ImportAll(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	for _, report := range reports {
		ctx.logger.Info("Loaded ", report.Rows, " rows into ", report.Table, " in ", report.Duration)
	}
	return nil
}

// InitLoadCommands registers the dataset loading commands with the root command.
func InitLoadCommands(rootCmd *cobra.Command) error {
	loadCmd := &cobra.Command{
		Use:   "load <table> <file>",
		Short: "Replace the contents of one table with the rows of a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE:  LoadTableCmd,
	}

	loadAllCmd := &cobra.Command{
		Use:   "all <dir>",
		Short: "Load every table from its conventional CSV file inside a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  LoadAllCmd,
	}

	loadCmd.AddCommand(loadAllCmd)
	rootCmd.AddCommand(loadCmd)
	return nil
}
