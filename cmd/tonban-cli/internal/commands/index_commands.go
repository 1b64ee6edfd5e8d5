package commands

import (
	"fmt"

	"github.com/lllpei/tonban/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// IndexCmd creates the keyword search indexes if they do not exist
func IndexCmd(cmd *cobra.Command, _ []string) error {
	ctx, err := setupContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.close()

	if err := persistence.EnsureIndexes(ctx.db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	ctx.logger.Info("Search indexes are in place")
	return nil
}

// InitIndexCommands registers the index maintenance commands with the root command.
func InitIndexCommands(rootCmd *cobra.Command) error {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Create the keyword search indexes if they do not exist",
		Args:  cobra.NoArgs,
		RunE:  IndexCmd,
	}

	rootCmd.AddCommand(indexCmd)
	return nil
}
