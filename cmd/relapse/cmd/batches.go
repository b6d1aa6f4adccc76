package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/render"
	"relapse/internal/application/commands"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "List all batches, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewListBatchesCommand(scanner, logger, scanOptions()).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(result.Batches) == 0 {
			fmt.Fprintf(out, "No files under %s\n", result.Root)
			return nil
		}

		now := time.Now()
		for _, b := range result.Batches {
			fmt.Fprintln(out, render.BatchLine(b, now))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchesCmd)
}
