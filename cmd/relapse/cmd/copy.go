package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/copier"
	"relapse/internal/application/commands"
)

var copySelection selectionFlags

var copyCmd = &cobra.Command{
	Use:   "copy <dest> [batch]",
	Short: "Copy the files of one batch into a directory",
	Long: `Copy the files of one batch into DEST, recreating their directories
relative to the root. Modification times and permissions are kept.

Examples:
  relapse copy /tmp/session
  relapse copy /tmp/session 2
  relapse copy /tmp/session --datetime 2025-01-20T09:00`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := copySelection.address(cmd, firstArg(args[1:]))
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := commands.NewCopyCommand(scanner, copier.NewCopier(), logger, scanOptions(), addr, args[0]).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copySelection.bind(copyCmd)
}
