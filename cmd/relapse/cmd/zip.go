package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/archive"
	"relapse/internal/application/commands"
)

var (
	zipSelection selectionFlags
	zipOutput    string
)

var zipCmd = &cobra.Command{
	Use:   "zip [batch]",
	Short: "Write the files of one batch to a .tar.gz archive",
	Long: `Write the files of one batch to a gzip-compressed tar archive. Entries
keep their paths relative to the root.

Examples:
  relapse zip                        # latest batch into batch.tar.gz
  relapse zip 1 -o yesterday.tar.gz
  relapse zip -o - | tar tz          # archive to stdout`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := zipSelection.address(cmd, firstArg(args))
		if err != nil {
			return err
		}

		archiver := archive.NewTarGz(zipOutput, cmd.OutOrStdout(), archive.WithLogger(logger))
		ctx := context.Background()
		result, err := commands.NewExportCommand(scanner, archiver, logger, scanOptions(), addr).Execute(ctx)
		if err != nil {
			return err
		}

		// keep stdout clean when it carries the archive
		if zipOutput != archive.StdoutPath {
			fmt.Fprintln(cmd.ErrOrStderr(), result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zipCmd)
	zipSelection.bind(zipCmd)
	zipCmd.Flags().StringVarP(&zipOutput, "output", "o", archive.DefaultOutput, "archive path, or - for stdout")
}
