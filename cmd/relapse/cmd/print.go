package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/render"
	"relapse/internal/application/commands"
)

var (
	printSelection selectionFlags
	printFormat    string
	printPretty    bool
)

var printCmd = &cobra.Command{
	Use:   "print [batch]",
	Short: "Print the files of one batch",
	Long: `Print the files of one batch, most recently modified first.

The batch is an index (0 = most recent) or an ISO 8601 datetime.

Examples:
  relapse print                       # latest batch
  relapse print 2
  relapse print --datetime "2025-01-20 12:30" --pretty
  relapse print --format absolute`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := render.ParsePathFormat(printFormat)
		if err != nil {
			return err
		}
		addr, err := printSelection.address(cmd, firstArg(args))
		if err != nil {
			return err
		}

		ctx := context.Background()
		sel, err := commands.NewSelectBatchCommand(scanner, logger, scanOptions(), addr).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if printPretty {
			fmt.Fprintln(out, render.Header(sel.Batch, time.Now()))
		}
		return render.FormatPaths(out, sel, format)
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
	printSelection.bind(printCmd)
	printCmd.Flags().StringVar(&printFormat, "format", "relative", "path format: relative, absolute or name")
	printCmd.Flags().BoolVar(&printPretty, "pretty", false, "print a header with the batch time window")
}
