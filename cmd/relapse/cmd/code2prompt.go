package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/clipboard"
	"relapse/internal/adapters/code2prompt"
	"relapse/internal/application/commands"
)

var (
	code2promptSelection selectionFlags
	code2promptClipboard bool
)

var code2promptCmd = &cobra.Command{
	Use:     "code2prompt [batch]",
	Aliases: []string{"ccc"},
	Short:   "Run code2prompt on the files of one batch",
	Long: `Run the external code2prompt tool on the files of one batch and print
its output, or copy it to the clipboard.

Examples:
  relapse code2prompt
  relapse ccc 1 --clipboard`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := code2promptSelection.address(cmd, firstArg(args))
		if err != nil {
			return err
		}

		summarizer := code2prompt.NewSummarizer(
			code2prompt.WithBinary(cfg.Code2Prompt.Binary),
			code2prompt.WithArgs(cfg.Code2Prompt.Args...),
			code2prompt.WithTimeout(cfg.ToolTimeout),
			code2prompt.WithLogger(logger),
		)

		ctx := context.Background()
		result, err := commands.NewSummarizeCommand(scanner, summarizer, logger, scanOptions(), addr).Execute(ctx)
		if err != nil {
			return err
		}

		if code2promptClipboard {
			if err := clipboard.NewSystem().WriteAll(result.Text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Copied context for batch %d (%d files) to clipboard\n",
				result.Selection.Batch.Index, len(result.Selection.Batch.Files))
			return nil
		}

		_, err = fmt.Fprint(cmd.OutOrStdout(), result.Text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(code2promptCmd)
	code2promptSelection.bind(code2promptCmd)
	code2promptCmd.Flags().BoolVar(&code2promptClipboard, "clipboard", false, "copy the output to the clipboard instead of printing it")
}
