package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"relapse/internal/adapters/clipboard"
	"relapse/internal/adapters/tui"
	"relapse/internal/application/commands"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a batch interactively",
	Long: `Open an interactive list of batches. Enter shows a batch's files,
c copies its paths to the clipboard, q quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewListBatchesCommand(scanner, logger, scanOptions()).Execute(ctx)
		if err != nil {
			return err
		}

		app := tui.NewApp(result.Root, result.Batches, clipboard.NewSystem())
		p := tea.NewProgram(app, tea.WithAltScreen())

		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
