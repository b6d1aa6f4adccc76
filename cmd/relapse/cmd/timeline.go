package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"relapse/internal/adapters/render"
	"relapse/internal/application/commands"
)

var (
	timelineBins    int
	timelineFilter  string
	timelineWidth   int
	timelineBatches bool
	timelineCompact bool
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show a histogram of file modification times",
	Long: `Bucket every modification time under the root into fixed-width bins
and draw one bar per bin.

Examples:
  relapse timeline
  relapse timeline --bins 24 --filter "*.go" --batches
  relapse timeline --compact`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bins := cfg.Bins
		if cmd.Flags().Changed("bins") {
			bins = timelineBins
		}
		width := cfg.Width
		if cmd.Flags().Changed("width") {
			width = timelineWidth
		}

		ctx := context.Background()
		res, err := commands.NewTimelineCommand(scanner, logger, scanOptions(), bins, timelineFilter).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if timelineCompact {
			return render.Sparkline(out, res.Timeline, time.Local)
		}

		opts := render.HistogramOptions{Width: width, Location: time.Local}
		if timelineBatches {
			opts.Batches = res.Batches
		}
		return render.Histogram(out, res.Timeline, opts)
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().IntVar(&timelineBins, "bins", 60, "number of histogram bins")
	timelineCmd.Flags().StringVar(&timelineFilter, "filter", "", "only count paths containing this text or matching this glob")
	timelineCmd.Flags().IntVar(&timelineWidth, "width", render.DefaultBarWidth, "length of the longest bar")
	timelineCmd.Flags().BoolVar(&timelineBatches, "batches", false, "mark the bin where each batch ends")
	timelineCmd.Flags().BoolVar(&timelineCompact, "compact", false, "draw a one-line sparkline instead")
}
