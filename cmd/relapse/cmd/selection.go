package cmd

import (
	"github.com/spf13/cobra"

	"relapse/internal/application"
)

// selectionFlags are the batch addressing flags shared by print, zip,
// code2prompt and copy
type selectionFlags struct {
	index    int
	datetime string
}

func (s *selectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&s.index, "index", 0, "batch index, 0 = most recent")
	cmd.Flags().StringVar(&s.datetime, "datetime", "", "ISO 8601 moment; selects the batch active at or before it")
}

// address resolves the flags and an optional positional batch argument
func (s *selectionFlags) address(cmd *cobra.Command, positional string) (application.Address, error) {
	var index *int
	if cmd.Flags().Changed("index") {
		i := s.index
		index = &i
	}
	return application.ResolveAddress(positional, index, s.datetime)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
