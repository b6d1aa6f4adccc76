package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"relapse/internal/adapters/filesystem"
	"relapse/internal/application/commands"
	"relapse/internal/config"
	"relapse/internal/logging"
	"relapse/internal/ports"
)

var (
	rootPath      string
	gap           time.Duration
	maxGapSeconds float64
	ignore        []string
	kind          string
	configFile    string
	verbose       bool

	// configHome locates the global config file; empty means the user's home
	configHome string

	cfg     *config.Config
	logger  = zap.NewNop()
	scanner ports.FileScanner
)

var rootCmd = &cobra.Command{
	Use:   "relapse",
	Short: "Group file modification times into work sessions",
	Long: `relapse scans a directory, groups file modification times into work
sessions (batches) separated by an idle gap, and lets you inspect, export,
copy or pipe the files of one session.

Batch 0 is the most recent session. Address a batch by index or by a
moment in time:
  relapse print 2
  relapse print --datetime 2025-01-20T12:30
  relapse 1                  # same as: relapse print 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// setup builds the logger, configuration and scanner shared by every command
func setup(cmd *cobra.Command) error {
	l, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	logger = l

	loaded, err := config.Load(config.LoadOptions{
		File: configFile,
		Root: rootPath,
		Home: configHome,
	})
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("gap") {
		loaded.Gap = gap
	}
	if flags.Changed("max-gap-seconds") {
		loaded.Gap = time.Duration(maxGapSeconds * float64(time.Second))
	}
	if flags.Changed("ignore") {
		loaded.Ignore = append(loaded.Ignore, ignore...)
	}
	if flags.Changed("kind") {
		loaded.Kind = kind
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	scanner = filesystem.NewScanner(
		filesystem.WithIgnore(filesystem.DefaultIgnore...),
		filesystem.WithIgnore(cfg.Ignore...),
		filesystem.WithLogger(logger),
	)

	logger.Debug("configuration loaded",
		zap.String("root", cfg.Root),
		zap.Duration("gap", cfg.Gap),
		zap.String("kind", cfg.Kind),
		zap.Strings("ignore", cfg.Ignore),
	)
	return nil
}

// Execute runs the root command
func Execute() {
	rootCmd.SetArgs(impliedPrint(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// impliedPrint prefixes "print" when the first argument is neither a flag
// nor a known command, so "relapse 1" means "relapse print 1"
func impliedPrint(root *cobra.Command, args []string) []string {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return args
	}
	if args[0] == "help" || args[0] == "completion" {
		return args
	}
	for _, c := range root.Commands() {
		if c.Name() == args[0] || c.HasAlias(args[0]) {
			return args
		}
	}
	return append([]string{"print"}, args...)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&rootPath, "root", "r", "", "directory to scan (default: $RELAPSE_ROOT or the current directory)")
	flags.DurationVar(&gap, "gap", 0, "idle gap that separates two batches (default 2m0s)")
	flags.Float64Var(&maxGapSeconds, "max-gap-seconds", 0, "gap in seconds, alias of --gap")
	flags.StringArrayVar(&ignore, "ignore", nil, "extra glob of paths to skip, relative to the root; a matching directory is skipped whole (repeatable)")
	flags.StringVar(&kind, "kind", "all", "restrict to files of one kind: all, docs or code")
	flags.StringVar(&configFile, "config", "", "config file merged over the global and project files")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

// scanOptions returns the shared scan settings after setup
func scanOptions() commands.ScanOptions {
	return commands.ScanOptions{
		Root: cfg.Root,
		Gap:  cfg.Gap,
		Kind: cfg.ScanKind(),
	}
}
