package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"relapse/internal/adapters/filesystem"
	mcpadapter "relapse/internal/adapters/mcp"
	"relapse/internal/application/commands"
	"relapse/internal/config"
	"relapse/internal/logging"
)

func main() {
	rootFlag := flag.String("root", "", "directory to scan (default: $RELAPSE_ROOT or the current directory)")
	configFlag := flag.String("config", "", "config file merged over the global and project files")
	verboseFlag := flag.Bool("verbose", false, "debug logging on stderr")
	flag.Parse()

	logger, err := logging.New(*verboseFlag)
	if err != nil {
		log.Fatalf("relapse-mcp: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(config.LoadOptions{File: *configFlag, Root: *rootFlag})
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	scanner := filesystem.NewScanner(
		filesystem.WithIgnore(filesystem.DefaultIgnore...),
		filesystem.WithIgnore(cfg.Ignore...),
		filesystem.WithLogger(logger),
	)

	mcpServer := server.NewMCPServer(
		"relapse-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, mcpadapter.Deps{
		Scanner: scanner,
		Options: commands.ScanOptions{Root: cfg.Root, Gap: cfg.Gap, Kind: cfg.ScanKind()},
		Logger:  logger,
	})

	logger.Debug("serving", zap.String("root", cfg.Root))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal("relapse-mcp", zap.Error(err))
	}
}
