package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"relapse/internal/adapters/render"
	"relapse/internal/application"
	"relapse/internal/application/commands"
	"relapse/internal/domain"
	"relapse/internal/ports"
)

// Deps are the collaborators every tool handler needs
type Deps struct {
	Scanner ports.FileScanner
	Options commands.ScanOptions
	Logger  *zap.Logger
	Now     func() time.Time
}

// RegisterTools adds all read-only batch tools to the MCP server.
func RegisterTools(s *server.MCPServer, deps Deps) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s.AddTool(listBatchesTool(), listBatchesHandler(deps))
	s.AddTool(batchFilesTool(), batchFilesHandler(deps))
	s.AddTool(timelineTool(), timelineHandler(deps))
}

// --- list_batches ---

func listBatchesTool() mcp.Tool {
	return mcp.NewTool("list_batches",
		mcp.WithDescription("List work sessions (batches) under the root, most recent first, with their time window and file count."),
	)
}

func listBatchesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := commands.NewListBatchesCommand(deps.Scanner, deps.Logger, deps.Options).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(res.Batches) == 0 {
			return mcp.NewToolResultText("No batches."), nil
		}

		now := deps.Now()
		var sb strings.Builder
		for _, b := range res.Batches {
			fmt.Fprintf(&sb, "#%d  %s  %d files\n", b.Index, render.Window(b, now), len(b.Files))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- batch_files ---

func batchFilesTool() mcp.Tool {
	return mcp.NewTool("batch_files",
		mcp.WithDescription("List the files of one batch. Address it by index (0 = most recent) or by an ISO 8601 datetime; defaults to the most recent batch."),
		mcp.WithNumber("index",
			mcp.Description("Batch index, 0 = most recent"),
		),
		mcp.WithString("datetime",
			mcp.Description("ISO 8601 datetime; selects the batch active at or before that moment"),
		),
		mcp.WithString("format",
			mcp.Description("Path format: relative (default), absolute or name"),
		),
	)
}

func batchFilesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var index *int
		if _, ok := req.GetArguments()["index"]; ok {
			i := req.GetInt("index", 0)
			index = &i
		}

		addr, err := application.ResolveAddress("", index, req.GetString("datetime", ""))
		if err != nil {
			return toolError(err)
		}
		format, err := render.ParsePathFormat(req.GetString("format", ""))
		if err != nil {
			return toolError(err)
		}

		sel, err := commands.NewSelectBatchCommand(deps.Scanner, deps.Logger, deps.Options, addr).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "Batch #%d of %d: %s\n", sel.Batch.Index, sel.Total, render.Window(sel.Batch, deps.Now()))
		if err := render.FormatPaths(&buf, sel, format); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- timeline ---

func timelineTool() mcp.Tool {
	return mcp.NewTool("timeline",
		mcp.WithDescription("Histogram of file modification times under the root."),
		mcp.WithNumber("bins",
			mcp.Description(fmt.Sprintf("Number of bins (default %d)", domain.DefaultBins)),
		),
		mcp.WithString("filter",
			mcp.Description("Path substring or glob; only matching files are counted"),
		),
	)
}

func timelineHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bins := req.GetInt("bins", domain.DefaultBins)
		filter := req.GetString("filter", "")

		res, err := commands.NewTimelineCommand(deps.Scanner, deps.Logger, deps.Options, bins, filter).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var buf bytes.Buffer
		opts := render.HistogramOptions{Batches: res.Batches, Location: deps.Now().Location()}
		if err := render.Histogram(&buf, res.Timeline, opts); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
