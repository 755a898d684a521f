package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Davisanity-TW/stock-report/internal/application/commands"
	"github.com/Davisanity-TW/stock-report/internal/domain"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

// RegisterReadTools adds all read-only report tools to the MCP server.
// index may be nil when no local report index is available; the
// entries_on tool is skipped then.
func RegisterReadTools(s *server.MCPServer, repo ports.ReportRepository, index ports.ReportIndex, sections []domain.Section) {
	s.AddTool(listTool(), listHandler(repo, sections))
	s.AddTool(latestTool(), latestHandler(repo, sections))
	s.AddTool(readReportTool(), readReportHandler(repo, sections))
	s.AddTool(searchTool(), searchHandler(repo))
	if index != nil {
		s.AddTool(entriesOnTool(), entriesOnHandler(index))
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List report sections. With a section key lists its reports oldest first (nested sections as month/day)."),
		mcp.WithString("section",
			mcp.Description("Section key to list reports of (e.g. tw, us, youtube, moltbook). Omit to list all sections."),
		),
	)
}

func listHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key := req.GetString("section", "")

		if key == "" {
			var sb strings.Builder
			for _, s := range sections {
				fmt.Fprintf(&sb, "%s  %s  (%s)\n", s.Key, s.Title, s.Layout)
			}
			return mcp.NewToolResultText(sb.String()), nil
		}

		cmd := commands.NewListReportsCommand(repo, sections, key)
		reports, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(reports) == 0 {
			return mcp.NewToolResultText("No reports."), nil
		}

		var sb strings.Builder
		for _, r := range reports {
			sb.WriteString(r.QualifiedID())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- latest ---

func latestTool() mcp.Tool {
	return mcp.NewTool("latest",
		mcp.WithDescription("Show the most recent well-formed report per section."),
		mcp.WithString("section",
			mcp.Description("Section key to check. Omit for all sections."),
		),
	)
}

func latestHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key := req.GetString("section", "")

		cmd := commands.NewLatestCommand(repo, sections, key)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range results {
			if r.Latest.None() {
				fmt.Fprintf(&sb, "%s  (no reports)\n", r.Section.Key)
				continue
			}
			fmt.Fprintf(&sb, "%s  %s\n", r.Section.Key, r.Latest.QualifiedID())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_report ---

func readReportTool() mcp.Tool {
	return mcp.NewTool("read_report",
		mcp.WithDescription("Read a report's markdown content."),
		mcp.WithString("section",
			mcp.Description("Section key (e.g. tw)"),
			mcp.Required(),
		),
		mcp.WithString("id",
			mcp.Description("Report ID (e.g. 2026-W05, or 202602/02-01 for nested sections)"),
			mcp.Required(),
		),
	)
}

func readReportHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		key := req.GetString("section", "")
		id := req.GetString("id", "")

		cmd := commands.NewReadReportCommand(repo, sections, key, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search reports by identifier or content. Returns matches ranked by relevance."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(repo ports.ReportRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		cmd := commands.NewSearchCommand(repo, query)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s  %s\n", r.Section, r.QualifiedID(), r.MatchedText)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- entries_on ---

func entriesOnTool() mcp.Tool {
	return mcp.NewTool("entries_on",
		mcp.WithDescription("Look a date up across every weekly file and return the daily entry headers written for it."),
		mcp.WithString("date",
			mcp.Description("Date as YYYY-MM-DD. Omit for today (Taipei time)."),
		),
	)
}

func entriesOnHandler(index ports.ReportIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date := req.GetString("date", "")

		cmd := commands.NewEntriesOnCommand(index, date)
		entries, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(entries) == 0 {
			return mcp.NewToolResultText("No entries on that date."), nil
		}

		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s  %s\n", e.ReportPath, e.Heading)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

