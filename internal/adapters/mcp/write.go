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

// RegisterWriteTools adds all writing report tools to the MCP server.
// names is the stock code to company name map used by annotate_names.
func RegisterWriteTools(s *server.MCPServer, repo ports.ReportRepository, publisher ports.SitePublisher, sections []domain.Section, prefix string, names map[string]string) {
	s.AddTool(ingestTool(), ingestHandler(repo, sections))
	s.AddTool(upsertTool(), upsertHandler(repo, sections))
	s.AddTool(replaceTableTool(), replaceTableHandler(repo, sections))
	s.AddTool(annotateNamesTool(), annotateNamesHandler(names))
	s.AddTool(publishTool(), publishHandler(publisher, sections, prefix))
}

// --- ingest_entry ---

func ingestTool() mcp.Tool {
	return mcp.NewTool("ingest_entry",
		mcp.WithDescription("Append a dated entry to a section's weekly file. Creates the week file with its title heading when the week is new."),
		mcp.WithString("section",
			mcp.Description("Flat section key (e.g. tw, us, youtube)"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Entry date as YYYY-MM-DD. Omit for today (Taipei time)."),
		),
		mcp.WithString("body",
			mcp.Description("Entry body in markdown, without the date header"),
			mcp.Required(),
		),
	)
}

func ingestHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		section := req.GetString("section", "")
		date := req.GetString("date", "")
		body := req.GetString("body", "")

		cmd := commands.NewIngestEntryCommand(repo, sections, section, date, body)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- upsert_section ---

func upsertTool() mcp.Tool {
	return mcp.NewTool("upsert_section",
		mcp.WithDescription("Insert or replace the daily section for a date in its weekly file. Rerunning with new content replaces the section instead of duplicating it."),
		mcp.WithString("section",
			mcp.Description("Flat section key (e.g. tw, us, youtube)"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Section date as YYYY-MM-DD. Omit for today (Taipei time)."),
		),
		mcp.WithString("body",
			mcp.Description("Section body in markdown, without the date header"),
			mcp.Required(),
		),
	)
}

func upsertHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		section := req.GetString("section", "")
		date := req.GetString("date", "")
		body := req.GetString("body", "")

		cmd := commands.NewUpsertSectionCommand(repo, sections, section, date, body)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- replace_table ---

func replaceTableTool() mcp.Tool {
	return mcp.NewTool("replace_table",
		mcp.WithDescription("Replace the markdown table inside a date's daily section with a fresh one. Fails when the week file does not exist yet."),
		mcp.WithString("section",
			mcp.Description("Flat section key (e.g. tw)"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Section date as YYYY-MM-DD. Omit for today (Taipei time)."),
		),
		mcp.WithString("table",
			mcp.Description("Replacement markdown table, header row included"),
			mcp.Required(),
		),
	)
}

func replaceTableHandler(repo ports.ReportRepository, sections []domain.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		section := req.GetString("section", "")
		date := req.GetString("date", "")
		table := req.GetString("table", "")

		cmd := commands.NewReplaceTableCommand(repo, sections, section, date, table)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- annotate_names ---

func annotateNamesTool() mcp.Tool {
	return mcp.NewTool("annotate_names",
		mcp.WithDescription("Append company names to bare TW stock codes in markdown prose (tables are left alone). Returns the annotated markdown."),
		mcp.WithString("content",
			mcp.Description("Markdown content to annotate"),
			mcp.Required(),
		),
	)
}

func annotateNamesHandler(names map[string]string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content := req.GetString("content", "")

		cmd := commands.NewAnnotateNamesCommand(names, content)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- publish ---

func publishTool() mcp.Tool {
	return mcp.NewTool("publish",
		mcp.WithDescription("Mirror every report section into the site tree and regenerate the home page and sidebar."),
	)
}

func publishHandler(publisher ports.SitePublisher, sections []domain.Section, prefix string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewPublishCommand(publisher, sections, prefix)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, r := range result.Synced {
			if r.Skipped {
				fmt.Fprintf(&sb, "%s: skipped (no source)\n", r.Section)
				continue
			}
			fmt.Fprintf(&sb, "%s: %d copied, %d preserved", r.Section, r.Copied, r.Preserved)
			if len(r.Flagged) > 0 {
				fmt.Fprintf(&sb, ", flagged %s", strings.Join(r.Flagged, " "))
			}
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "home: %s\n", result.Generated.HomePath)
		fmt.Fprintf(&sb, "sidebar: %s\n", result.Generated.SidebarPath)
		return mcp.NewToolResultText(sb.String()), nil
	}
}
