package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Davisanity-TW/stock-report/internal/adapters/filesystem"
	mcpadapter "github.com/Davisanity-TW/stock-report/internal/adapters/mcp"
	"github.com/Davisanity-TW/stock-report/internal/adapters/sqlite"
	"github.com/Davisanity-TW/stock-report/internal/application/commands"
	"github.com/Davisanity-TW/stock-report/internal/config"
	"github.com/Davisanity-TW/stock-report/internal/ports"
)

func main() {
	configFlag := flag.String("config", config.Path(), "path to the publish config")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		log.Fatalf("stock-report-mcp: %v", err)
	}
	sections := cfg.ReportSections()

	repo := filesystem.NewRepository(cfg.SourceRoot, sections)
	publisher := filesystem.NewPublisher(cfg.SourceRoot, cfg.SiteRoot, cfg.SidebarFile)

	// The index is optional: without it only the entries_on tool is missing.
	var index ports.ReportIndex
	idx := sqlite.NewIndex(sections)
	if err := idx.Open(cfg.SourceRoot); err != nil {
		log.Printf("stock-report-mcp: report index unavailable: %v", err)
	} else {
		defer idx.Close()
		refresh := commands.NewRefreshIndexCommand(idx, false)
		if _, err := refresh.Execute(context.Background()); err != nil {
			log.Printf("stock-report-mcp: index refresh failed: %v", err)
		}
		index = idx
	}

	mcpServer := server.NewMCPServer(
		"stock-report-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo, index, sections)
	mcpadapter.RegisterWriteTools(mcpServer, repo, publisher, sections, cfg.LinkPrefix, cfg.StockNames)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("stock-report-mcp: %v", err)
	}
}
