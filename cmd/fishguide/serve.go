package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fishguide/internal/advisor"
	"fishguide/internal/catalog"
	"fishguide/internal/journal"
	"fishguide/internal/mcp"
	"fishguide/internal/report"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		RunE:  runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kb, err := loadKnowledge(cfg)
	if err != nil {
		return err
	}

	kv, err := openStore(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer kv.Close(ctx)

	zap.L().Info("starting MCP server", zap.String("command", "serve"), zap.String("version", version))
	server := mcp.NewServer(mcp.Deps{
		Advisor: advisor.New(kb),
		Reports: report.New(kb),
		Catalog: catalog.Default(),
		Journal: journal.New(kv),
		Today:   func() string { return time.Now().Format("2006-01-02") },
	}, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
