package main

import (
	"context"
	"log"
	"os"

	"github.com/aretw0/minerva/internal/cli"
	"github.com/aretw0/minerva/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts MinervaBot as an MCP server over Standard Input/Output.
This allows AI agents to hold menu conversations through the chatbot tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := cfg.Logger()

		bot, closeStore, err := cli.NewBot(context.Background(), cfg, logger, cli.DebugHooks(logger))
		if err != nil {
			return err
		}
		defer closeStore()

		srv := mcp.NewServer(bot,
			mcp.WithLogger(logger),
			mcp.WithMaxInputSize(cfg.MaxInputSize),
		)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("starting minerva MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
