package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/aretw0/hpgl2dxf"
	"github.com/aretw0/hpgl2dxf/internal/config"
	"github.com/aretw0/hpgl2dxf/internal/logging"
	"github.com/aretw0/hpgl2dxf/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the converter as MCP tools (convert_hpgl, inspect_hpgl) so AI agents
can convert plots directly.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		level := logging.ParseLevel(cfg.LogLevel)
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = slog.LevelDebug
		}
		// Logs go to stderr so they never corrupt JSON-RPC on stdout.
		logger := logging.New(level)
		slog.SetDefault(logger)
		log.SetOutput(cmd.ErrOrStderr())

		conv := hpgl2dxf.New(
			hpgl2dxf.WithLogger(logger),
			hpgl2dxf.WithDocument(cfg.Document()),
		)
		srv := mcp.NewServer(conv)

		switch transport {
		case "stdio":
			logger.Info("Starting hpgl2dxf MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			logger.Info("Starting hpgl2dxf MCP Server (SSE)", "port", port)
			if err := srv.ServeSSE(cmd.Context(), port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("MCP Server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
