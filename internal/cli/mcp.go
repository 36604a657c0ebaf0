package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/numeral/pkg/adapters/mcp"
)

// MCPOptions configures RunMCP. Empty fields fall back to the configuration.
type MCPOptions struct {
	Options
	Transport string
	Port      int
}

// RunMCP serves the calculator as an MCP server over stdio or SSE.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	cfg, logger, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}
	if opts.Transport != "" {
		cfg.MCP.Transport = opts.Transport
	}
	if opts.Port != 0 {
		cfg.MCP.Port = opts.Port
	}

	calc, closer, err := createCalculator(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}
	defer closer()

	srv := mcp.NewServer(calc, logger)

	switch cfg.MCP.Transport {
	case "stdio":
		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting numeral MCP Server (Stdio)...")
		return srv.ServeStdio()
	case "sse":
		logger.Info("Starting numeral MCP Server (SSE)", "port", cfg.MCP.Port)
		if err := srv.ServeSSE(ctx, cfg.MCP.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP Server stopped gracefully", "signal", shutdownSignal(ctx))
		return nil
	}
	return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", cfg.MCP.Transport)
}
