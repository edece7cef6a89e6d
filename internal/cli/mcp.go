package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/pkg/adapters/mcp"
)

// MCPOptions configures the MCP server command.
type MCPOptions struct {
	Transport string
	Port      int
	Debug     bool
}

// RunMCP starts the solver as an MCP server on the chosen transport. Logs go
// to stderr so stdio transports keep a clean JSON-RPC stream on stdout.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	logger := serverLogger(opts.Debug)

	solverOpts := []solstice.Option{solstice.WithLogger(logger)}
	if opts.Debug {
		solverOpts = append(solverOpts, solstice.WithLifecycleHooks(createDebugHooks(logger)))
	}
	solver := solstice.New(solverOpts...)

	srv := mcp.NewServer(solver, logger)

	switch opts.Transport {
	case "stdio":
		logger.Info("Starting MCP server (stdio)")
		return srv.ServeStdio()

	case "sse":
		logger.Info("Starting MCP server (SSE)", "port", opts.Port)
		if err := srv.ServeSSE(ctx, opts.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP server stopped gracefully")
		return nil

	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, sse)", opts.Transport)
	}
}
