package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/mcp"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
)

// runMCP serves tools on stdio until the client disconnects or a signal
// arrives. stdout belongs to the transport; diagnostics go to stderr.
func runMCP(cfg *config.Config, backend platform.Backend, logger *logging.Logger, stderr io.Writer) int {
	server := mcp.NewServer(cfg, backend, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(stderr, "MCP server error: %v\n", err)
		return placement.ExitStartup
	}
	return placement.ExitOK
}
