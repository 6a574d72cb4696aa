package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winplace/internal/config"
	"github.com/1broseidon/winplace/internal/logging"
	"github.com/1broseidon/winplace/internal/placement"
	"github.com/1broseidon/winplace/internal/platform"
	"github.com/1broseidon/winplace/internal/tiling"
)

const (
	ServerName    = "winplace"
	ServerVersion = "0.1.0"
)

// Server exposes window placement as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	placer    *placement.Placer
	presets   map[string]tiling.Preset
	logger    *logging.Logger

	// mu serialises window-system access; tool calls may arrive concurrently.
	mu sync.Mutex
}

// NewServer creates an MCP server placing windows through backend. logger may
// be nil.
func NewServer(cfg *config.Config, backend platform.Backend, logger *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Server{
		placer: placement.NewPlacer(backend, logger, placement.Options{
			StrictApply: cfg.StrictApply,
			Fallback:    placement.Fallback(cfg.DefaultMonitorFallback),
		}),
		presets: cfg.AllPresets(),
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "place_window",
		Description: "Move and resize the first visible top-level window owned by a process so it covers a percentage-aligned region of a monitor's work area. Give either a preset name or all four edges (left, right, top, bottom) as percentages 0-100 with left < right and top < bottom. Size is rounded half-up, position floored. The stacking order is not changed.",
	}, s.handlePlaceWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List visible top-level windows with their id, process name, title and class, in the order place_window searches them.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_monitors",
		Description: "List monitors with their 1-based index, bounds and usable work area.",
	}, s.handleListMonitors)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_presets",
		Description: "List named alignment presets usable with place_window.",
	}, s.handleListPresets)
}
