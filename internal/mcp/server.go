// Package mcp exposes window measurement and resizing as MCP tools over
// stdio.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/platform"
)

const ServerName = "winfit"

// BackendFactory opens a platform backend. The server opens one per tool
// call so window handles never outlive the enumeration that produced them.
type BackendFactory func() (platform.Backend, error)

// Server is the MCP server for winfit.
type Server struct {
	mcpServer  *mcpsdk.Server
	config     *config.Config
	newBackend BackendFactory
	logger     *slog.Logger

	// mu serializes tool calls that touch the window system.
	mu sync.Mutex
}

// NewServer creates a server. A nil factory uses platform.New; a nil logger
// discards.
func NewServer(cfg *config.Config, newBackend BackendFactory, logger *slog.Logger, version string) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if newBackend == nil {
		newBackend = platform.New
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		config:     cfg,
		newBackend: newBackend,
		logger:     logger,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: version,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves on stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "measure_windows",
		Description: "Measure the client area of top-level windows matching the filters. With no filters every window is measured. Each measurement is the client size minus the offset.",
	}, s.handleMeasureWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_windows",
		Description: "Resize matching top-level windows so their client area is exactly size plus offset, optionally toggling the frame, border color and corner rounding first. At least one title or path filter is required, directly or through a profile.",
	}, s.handleResizeWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_resolutions",
		Description: "List the named resolutions accepted wherever a size is expected.",
	}, s.handleListResolutions)
}

// withBackend runs fn with a freshly opened backend while holding the
// server lock.
func (s *Server) withBackend(fn func(platform.Backend) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backend, err := s.newBackend()
	if err != nil {
		return fmt.Errorf("failed to open window system: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			s.logger.Debug("backend close failed", "error", err)
		}
	}()
	return fn(backend)
}
