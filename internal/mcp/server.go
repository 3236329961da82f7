package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wincfg/internal/config"
	"github.com/1broseidon/wincfg/internal/platform"
)

const (
	ServerName    = "wincfg"
	ServerVersion = "0.1.0"
)

// OpenFunc opens a window backend for the duration of one tool call.
type OpenFunc func() (platform.Backend, error)

// Server exposes window dump and restore over MCP.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	open      OpenFunc
	logger    *slog.Logger

	// mu serializes tool calls; each one owns the desktop while it runs.
	mu sync.Mutex
}

// platformOpenFn is replaced in tests.
var platformOpenFn = platform.Open

// NewServer creates an MCP server. A nil open uses platform.Open with the
// options cfg.BackendOptions resolves from the environment and config.
func NewServer(cfg *config.Config, open OpenFunc, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if open == nil {
		open = func() (platform.Backend, error) {
			opts, err := cfg.BackendOptions()
			if err != nil {
				return nil, err
			}
			return platformOpenFn(opts)
		}
	}

	s := &Server{
		config: cfg,
		open:   open,
		logger: logger,
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
		Name:        "dump_windows",
		Description: "Capture the title and screen rectangle of every visible top-level window. Returns the dump text (one title@@@bottom@@@left@@@right@@@top line per titled window) for a later restore_windows call.",
	}, s.handleDumpWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every visible top-level window with its live handle and rectangle, including windows without a title.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "restore_windows",
		Description: "Move windows back to the positions recorded in dump text. Each line is matched to the first live window with exactly the same title; unmatched lines are skipped.",
	}, s.handleRestoreWindows)
}

// withBackend opens a backend, runs fn, and closes the backend.
func (s *Server) withBackend(fn func(platform.Backend) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	backend, err := s.open()
	if err != nil {
		return fmt.Errorf("failed to open window backend: %w", err)
	}
	defer backend.Close()

	return fn(backend)
}
