// Package mcp exposes the documentation service as Model Context Protocol
// tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/synopsis/internal/docs"
	"github.com/mvp-joe/synopsis/internal/extraction"
)

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// CacheSize bounds the result cache. Zero disables caching.
	CacheSize int
	// Indicators are used by docs_progress when a call names none.
	Indicators []extraction.Indicator
	Logger     *slog.Logger
}

// Server manages the MCP server lifecycle.
type Server struct {
	tools  *tools
	mcp    *server.MCPServer
	logger *slog.Logger
}

// NewServer creates a server with the docs tools registered.
func NewServer(service *docs.Service, opts Options) (*Server, error) {
	if service == nil {
		return nil, fmt.Errorf("docs service is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Name == "" {
		opts.Name = "synopsis-mcp"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if len(opts.Indicators) == 0 {
		opts.Indicators = extraction.AllIndicators
	}

	cache, err := newResultCache(opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	t := &tools{
		service:    service,
		cache:      cache,
		indicators: opts.Indicators,
		logger:     opts.Logger,
	}

	mcpServer := server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(true),
	)
	t.AddSynopsisTool(mcpServer)
	t.AddCodeTool(mcpServer)
	t.AddProgressTool(mcpServer)

	return &Server{tools: t, mcp: mcpServer, logger: opts.Logger}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting MCP server on stdio")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-sigCh:
		s.logger.Info("received shutdown signal, stopping")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases the result cache.
func (s *Server) Close() error {
	s.tools.cache.close()
	return nil
}
