// Package mcpserver exposes the pagelift services as MCP tools.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gaurav-prasanna/pagelift/core"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Enhancer runs the content flow.
type Enhancer interface {
	Extract(ctx context.Context, rawURL string) (*core.Page, error)
	Run(ctx context.Context, rawURL string, raw bool) (*core.Report, error)
}

// Converter runs the prompt-to-JSON flow.
type Converter interface {
	Convert(ctx context.Context, text string) (*core.PromptJSONResult, error)
}

// Ports are the services the tools call.
type Ports struct {
	Normalizer core.Normalizer
	Enhancer   Enhancer
	Converter  Converter
}

// Validate checks that every port is set.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports are required")
	}
	if p.Normalizer == nil {
		return errors.New("normalizer is required")
	}
	if p.Enhancer == nil {
		return errors.New("enhancer is required")
	}
	if p.Converter == nil {
		return errors.New("converter is required")
	}
	return nil
}

// Server is the MCP server for pagelift.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// New creates a Server with all tools registered.
func New(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	s := &Server{
		ports: ports,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "pagelift",
			Version: Version,
		}, nil),
	}
	s.registerTools()
	return s, nil
}

// Run serves over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
