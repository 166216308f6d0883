// Package mcp exposes the nuskell compiler as a Model Context Protocol
// server over stdio, so agentic clients can translate reaction networks
// without shelling out to the CLI.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/jphuse/nuskell"
	"github.com/jphuse/nuskell/internal/presentation/graph"
	"github.com/jphuse/nuskell/pkg/domain"
)

// CompileResponse provides a unified structure across adapters.
type CompileResponse struct {
	System *domain.System `json:"system" jsonschema_description:"The compiled strand-displacement system"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	CompileString(src string) (*domain.System, error)
}

// Server wraps the nuskell Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("nuskell-mcp", strings.TrimSpace(nuskell.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// compileArgs is the common argument shape of both tools.
type compileArgs struct {
	CRN string `mapstructure:"crn"`
}

func (s *Server) registerTools() {
	// TOOL: compile_crn
	compileTool := mcp.NewTool("compile_crn",
		mcp.WithDescription("Compile a chemical reaction network (CRN) into a DNA strand-displacement system. Returns the species and complexes as structured JSON."),
		mcp.WithString("crn", mcp.Required(), mcp.Description("CRN source text, one reaction per line (e.g. 'A + B -> C')")),
		mcp.WithOutputSchema[CompileResponse](),
	)
	s.mcpServer.AddTool(compileTool, mcp.NewStructuredToolHandler(s.handleCompile))

	// TOOL: render_graph
	s.mcpServer.AddTool(mcp.NewTool("render_graph",
		mcp.WithDescription("Compile a CRN and return a Mermaid flowchart of the resulting strand-displacement system."),
		mcp.WithString("crn", mcp.Required(), mcp.Description("CRN source text, one reaction per line")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var in compileArgs
		if err := mapstructure.Decode(request.GetArguments(), &in); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		sys, err := s.engine.CompileString(in.CRN)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("compile failed: %v", err)), nil
		}
		return mcp.NewToolResultText(graph.GenerateMermaid(sys)), nil
	})
}

func (s *Server) handleCompile(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CompileResponse, error) {
	var in compileArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return CompileResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	sys, err := s.engine.CompileString(in.CRN)
	if err != nil {
		return CompileResponse{}, fmt.Errorf("compile failed: %w", err)
	}
	return CompileResponse{System: sys}, nil
}
