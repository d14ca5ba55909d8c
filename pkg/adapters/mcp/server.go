// Package mcp exposes the Canopy engine as an MCP server, so agent tooling
// can validate configurations and inspect the dependency graph.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Evaluate(c domain.Collections) *canopy.Result
}

// Server wraps the Canopy engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("canopy-mcp", strings.TrimSpace(canopy.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// parseCollections decodes the JSON config argument shared by every tool.
func parseCollections(args map[string]interface{}) (domain.Collections, error) {
	raw, _ := args["config"].(string)
	if raw == "" {
		return domain.Collections{}, fmt.Errorf("config argument is required")
	}
	var c domain.Collections
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return domain.Collections{}, fmt.Errorf("config is not valid JSON: %w", err)
	}
	return c, nil
}

func (s *Server) registerTools() {
	// TOOL: validate_config
	s.mcpServer.AddTool(mcp.NewTool("validate_config",
		mcp.WithDescription("Validate a full tenant configuration and return the aggregated snapshot (errors, warnings, deploy gate)."),
		mcp.WithString("config", mcp.Required(), mcp.Description("JSON object with the six entity collections")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c, err := parseCollections(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result := s.engine.Evaluate(c)
		jsonBytes, _ := json.Marshal(result.Snapshot)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Build the dependency graph for a tenant configuration, decorated with orphan flags and broken references."),
		mcp.WithString("config", mcp.Required(), mcp.Description("JSON object with the six entity collections")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c, err := parseCollections(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result := s.engine.Evaluate(c)
		jsonBytes, _ := json.Marshal(result.Graph)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: deploy_gate
	s.mcpServer.AddTool(mcp.NewTool("deploy_gate",
		mcp.WithDescription("Compute the deploy-gate verdict for a tenant configuration. Returns may_deploy plus every blocking error."),
		mcp.WithString("config", mcp.Required(), mcp.Description("JSON object with the six entity collections")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c, err := parseCollections(request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result := s.engine.Evaluate(c)
		verdict := map[string]any{
			"may_deploy": result.Snapshot.MayDeploy,
			"errors":     result.Snapshot.AllErrors(),
		}
		jsonBytes, _ := json.Marshal(verdict)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}
