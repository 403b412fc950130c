// Package mcpserver serves the Riksdagen archive tools over the Model
// Context Protocol using the official go-sdk server.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/amrtini/riksdagen-mcp-server/pkg/tools"
)

const (
	// ServerName identifies this server to MCP clients.
	ServerName = "riksdagen-archive-search"
	// Version is the server version reported during initialization.
	Version = "0.1.0"
)

// Server wraps an MCP server serving one tool registry.
type Server struct {
	mcp *mcp.Server
	log zerolog.Logger
}

// New creates a server exposing every tool in the registry.
func New(registry *tools.Registry, log zerolog.Logger) *Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Title:   "Riksdagen Archive Search",
		Version: Version,
	}, nil)
	server.AddReceivingMiddleware(loggingMiddleware(log))

	s := &Server{mcp: server, log: log}
	for _, tool := range registry.All() {
		s.addTool(tool)
	}
	return s
}

// MCP exposes the underlying SDK server, for HTTP handlers and tests.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves MCP over stdin/stdout until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info().Str("server", ServerName).Str("version", Version).Msg("Serving MCP over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// addTool registers one tool, translating between the registry's execution
// contract and the SDK's handler shape.
func (s *Server) addTool(tool *tools.Tool) {
	def := tool.Tool
	execute := tool.Execute
	s.mcp.AddTool(&def, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArgs(req.Params.Arguments)
		if err != nil {
			return nil, fmt.Errorf("decoding arguments for %s: %w", def.Name, err)
		}
		result, err := execute(ctx, args)
		if err != nil {
			return nil, err
		}
		return toCallToolResult(result), nil
	})
}

// decodeArgs normalizes tool arguments to a map. Depending on the
// transport, arguments may arrive already decoded or as raw JSON.
func decodeArgs(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case json.RawMessage:
		return unmarshalArgs([]byte(v))
	case []byte:
		return unmarshalArgs(v)
	case string:
		return unmarshalArgs([]byte(v))
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return unmarshalArgs(data)
	}
}

func unmarshalArgs(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// toCallToolResult converts a registry result into MCP content blocks.
func toCallToolResult(result *tools.Result) *mcp.CallToolResult {
	if result == nil {
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "{}"}}}
	}
	content := make([]mcp.Content, 0, len(result.Content))
	for _, block := range result.Content {
		if block.Type == "text" {
			content = append(content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(content) == 0 {
		content = append(content, &mcp.TextContent{Text: result.Text()})
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: result.IsError(),
	}
}
