package tools

import "github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"

// Tool group constants.
const (
	GroupSearch  = "group:search"
	GroupCatalog = "group:catalog"
	GroupBuilder = "group:builder"
	GroupRead    = "group:read"
)

// BuiltinTools returns all tools backed by the given archive client.
func BuiltinTools(client *riksdagen.Client) []*Tool {
	return []*Tool{
		SearchTool(client),
		DocumentTypesTool(),
		URLListTool(client),
		FetchDocumentTool(client),
	}
}

// DefaultRegistry returns a registry with all tools registered.
func DefaultRegistry(client *riksdagen.Client) *Registry {
	reg := NewRegistry()
	for _, tool := range BuiltinTools(client) {
		reg.Register(tool)
	}
	return reg
}
