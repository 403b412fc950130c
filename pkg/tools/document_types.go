package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/toolspec"
)

// DocumentTypesTool builds the riksdagen_get_document_types tool definition.
// It is pure: no network call, no failure mode.
func DocumentTypesTool() *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.DocumentTypesName,
			Description: toolspec.DocumentTypesDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Riksdagen Document Types", ReadOnlyHint: true},
			InputSchema: toolspec.DocumentTypesSchema(),
		},
		Group: GroupCatalog,
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return JSONResult(riksdagen.DocumentTypes()), nil
		},
	}
}
