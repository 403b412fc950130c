package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/toolspec"
)

// FetchDocumentTool builds the riksdagen_fetch_document tool definition.
func FetchDocumentTool(client *riksdagen.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.FetchDocumentName,
			Description: toolspec.FetchDocumentDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Riksdagen Fetch Document", ReadOnlyHint: true},
			InputSchema: toolspec.FetchDocumentSchema(),
		},
		Group: GroupRead,
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeFetchDocument(ctx, client, args)
		},
	}
}

func executeFetchDocument(ctx context.Context, client *riksdagen.Client, args map[string]any) (*Result, error) {
	id, err := ReadString(args, "document_id", true)
	if err != nil {
		return ErrorResult(toolspec.FetchDocumentName, err.Error()), nil
	}
	format := ReadStringDefault(args, "format", riksdagen.FormatHTML)
	content, err := client.FetchDocument(ctx, id, format)
	if err != nil {
		return ErrorResult(toolspec.FetchDocumentName, fmt.Sprintf("fetch failed: %v", err)), nil
	}
	return JSONResult(content), nil
}
