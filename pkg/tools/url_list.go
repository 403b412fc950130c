package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/toolspec"
)

// URLListTool builds the riksdagen_create_url_list tool definition.
func URLListTool(client *riksdagen.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.URLListName,
			Description: toolspec.URLListDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Riksdagen URL List", ReadOnlyHint: true},
			InputSchema: toolspec.URLListSchema(),
		},
		Group: GroupBuilder,
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeURLList(client, args)
		},
	}
}

func executeURLList(client *riksdagen.Client, args map[string]any) (*Result, error) {
	ids, err := ReadStringSlice(args, "document_ids", true)
	if err != nil {
		return ErrorResult(toolspec.URLListName, err.Error()), nil
	}
	format, err := riksdagen.NormalizeFormat(ReadStringDefault(args, "format", riksdagen.FormatJSON))
	if err != nil {
		return ErrorResult(toolspec.URLListName, err.Error()), nil
	}
	urls, err := client.BuildURLList(ids, format)
	if err != nil {
		return ErrorResult(toolspec.URLListName, fmt.Sprintf("building url list: %v", err)), nil
	}
	return JSONResult(map[string]any{
		"urls":   urls,
		"format": format,
		"count":  len(urls),
	}), nil
}
