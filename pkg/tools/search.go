package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/toolspec"
)

// SearchTool builds the riksdagen_search tool definition.
func SearchTool(client *riksdagen.Client) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        toolspec.SearchName,
			Description: toolspec.SearchDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Riksdagen Search", ReadOnlyHint: true},
			InputSchema: toolspec.SearchSchema(),
		},
		Group: GroupSearch,
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			return executeSearch(ctx, client, args)
		},
	}
}

// executeSearch maps tool arguments onto the archive search call.
func executeSearch(ctx context.Context, client *riksdagen.Client, args map[string]any) (*Result, error) {
	params := riksdagen.SearchParams{
		Sort:      riksdagen.DefaultSort,
		SortOrder: riksdagen.DefaultSortOrder,
	}
	var err error
	read := func(key string) string {
		if err != nil {
			return ""
		}
		var value string
		value, err = ReadString(args, key, false)
		return value
	}
	params.Sok = read("sok")
	params.Doktyp = read("doktyp")
	params.Rm = read("rm")
	params.FromDate = read("from_date")
	params.Tom = read("tom")
	if sort := read("sort"); sort != "" {
		params.Sort = sort
	}
	if order := read("sortorder"); order != "" {
		params.SortOrder = order
	}
	if err != nil {
		return ErrorResult(toolspec.SearchName, err.Error()), nil
	}
	limit, err := ReadInt(args, "limit", false)
	if err != nil {
		return ErrorResult(toolspec.SearchName, err.Error()), nil
	}

	result, err := client.Search(ctx, params, limit)
	if err != nil {
		var validationErr *riksdagen.ValidationError
		if errors.As(err, &validationErr) {
			return ErrorResult(toolspec.SearchName, validationErr.Error()), nil
		}
		return ErrorResult(toolspec.SearchName, fmt.Sprintf("search failed: %v", err)), nil
	}
	return JSONResult(result), nil
}
