package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/amrtini/riksdagen-mcp-server/pkg/riksdagen"
)

func urlListTool() *Tool {
	return URLListTool(riksdagen.NewClient(nil))
}

func TestURLListToolBuildsURLs(t *testing.T) {
	tool := urlListTool()
	result, err := tool.Execute(context.Background(), map[string]any{
		"document_ids": []any{"HA021", "HA021", "HB100"},
		"format":       "html",
	})
	if err != nil || result.IsError() {
		t.Fatalf("unexpected failure: %v %v", err, result)
	}
	urls, ok := result.Details["urls"].([]any)
	if !ok || len(urls) != 3 {
		t.Fatalf("expected 3 urls, got %#v", result.Details["urls"])
	}
	first := urls[0].(map[string]any)
	if first["url"] != "https://data.riksdagen.se/dokument/HA021.html" {
		t.Fatalf("unexpected url %#v", first["url"])
	}
	if result.Details["format"] != "html" {
		t.Fatalf("expected format echoed, got %#v", result.Details["format"])
	}
	if count, ok := result.Details["count"].(float64); !ok || count != 3 {
		t.Fatalf("expected count 3, got %#v", result.Details["count"])
	}
}

func TestURLListToolDefaultsToJSON(t *testing.T) {
	tool := urlListTool()
	result, err := tool.Execute(context.Background(), map[string]any{
		"document_ids": []any{"HA021"},
	})
	if err != nil || result.IsError() {
		t.Fatalf("unexpected failure: %v %v", err, result)
	}
	if !strings.Contains(result.Text(), "HA021.json") {
		t.Fatalf("expected json url by default, got %s", result.Text())
	}
}

func TestURLListToolEmptyIDs(t *testing.T) {
	tool := urlListTool()
	result, err := tool.Execute(context.Background(), map[string]any{
		"document_ids": []any{},
	})
	if err != nil || result.IsError() {
		t.Fatalf("empty id list must succeed: %v %v", err, result)
	}
	if count, ok := result.Details["count"].(float64); !ok || count != 0 {
		t.Fatalf("expected count 0, got %#v", result.Details["count"])
	}
}

func TestURLListToolInvalidFormat(t *testing.T) {
	tool := urlListTool()
	result, err := tool.Execute(context.Background(), map[string]any{
		"document_ids": []any{"HA021"},
		"format":       "xml",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError() || !strings.Contains(result.Error, "invalid format") {
		t.Fatalf("expected invalid format error, got %q", result.Error)
	}
}

func TestURLListToolRequiresIDs(t *testing.T) {
	tool := urlListTool()
	result, err := tool.Execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError() {
		t.Fatalf("expected error result when document_ids is missing")
	}
}
