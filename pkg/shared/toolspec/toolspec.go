package toolspec

// Shared tool schema definitions used by the tool layer and the MCP server.

const (
	SearchName        = "riksdagen_search"
	SearchDescription = "Search for documents in the Riksdagen (Swedish Parliament) archive. Returns document metadata and URLs."

	DocumentTypesName        = "riksdagen_get_document_types"
	DocumentTypesDescription = "Get the available document types in the Riksdagen archive as a mapping of type codes to descriptions."

	URLListName        = "riksdagen_create_url_list"
	URLListDescription = "Create a list of URLs for Riksdagen documents in the specified format (json, html or text)."

	FetchDocumentName        = "riksdagen_fetch_document"
	FetchDocumentDescription = "Fetch one Riksdagen document and return its readable content."
)

// SearchSchema returns the JSON schema for the riksdagen_search tool.
func SearchSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sok": map[string]any{
				"type":        "string",
				"description": "Free-text search term",
			},
			"doktyp": map[string]any{
				"type":        "string",
				"description": "Document type code, e.g. 'prop', 'mot', 'bet'",
			},
			"rm": map[string]any{
				"type":        "string",
				"description": "Parliamentary year, e.g. '2021/22'",
			},
			"from_date": map[string]any{
				"type":        "string",
				"description": "From date in YYYY-MM-DD format",
			},
			"tom": map[string]any{
				"type":        "string",
				"description": "To date in YYYY-MM-DD format",
			},
			"sort": map[string]any{
				"type":        "string",
				"description": "Sort field: 'rel' (relevance), 'datum' (date) or 'beteckning' (designation)",
				"enum":        []string{"rel", "datum", "beteckning"},
			},
			"sortorder": map[string]any{
				"type":        "string",
				"description": "Sort direction: 'desc' or 'asc'",
				"enum":        []string{"desc", "asc"},
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of results to return (default 10)",
			},
		},
	}
}

// DocumentTypesSchema returns the JSON schema for riksdagen_get_document_types.
func DocumentTypesSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// URLListSchema returns the JSON schema for riksdagen_create_url_list.
func URLListSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"document_ids": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Document ids to build URLs for",
			},
			"format": map[string]any{
				"type":        "string",
				"description": "Document format (default 'json')",
				"enum":        []string{"json", "html", "text"},
			},
		},
		"required": []string{"document_ids"},
	}
}

// FetchDocumentSchema returns the JSON schema for riksdagen_fetch_document.
func FetchDocumentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"document_id": map[string]any{
				"type":        "string",
				"description": "The document id to fetch",
			},
			"format": map[string]any{
				"type":        "string",
				"description": "Document format to fetch (default 'html')",
				"enum":        []string{"json", "html", "text"},
			},
		},
		"required": []string{"document_id"},
	}
}
