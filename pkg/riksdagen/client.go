package riksdagen

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/httputil"
)

// Client queries the Riksdagen document archive. It is stateless and safe
// for concurrent use.
type Client struct {
	cfg *Config
}

// NewClient creates a client with the given config, applying defaults.
func NewClient(cfg *Config) *Client {
	return &Client{cfg: cfg.WithDefaults()}
}

// Config returns the client's effective config.
func (c *Client) Config() *Config {
	return c.cfg
}

// Search performs a single GET against the dokumentlista endpoint and
// normalizes the response. Unset params are omitted from the query string.
// The decoded document list is truncated to limit; limit 0 means the
// configured default, negative limits are rejected before the request.
func (c *Client) Search(ctx context.Context, params SearchParams, limit int) (*SearchResult, error) {
	if limit == 0 {
		limit = c.cfg.DefaultLimit
	}
	if limit < 0 {
		return nil, &ValidationError{Field: "limit", Reason: "must be a positive integer"}
	}
	if params.Sort != "" && !ValidSort(params.Sort) {
		return nil, &ValidationError{Field: "sort", Reason: "must be rel, datum or beteckning"}
	}
	if params.SortOrder != "" && !ValidSortOrder(params.SortOrder) {
		return nil, &ValidationError{Field: "sortorder", Reason: "must be asc or desc"}
	}

	params.Utformat = "json"
	values := params.Values()
	values.Set("p", "1")
	endpoint := c.cfg.BaseURL + "/dokumentlista/?" + values.Encode()

	headers := map[string]string{}
	if c.cfg.UserAgent != "" {
		headers["User-Agent"] = c.cfg.UserAgent
	}
	data, status, err := httputil.GetJSON(ctx, endpoint, headers, c.cfg.TimeoutSecs)
	if err != nil {
		return nil, &RemoteError{StatusCode: status, Snippet: err.Error()}
	}

	var resp struct {
		Dokumentlista struct {
			Traffar  string `json:"@traffar"`
			Dokument []struct {
				ID              string `json:"id"`
				Titel           string `json:"titel"`
				Typ             string `json:"typ"`
				Doktyp          string `json:"doktyp"`
				Datum           string `json:"datum"`
				Publicerad      string `json:"publicerad"`
				Rm              string `json:"rm"`
				Organ           string `json:"organ"`
				DokumentURLText string `json:"dokument_url_text"`
				DokumentURLHTML string `json:"dokument_url_html"`
				Status          string `json:"status"`
			} `json:"dokument"`
		} `json:"dokumentlista"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &RemoteError{StatusCode: status, Snippet: "unparseable body: " + httputil.Snippet(data, 256)}
	}

	documents := make([]Document, 0, len(resp.Dokumentlista.Dokument))
	for _, entry := range resp.Dokumentlista.Dokument {
		if len(documents) >= limit {
			break
		}
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			continue
		}
		doc := Document{
			ID:                id,
			Title:             strings.TrimSpace(entry.Titel),
			Type:              entry.Typ,
			DocumentType:      entry.Doktyp,
			Date:              entry.Datum,
			Published:         entry.Publicerad,
			ParliamentaryYear: entry.Rm,
			Organization:      entry.Organ,
			TextURL:           absoluteURL(entry.DokumentURLText),
			HTMLURL:           absoluteURL(entry.DokumentURLHTML),
			Status:            entry.Status,
		}
		doc.URL = doc.HTMLURL
		if doc.URL == "" {
			doc.URL, _ = c.DocumentURL(id, FormatHTML)
		}
		documents = append(documents, doc)
	}

	totalHits, _ := strconv.Atoi(resp.Dokumentlista.Traffar)
	return &SearchResult{
		TotalHits: totalHits,
		Documents: documents,
	}, nil
}

// absoluteURL fixes up the scheme-relative URLs the archive returns.
func absoluteURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}
