package riksdagen

import (
	"fmt"
	"strings"
)

// Supported per-document formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatText = "text"
)

// Per-format URL templates, filled with base URL and document id.
var urlTemplates = map[string]string{
	FormatJSON: "%s/dokument/%s.json",
	FormatHTML: "%s/dokument/%s.html",
	FormatText: "%s/dokument/%s.text",
}

// NormalizeFormat lower-cases and validates a format value.
func NormalizeFormat(format string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		normalized = FormatJSON
	}
	if _, ok := urlTemplates[normalized]; !ok {
		return "", fmt.Errorf("%w (got %q)", ErrInvalidFormat, format)
	}
	return normalized, nil
}

// DocumentURL constructs the archive URL for one document in the given format.
func (c *Client) DocumentURL(id, format string) (string, error) {
	normalized, err := NormalizeFormat(format)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(urlTemplates[normalized], c.cfg.BaseURL, id), nil
}

// BuildURLList maps each document id to its templated URL. Order is
// preserved and duplicate ids produce duplicate URLs. An empty id list
// yields an empty result, not an error. The format is validated before
// any URL is built.
func (c *Client) BuildURLList(ids []string, format string) ([]DocumentURL, error) {
	normalized, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	urls := make([]DocumentURL, 0, len(ids))
	for _, id := range ids {
		urls = append(urls, DocumentURL{
			ID:  id,
			URL: fmt.Sprintf(urlTemplates[normalized], c.cfg.BaseURL, id),
		})
	}
	return urls, nil
}
