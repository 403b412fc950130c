package riksdagen

import (
	"context"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/amrtini/riksdagen-mcp-server/pkg/shared/httputil"
)

// maxDocumentTextChars caps the extracted text returned for one document.
const maxDocumentTextChars = 100_000

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// DocumentContent is the readable content of one archive document.
type DocumentContent struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// FetchDocument retrieves one document body from the archive. HTML bodies
// are reduced to a title plus plain text; text and json bodies are returned
// as-is, capped at maxDocumentTextChars.
func (c *Client) FetchDocument(ctx context.Context, id, format string) (*DocumentContent, error) {
	normalized, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, &ValidationError{Field: "document_id", Reason: "must not be empty"}
	}
	docURL, err := c.DocumentURL(id, normalized)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{}
	if c.cfg.UserAgent != "" {
		headers["User-Agent"] = c.cfg.UserAgent
	}
	body, status, err := httputil.Get(ctx, docURL, headers, c.cfg.TimeoutSecs)
	if err != nil {
		return nil, &RemoteError{StatusCode: status, Snippet: err.Error()}
	}

	content := &DocumentContent{ID: id, URL: docURL}
	if normalized == FormatHTML {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
		if err != nil {
			return nil, &RemoteError{StatusCode: status, Snippet: "unparseable html: " + err.Error()}
		}
		content.Title = extractTitle(doc)
		content.Text = extractText(doc)
	} else {
		content.Text = string(body)
	}
	if len(content.Text) > maxDocumentTextChars {
		content.Text = content.Text[:maxDocumentTextChars]
	}
	return content, nil
}

// extractTitle pulls a title from HTML, preferring <title> over headings.
func extractTitle(doc *goquery.Document) string {
	if title := doc.Find("title").First().Text(); title != "" {
		return strings.TrimSpace(title)
	}
	if h1 := doc.Find("h1").First().Text(); h1 != "" {
		return strings.TrimSpace(h1)
	}
	return ""
}

// extractText flattens the document body to plain text with normalized
// whitespace.
func extractText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
