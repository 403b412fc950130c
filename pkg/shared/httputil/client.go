package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Get sends a GET request with the given headers and returns the response body.
// Returns the body, status code, and any error. Non-2xx responses are errors
// carrying the status and a body snippet.
func Get(ctx context.Context, url string, headers map[string]string, timeoutSecs int) ([]byte, int, error) {
	client := &http.Client{Timeout: time.Duration(timeoutSecs) * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, Snippet(data, 512))
	}
	return data, resp.StatusCode, nil
}

// GetJSON sends a GET request asking for a JSON response.
func GetJSON(ctx context.Context, url string, headers map[string]string, timeoutSecs int) ([]byte, int, error) {
	return Get(ctx, url, MergeHeaders(map[string]string{"Accept": "application/json"}, headers), timeoutSecs)
}

// Snippet truncates a response body for inclusion in error messages.
func Snippet(data []byte, max int) string {
	if len(data) <= max {
		return string(data)
	}
	return string(data[:max]) + "..."
}
