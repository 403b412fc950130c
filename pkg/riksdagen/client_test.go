package riksdagen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&Config{BaseURL: baseURL, TimeoutSecs: 5})
}

func listBody(docs ...string) string {
	out := `{"dokumentlista":{"@traffar":"` + fmt.Sprint(len(docs)) + `","dokument":[`
	for i, doc := range docs {
		if i > 0 {
			out += ","
		}
		out += doc
	}
	return out + `]}}`
}

func TestSearchOmitsUnsetFilters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(listBody()))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), SearchParams{
		Sok:       "klimat",
		Sort:      SortDate,
		SortOrder: SortAscending,
	}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for key, want := range map[string]string{
		"sok":       "klimat",
		"sort":      "datum",
		"sortorder": "asc",
		"utformat":  "json",
		"p":         "1",
	} {
		if got := gotQuery.Get(key); got != want {
			t.Fatalf("query param %s: got %q, want %q", key, got, want)
		}
	}
	for _, key := range []string{"doktyp", "rm", "from", "tom", "bet", "org", "talare"} {
		if _, present := gotQuery[key]; present {
			t.Fatalf("unset filter %s must not appear in query string", key)
		}
	}
}

func TestSearchMapsArchiveFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("doktyp"); got != "mot" {
			t.Errorf("expected doktyp=mot, got %q", got)
		}
		_, _ = w.Write([]byte(listBody(
			`{"id":"HA021","titel":"Klimatpolitik för framtiden","typ":"mot","doktyp":"mot","datum":"2023-10-03","rm":"2023/24","organ":"MJU","dokument_url_html":"//data.riksdagen.se/dokument/HA021.html","status":"Bordlagd"}`,
			`{"id":"HA022","titel":"Klimatet och jobben","typ":"mot","doktyp":"mot","datum":"2023-10-04"}`,
		)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), SearchParams{Sok: "klimat", Doktyp: "mot"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalHits != 2 {
		t.Fatalf("expected total_hits 2, got %d", result.TotalHits)
	}
	if len(result.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(result.Documents))
	}
	for _, doc := range result.Documents {
		if doc.ID == "" || doc.Title == "" || doc.URL == "" {
			t.Fatalf("document missing id/title/url: %+v", doc)
		}
	}
	first := result.Documents[0]
	if first.URL != "https://data.riksdagen.se/dokument/HA021.html" {
		t.Fatalf("scheme-relative url not normalized: %q", first.URL)
	}
	if first.Organization != "MJU" || first.ParliamentaryYear != "2023/24" {
		t.Fatalf("archive fields not mapped: %+v", first)
	}
	// Entry without archive URLs falls back to the constructed one.
	if second := result.Documents[1]; second.URL != server.URL+"/dokument/HA022.html" {
		t.Fatalf("expected constructed fallback url, got %q", second.URL)
	}
}

func TestSearchTruncatesToLimit(t *testing.T) {
	docs := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		docs = append(docs, fmt.Sprintf(`{"id":"DOC%d","titel":"t%d"}`, i, i))
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listBody(docs...)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), SearchParams{Sok: "x"}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Documents) != 5 {
		t.Fatalf("expected 5 documents after truncation, got %d", len(result.Documents))
	}
	if result.TotalHits != 8 {
		t.Fatalf("total_hits must report the upstream count, got %d", result.TotalHits)
	}
}

func TestSearchSkipsEntriesWithoutID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(listBody(
			`{"titel":"no id"}`,
			`{"id":"GOOD1","titel":"kept"}`,
			`{"id":"  ","titel":"blank id"}`,
		)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Search(context.Background(), SearchParams{Sok: "x"}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Documents) != 1 || result.Documents[0].ID != "GOOD1" {
		t.Fatalf("expected only the entry with an id, got %+v", result.Documents)
	}
}

func TestSearchRemoteErrorNoRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "archive down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), SearchParams{Sok: "x"}, 0)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteError, got %T: %v", err, err)
	}
	if remoteErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500 in error, got %d", remoteErr.StatusCode)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one outbound call, observed %d", calls)
	}
}

func TestSearchMalformedBodyIsRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), SearchParams{Sok: "x"}, 0)
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected *RemoteError for malformed body, got %T: %v", err, err)
	}
}

func TestSearchValidatesBeforeRequest(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(listBody()))
	}))
	defer server.Close()
	client := newTestClient(server.URL)

	tests := []struct {
		name   string
		params SearchParams
		limit  int
	}{
		{name: "bad sort", params: SearchParams{Sort: "publikation"}},
		{name: "bad sortorder", params: SearchParams{SortOrder: "sideways"}},
		{name: "negative limit", limit: -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Search(context.Background(), tc.params, tc.limit)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected *ValidationError, got %T: %v", err, err)
			}
		})
	}
	if calls != 0 {
		t.Fatalf("validation failures must not reach the archive, observed %d calls", calls)
	}
}
