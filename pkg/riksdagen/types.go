// Package riksdagen is a client for the Swedish Parliament open-data
// document archive (https://data.riksdagen.se). It builds search queries
// against the dokumentlista endpoint, normalizes the responses, and
// constructs per-document URLs in the archive's supported formats.
package riksdagen

import "net/url"

// SearchParams holds the archive's search filters. Zero-valued fields are
// omitted from the query string entirely.
type SearchParams struct {
	Sok       string // free-text search term
	Doktyp    string // document type code, e.g. "prop", "mot", "bet"
	Rm        string // parliamentary year, e.g. "2021/22"
	FromDate  string // from date, YYYY-MM-DD (wire name "from")
	Tom       string // to date, YYYY-MM-DD
	Ts        string // time span
	Bet       string // designation
	Tempbet   string // temporary designation
	Nr        string // number
	Org       string // organization
	Iid       string // intressent id
	Webbtv    string // web TV
	Talare    string // speaker
	Exakt     string // exact match
	Planering string // planning
	Sort      string // sort field: rel, datum, beteckning
	SortOrder string // sort direction: asc, desc
	Rapport   string // report
	Utformat  string // response format, always json for this client
	A         string // additional archive parameter
}

// Values converts the params to url.Values, mapping FromDate to its wire
// name and skipping every unset field.
func (p SearchParams) Values() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("sok", p.Sok)
	set("doktyp", p.Doktyp)
	set("rm", p.Rm)
	set("from", p.FromDate)
	set("tom", p.Tom)
	set("ts", p.Ts)
	set("bet", p.Bet)
	set("tempbet", p.Tempbet)
	set("nr", p.Nr)
	set("org", p.Org)
	set("iid", p.Iid)
	set("webbtv", p.Webbtv)
	set("talare", p.Talare)
	set("exakt", p.Exakt)
	set("planering", p.Planering)
	set("sort", p.Sort)
	set("sortorder", p.SortOrder)
	set("rapport", p.Rapport)
	set("utformat", p.Utformat)
	set("a", p.A)
	return values
}

// Document is a normalized archive document record.
type Document struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Type              string `json:"type,omitempty"`
	DocumentType      string `json:"document_type,omitempty"`
	Date              string `json:"date,omitempty"`
	Published         string `json:"published,omitempty"`
	ParliamentaryYear string `json:"parliamentary_year,omitempty"`
	Organization      string `json:"organization,omitempty"`
	URL               string `json:"url"`
	TextURL           string `json:"text_url,omitempty"`
	HTMLURL           string `json:"html_url,omitempty"`
	Status            string `json:"status,omitempty"`
}

// SearchResult is a normalized search response.
type SearchResult struct {
	TotalHits int        `json:"total_hits"`
	Documents []Document `json:"documents"`
}

// DocumentURL pairs a document id with its constructed URL.
type DocumentURL struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
