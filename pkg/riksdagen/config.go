package riksdagen

import "strings"

const (
	// DefaultBaseURL is the public archive endpoint.
	DefaultBaseURL = "https://data.riksdagen.se"

	// SortRelevance, SortDate and SortDesignation are the archive's
	// accepted sort fields.
	SortRelevance   = "rel"
	SortDate        = "datum"
	SortDesignation = "beteckning"

	SortAscending  = "asc"
	SortDescending = "desc"

	DefaultSort        = SortRelevance
	DefaultSortOrder   = SortDescending
	DefaultResultLimit = 10
	DefaultTimeoutSecs = 30
)

// Config controls the archive client.
type Config struct {
	BaseURL      string `yaml:"base_url"`
	TimeoutSecs  int    `yaml:"timeout_seconds"`
	DefaultLimit int    `yaml:"default_limit"`
	UserAgent    string `yaml:"user_agent"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.DefaultLimit <= 0 {
		c.DefaultLimit = DefaultResultLimit
	}
	return c
}

// ValidSort reports whether the sort field is one the archive accepts.
func ValidSort(sort string) bool {
	switch sort {
	case SortRelevance, SortDate, SortDesignation:
		return true
	}
	return false
}

// ValidSortOrder reports whether the sort direction is asc or desc.
func ValidSortOrder(order string) bool {
	return order == SortAscending || order == SortDescending
}
