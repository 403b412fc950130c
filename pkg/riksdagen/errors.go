package riksdagen

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned for document format values outside
// json, html and text.
var ErrInvalidFormat = errors.New("invalid format: supported formats are json, html, text")

// RemoteError describes a failed exchange with the archive: a non-2xx
// status or an unparseable body. It is surfaced to the caller as-is,
// never retried.
type RemoteError struct {
	StatusCode int
	Snippet    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("riksdagen archive returned http %d: %s", e.StatusCode, e.Snippet)
	}
	return fmt.Sprintf("riksdagen archive request failed: %s", e.Snippet)
}

// ValidationError describes a malformed search filter, rejected before
// any HTTP request is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
