package catalog

import "errors"

var (
	// ErrConfigMissing indicates the search endpoint, key, or index name
	// is not configured. Never retried.
	ErrConfigMissing = errors.New("search configuration incomplete")

	// ErrUnavailable indicates the search backend could not be reached,
	// timed out, or returned a non-success status.
	ErrUnavailable = errors.New("search backend unavailable")

	// ErrMalformedResponse indicates the search backend returned a body
	// that could not be parsed into the expected shape.
	ErrMalformedResponse = errors.New("malformed search response")
)
