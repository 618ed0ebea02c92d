package llm

import "errors"

var (
	// ErrConfigMissing indicates the generation endpoint, key, or deployment
	// name is not configured. Enrichment is disabled; never retried.
	ErrConfigMissing = errors.New("generation configuration incomplete")

	// ErrUnavailable indicates the generation backend is unreachable or
	// returned a non-success status.
	ErrUnavailable = errors.New("generation backend unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the generation response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid generation output format")
)
