package service

import "errors"

var (
	// ErrMalformedTable is returned when an upload cannot be parsed as a
	// delimited table. Reported to the caller, never retried.
	ErrMalformedTable = errors.New("malformed table")

	// ErrSessionNotFound is returned for queries against an unknown or
	// cleared session id. The caller must re-ingest.
	ErrSessionNotFound = errors.New("session not found")
)
