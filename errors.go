package rewriteprobe

import "errors"

var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("api key missing")
	// ErrUnknownTransport indicates an unsupported transport name.
	ErrUnknownTransport = errors.New("unknown transport")
	// ErrRequestFailed indicates the request never produced an HTTP response.
	ErrRequestFailed = errors.New("request failed")
	// ErrUnexpectedStatus indicates a non-2xx HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrInvalidResponse indicates the response body is not the expected JSON.
	ErrInvalidResponse = errors.New("invalid response")
	// ErrNoCandidates indicates the response held no candidates.
	ErrNoCandidates = errors.New("no candidates returned")
	// ErrInvalidCases indicates a case file does not match the case schema.
	ErrInvalidCases = errors.New("cases do not match schema")
)
