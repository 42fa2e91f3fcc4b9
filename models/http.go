package models

// VariablesQuery holds the lookup keys sent as query parameters to
// GET /v1/variables.
type VariablesQuery struct {
	// Environment is the deployment stage, e.g. "staging" or "production".
	Environment string `json:"environment"`

	// Pipeline is the named config group the environment belongs to.
	Pipeline string `json:"pipeline"`
}

// FetchResult is the normalised outcome of a single fetch attempt.
//
// Transport-level failures (connection refused, timeout, DNS) are not
// returned as errors. They produce a result with Success == false, a nil
// Body and StatusCode == 0, meaning no HTTP response was received.
type FetchResult struct {
	// Success is true only when the service answered with HTTP 200.
	Success bool

	// Body is the decoded JSON body, or nil when the request failed or the
	// body could not be decoded.
	Body *VariablesResponse

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Err describes why the attempt failed. It is informational only (used
	// for logging); the retry decision is made from the fields above.
	Err error
}
