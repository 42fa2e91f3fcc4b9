package models

// VariablesResponse is the JSON body returned by GET /v1/variables.
//
// On success the service fills Variables. Some failures carry one or more
// human-readable Messages instead; those are surfaced verbatim to the caller.
type VariablesResponse struct {
	// Variables maps variable names to their values for the requested
	// environment and pipeline.
	Variables Variables `json:"variables,omitempty"`

	// Messages holds server-reported error descriptions. A nil slice means
	// the field was absent from the body.
	Messages []string `json:"messages,omitempty"`
}

// HasMessages reports whether the response carried a messages field.
func (r *VariablesResponse) HasMessages() bool {
	return r != nil && r.Messages != nil
}
