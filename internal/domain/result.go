package domain

// ProbeResult is the classified outcome of one liveness check.
//
// All four fields are always populated. Status is a pointer to allow
// nil: it is nil exactly when no valid HTTP response was received
// (timeout, DNS failure, connection refused, malformed response), and
// in that case Reason carries the transport error text instead of an
// HTTP reason phrase.
type ProbeResult struct {
	URL    string `json:"url"`
	Alive  bool   `json:"alive"`
	Status *int   `json:"status"` // pointer to allow nil
	Reason string `json:"reason"`
}

// StatusCode returns the HTTP status and whether one was received.
func (r ProbeResult) StatusCode() (int, bool) {
	if r.Status == nil {
		return 0, false
	}
	return *r.Status, true
}
