// Package feed builds the stop-monitoring endpoint and fetches raw feed bodies.
//
// The Client issues exactly one GET per call. It never retries and never
// interprets the body; decoding belongs to package arrivals. Failures are
// returned as *TransportError so callers can tell a malformed endpoint from a
// failed request with errors.Is.
package feed
