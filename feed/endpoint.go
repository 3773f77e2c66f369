package feed

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Template placeholders
const (
	PlaceholderAPIKey = "{api_key}"
	PlaceholderStopID = "{stop_id}"
)

// ErrIncompleteEndpoint is returned when a value needed by the template is missing
var ErrIncompleteEndpoint = errors.New("incomplete endpoint")

// Endpoint is the fully expanded feed URL. The zero value is an empty,
// invalid endpoint; fetching it yields a MalformedEndpoint error.
type Endpoint struct {
	raw    string
	stopID string
}

// NewEndpoint expands template with the query-escaped api key and stop id
func NewEndpoint(template, apiKey, stopID string) (Endpoint, error) {
	if template == "" {
		return Endpoint{}, fmt.Errorf("%w: empty template", ErrIncompleteEndpoint)
	}
	if apiKey == "" {
		return Endpoint{}, fmt.Errorf("%w: missing api key", ErrIncompleteEndpoint)
	}
	if stopID == "" {
		return Endpoint{}, fmt.Errorf("%w: missing stop id", ErrIncompleteEndpoint)
	}
	r := strings.NewReplacer(
		PlaceholderAPIKey, url.QueryEscape(apiKey),
		PlaceholderStopID, url.QueryEscape(stopID),
	)
	return Endpoint{raw: r.Replace(template), stopID: stopID}, nil
}

// String returns the URL including the api key
func (e Endpoint) String() string { return e.raw }

// StopID is the monitoring ref the endpoint was built for
func (e Endpoint) StopID() string { return e.stopID }

// IsZero reports whether the endpoint was never built
func (e Endpoint) IsZero() bool { return e.raw == "" }

// Redacted returns the URL with the key query parameter masked, for logs and errors
func (e Endpoint) Redacted() string {
	return redact(e.raw)
}

func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<unparseable url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "xxxxx")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
