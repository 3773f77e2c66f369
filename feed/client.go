package feed

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Response is the raw feed body, consumed once by a parser and discarded
type Response struct {
	Body        []byte
	ContentType string
	FetchedAt   time.Time
}

// Client is a simple HTTP client for fetching the arrival feed
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client. A zero timeout keeps the transport default.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP wraps an existing http.Client
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

// Fetch issues one GET against the endpoint and returns the raw body.
func (c *Client) Fetch(ctx context.Context, ep Endpoint) (Response, error) {
	u, err := url.Parse(ep.String())
	if err != nil {
		return Response{}, &TransportError{Kind: ErrMalformedEndpoint, URL: ep.Redacted(), Err: stripURL(err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return Response{}, &TransportError{Kind: ErrMalformedEndpoint, URL: ep.Redacted()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Response{}, &TransportError{Kind: ErrMalformedEndpoint, URL: ep.Redacted(), Err: stripURL(err)}
	}
	req.Header.Set("Accept", "application/json, application/x-protobuf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, &TransportError{Kind: ErrRequestFailed, URL: ep.Redacted(), Err: stripURL(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, &TransportError{Kind: ErrRequestFailed, URL: ep.Redacted(), StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &TransportError{Kind: ErrRequestFailed, URL: ep.Redacted(), Err: err}
	}

	return Response{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FetchedAt:   time.Now(),
	}, nil
}

// stripURL drops the *url.Error wrapper, whose message repeats the unredacted URL
func stripURL(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
