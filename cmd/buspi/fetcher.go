package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/buspi/feed"
	"github.com/theoremus-urban-solutions/buspi/scheduler"
)

// fileFetcher serves `once --from-file`: every Fetch returns the saved body
// at path and never touches the network.
type fileFetcher struct {
	path string
}

// newFetcher returns the HTTP client, or a fileFetcher when fromFile is set
func newFetcher(fromFile string, client *feed.Client) scheduler.Fetcher {
	if fromFile == "" {
		return client
	}
	return &fileFetcher{path: fromFile}
}

// Fetch reads the whole file on every call, so edits show up on the next cycle.
// The endpoint is ignored.
func (f *fileFetcher) Fetch(ctx context.Context, _ feed.Endpoint) (feed.Response, error) {
	if err := ctx.Err(); err != nil {
		return feed.Response{}, err
	}
	body, err := os.ReadFile(f.path)
	if err != nil {
		return feed.Response{}, &feed.TransportError{
			Kind: feed.ErrRequestFailed,
			URL:  "file://" + f.path,
			Err:  fmt.Errorf("failed to read %s: %w", f.path, err),
		}
	}
	return feed.Response{Body: body, ContentType: contentType(f.path)}, nil
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".bin", ".proto":
		return "application/x-protobuf"
	default:
		return "application/json"
	}
}
