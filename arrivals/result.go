package arrivals

import (
	"errors"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/buspi/feed"
)

// ErrFeedShape marks a body that did not have the expected structure
var ErrFeedShape = errors.New("unexpected feed shape")

// ResultKind is the outcome of parsing one feed body
type ResultKind int

const (
	KindArrivals ResultKind = iota
	KindNoService
	KindMalformedFeed
)

func (k ResultKind) String() string {
	switch k {
	case KindArrivals:
		return "arrivals"
	case KindNoService:
		return "no_service"
	case KindMalformedFeed:
		return "malformed_feed"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Arrival is one vehicle visit with its classification
type Arrival struct {
	Bucket      Bucket
	Aimed       TimeOfDay
	Raw         string // timestamp as found in the feed
	Line        string
	Destination string
}

// Result is what a Parser returns. Arrivals keeps feed order.
type Result struct {
	Kind     ResultKind
	Arrivals []Arrival
	Err      error // set for KindMalformedFeed
}

// Buckets returns the bucket of every arrival in order
func (r Result) Buckets() []Bucket {
	out := make([]Bucket, 0, len(r.Arrivals))
	for _, a := range r.Arrivals {
		out = append(out, a.Bucket)
	}
	return out
}

// Parser turns a feed body into a Result relative to now
type Parser interface {
	Parse(resp feed.Response, now time.Time) Result
}

// Supported feed formats
const (
	FormatSIRI   = "siri"
	FormatGTFSRT = "gtfsrt"
)

// NewParser selects a parser by format name
func NewParser(format, stopID string) (Parser, error) {
	switch format {
	case "", FormatSIRI:
		return SIRIParser{}, nil
	case FormatGTFSRT:
		return GTFSRTParser{StopID: stopID}, nil
	default:
		return nil, fmt.Errorf("unknown feed format %q", format)
	}
}

func malformed(format string, args ...any) Result {
	return Result{
		Kind: KindMalformedFeed,
		Err:  fmt.Errorf("%w: %s", ErrFeedShape, fmt.Sprintf(format, args...)),
	}
}

func fromArrivals(arrivals []Arrival) Result {
	if len(arrivals) == 0 {
		return Result{Kind: KindNoService}
	}
	return Result{Kind: KindArrivals, Arrivals: arrivals}
}
