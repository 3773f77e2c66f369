package message

import (
	"fmt"

	"github.com/theoremus-urban-solutions/buspi/arrivals"
)

// MaxLines is the number of message lines the matrix has room for
const MaxLines = 2

// Message is the text rendered below the route label. It never holds more than MaxLines lines.
type Message struct {
	Lines []string
}

func newMessage(lines ...string) Message {
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	return Message{Lines: lines}
}

// NoService is shown when the stop has no upcoming visits
func NoService() Message { return newMessage("No buses", "Check back") }

// NoBuses is shown when the feed could not be read
func NoBuses() Message { return newMessage("No buses", "running now") }

// Broken is shown for any fetch or configuration error
func Broken() Message { return newMessage("yikes!", "something broke!") }

// Compose builds the message for one cycle. A non-nil err wins over result.
func Compose(result arrivals.Result, err error) Message {
	if err != nil {
		return Broken()
	}
	switch result.Kind {
	case arrivals.KindMalformedFeed:
		return NoBuses()
	case arrivals.KindNoService:
		return NoService()
	case arrivals.KindArrivals:
		if len(result.Arrivals) == 0 {
			return NoService()
		}
		lines := make([]string, 0, MaxLines)
		for _, a := range result.Arrivals {
			if len(lines) == MaxLines {
				break
			}
			lines = append(lines, Text(a.Bucket))
		}
		return newMessage(lines...)
	default:
		return Broken()
	}
}

// AfterHours is shown instead of polling during the configured quiet window
func AfterHours(end arrivals.TimeOfDay) Message {
	return newMessage("After Hours", "Until "+end.Clock())
}

// Text renders a single bucket
func Text(b arrivals.Bucket) string {
	switch b.Kind {
	case arrivals.OneMinute:
		return "1 minute!!!"
	case arrivals.ImmediateArriving:
		return "ARRIVING"
	case arrivals.Delayed:
		return "DELAY"
	case arrivals.NMinutes:
		return fmt.Sprintf("%d minutes", b.Minutes)
	default:
		return "UNKNOWN"
	}
}
