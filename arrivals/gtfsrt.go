package arrivals

import (
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/buspi/feed"
)

// GTFSRTParser reads GTFS-Realtime TripUpdates and keeps the stop time
// updates for StopID, in entity order.
type GTFSRTParser struct {
	StopID string
	// Location converts epochs to wall-clock time. Nil uses now's location.
	Location *time.Location
}

// Parse decodes a FeedMessage. A decode failure yields KindMalformedFeed and
// no matching updates yields KindNoService.
func (p GTFSRTParser) Parse(resp feed.Response, now time.Time) Result {
	msg := &gtfs.FeedMessage{}
	if err := proto.Unmarshal(resp.Body, msg); err != nil {
		return malformed("decode protobuf: %v", err)
	}

	loc := p.Location
	if loc == nil {
		loc = now.Location()
	}
	nowTOD := FromTime(now.In(loc))

	var arrivals []Arrival
	for _, entity := range msg.GetEntity() {
		tu := entity.GetTripUpdate()
		if tu == nil {
			continue
		}
		for _, stu := range tu.GetStopTimeUpdate() {
			if stu.GetStopId() != p.StopID {
				continue
			}
			epoch, ok := stopEpoch(stu)
			if !ok {
				continue
			}
			at := time.Unix(epoch, 0).In(loc)
			tod := FromTime(at)
			arrivals = append(arrivals, Arrival{
				Bucket: Classify(tod.MinutesUntil(nowTOD)),
				Aimed:  tod,
				Raw:    at.Format(time.RFC3339),
				Line:   tu.GetTrip().GetRouteId(),
			})
		}
	}
	return fromArrivals(arrivals)
}

// stopEpoch prefers the arrival time and falls back to departure
func stopEpoch(stu *gtfs.TripUpdate_StopTimeUpdate) (int64, bool) {
	if arr := stu.GetArrival(); arr != nil && arr.Time != nil {
		return arr.GetTime(), true
	}
	if dep := stu.GetDeparture(); dep != nil && dep.Time != nil {
		return dep.GetTime(), true
	}
	return 0, false
}
