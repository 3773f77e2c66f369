package arrivals

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/buspi/feed"
	"github.com/theoremus-urban-solutions/buspi/siri"
)

// SIRIParser reads MTA Bus Time StopMonitoring JSON
type SIRIParser struct{}

// Parse walks Siri.ServiceDelivery.StopMonitoringDelivery[0].MonitoredStopVisit.
// Any missing or wrong-typed element along the way yields KindMalformedFeed,
// including a single visit without an AimedArrivalTime.
func (SIRIParser) Parse(resp feed.Response, now time.Time) Result {
	var doc siri.SiriResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return malformed("decode: %v", err)
	}
	if err := exactKeys(resp.Body); err != nil {
		return malformed("%v", err)
	}
	if doc.Siri == nil || doc.Siri.ServiceDelivery == nil {
		return malformed("missing Siri.ServiceDelivery")
	}
	deliveries := doc.Siri.ServiceDelivery.StopMonitoringDelivery
	if len(deliveries) == 0 {
		return malformed("missing StopMonitoringDelivery[0]")
	}
	visits := deliveries[0].MonitoredStopVisit
	if visits == nil {
		return malformed("missing MonitoredStopVisit")
	}

	nowTOD := FromTime(now)
	arrivals := make([]Arrival, 0, len(*visits))
	for i, v := range *visits {
		mvj := v.MonitoredVehicleJourney
		if mvj == nil || mvj.MonitoredCall == nil || mvj.MonitoredCall.AimedArrivalTime == nil {
			return malformed("visit %d has no MonitoredCall.AimedArrivalTime", i)
		}
		raw := *mvj.MonitoredCall.AimedArrivalTime
		a := Arrival{
			Raw:         raw,
			Line:        lineName(mvj),
			Destination: mvj.DestinationName.String(),
		}
		if tod, err := ParseTimeOfDay(raw); err != nil {
			a.Bucket = Bucket{Kind: Unknown}
		} else {
			a.Aimed = tod
			a.Bucket = Classify(tod.MinutesUntil(nowTOD))
		}
		arrivals = append(arrivals, a)
	}
	return fromArrivals(arrivals)
}

func lineName(mvj *siri.MonitoredVehicleJourney) string {
	if name := mvj.PublishedLineName.String(); name != "" {
		return name
	}
	return mvj.LineRef
}

// exactKeys checks the spelling of every key Parse relies on.
// encoding/json matches field names case-insensitively.
func exactKeys(body []byte) error {
	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	sd, err := path(root, "Siri", "ServiceDelivery")
	if err != nil {
		return err
	}
	deliveries, err := path(sd, "StopMonitoringDelivery")
	if err != nil {
		return err
	}
	list, ok := deliveries.([]any)
	if !ok || len(list) == 0 {
		return fmt.Errorf("missing StopMonitoringDelivery[0]")
	}
	visits, err := path(list[0], "MonitoredStopVisit")
	if err != nil {
		return err
	}
	vs, _ := visits.([]any)
	for i, v := range vs {
		if _, err := path(v, "MonitoredVehicleJourney", "MonitoredCall", "AimedArrivalTime"); err != nil {
			return fmt.Errorf("visit %d: %w", i, err)
		}
	}
	return nil
}

func path(v any, keys ...string) (any, error) {
	for _, k := range keys {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("parent of %s is not an object", k)
		}
		if v, ok = m[k]; !ok {
			return nil, fmt.Errorf("missing %s", k)
		}
	}
	return v, nil
}
