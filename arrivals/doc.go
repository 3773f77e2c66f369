// Package arrivals turns a raw feed body into an ordered list of arrival buckets.
//
// Two parsers implement Parser:
//   - SIRIParser: MTA Bus Time SIRI StopMonitoring JSON (default)
//   - GTFSRTParser: GTFS-Realtime TripUpdates protobuf, filtered to one stop
//
// Both compare wall-clock time-of-day only. Dates and offsets are ignored, so
// an arrival just after midnight seen just before midnight classifies as
// Delayed. That matches the deployed display and is covered by tests.
package arrivals
