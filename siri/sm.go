package siri

// StopMonitoringDelivery lists the vehicles approaching the monitored stop
type StopMonitoringDelivery struct {
	ResponseTimestamp  string                `json:"ResponseTimestamp"`
	ValidUntil         string                `json:"ValidUntil,omitempty"`
	MonitoredStopVisit *[]MonitoredStopVisit `json:"MonitoredStopVisit"`
}

// MonitoredStopVisit represents one vehicle's visit to the stop
type MonitoredStopVisit struct {
	RecordedAtTime          string                   `json:"RecordedAtTime"`
	MonitoredVehicleJourney *MonitoredVehicleJourney `json:"MonitoredVehicleJourney"`
}

// MonitoredVehicleJourney contains details about a monitored vehicle journey
type MonitoredVehicleJourney struct {
	LineRef           string         `json:"LineRef"`
	DirectionRef      string         `json:"DirectionRef,omitempty"`
	PublishedLineName Text           `json:"PublishedLineName,omitempty"`
	OperatorRef       string         `json:"OperatorRef,omitempty"`
	DestinationName   Text           `json:"DestinationName,omitempty"`
	Monitored         bool           `json:"Monitored"`
	VehicleRef        string         `json:"VehicleRef,omitempty"`
	MonitoredCall     *MonitoredCall `json:"MonitoredCall"`
}

// MonitoredCall represents the call at the monitored stop
type MonitoredCall struct {
	StopPointRef          string  `json:"StopPointRef"`
	StopPointName         Text    `json:"StopPointName,omitempty"`
	AimedArrivalTime      *string `json:"AimedArrivalTime"`
	ExpectedArrivalTime   string  `json:"ExpectedArrivalTime,omitempty"`
	AimedDepartureTime    string  `json:"AimedDepartureTime,omitempty"`
	ExpectedDepartureTime string  `json:"ExpectedDepartureTime,omitempty"`
}
