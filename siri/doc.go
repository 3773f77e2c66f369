// Package siri defines the SIRI (Service Interface for Real-time Information)
// StopMonitoring JSON shape published by MTA Bus Time.
//
// Only the path buspi reads is modelled:
//
//	Siri.ServiceDelivery.StopMonitoringDelivery[0]
//	    .MonitoredStopVisit[i].MonitoredVehicleJourney.MonitoredCall.AimedArrivalTime
//
// Containers are pointers so a decoder can tell an absent element from an
// empty one. The remaining journey fields are kept for logging and the
// arrivals table printed by the CLI.
package siri
