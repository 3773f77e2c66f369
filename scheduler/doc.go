// Package scheduler runs the poll and render loop.
//
// A Scheduler owns one display sink and one endpoint. Each cycle fetches the
// feed, parses it relative to the injected clock, composes a message and
// renders it, then sleeps for the configured interval. Feed and parse failures
// become messages on the display. Only a sink that keeps failing after the
// render retries stops the loop.
package scheduler
