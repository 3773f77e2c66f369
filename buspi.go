// Package buspi assembles the arrival display from its configuration.
//
// The commands in cmd/buspi call NewScheduler with a loaded AppConfig and
// the error, if any, from loading it. A configuration error is not fatal: it
// surfaces as the "yikes!" message when the endpoint is built.
package buspi

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/buspi/arrivals"
	"github.com/theoremus-urban-solutions/buspi/config"
	"github.com/theoremus-urban-solutions/buspi/display"
	"github.com/theoremus-urban-solutions/buspi/feed"
	"github.com/theoremus-urban-solutions/buspi/scheduler"
)

// Sink names accepted by display.sink
const (
	SinkTerminal = "terminal"
	SinkPNG      = "png"
)

// NewSink returns the configured display sink. The terminal sink writes to w.
func NewSink(cfg config.DisplayConfig, w io.Writer) (display.Sink, error) {
	switch cfg.Sink {
	case "", SinkTerminal:
		return display.NewTerminal(w), nil
	case SinkPNG:
		if cfg.PNGPath == "" {
			return nil, fmt.Errorf("%w: display.png_path is required for the png sink", config.ErrConfig)
		}
		return display.NewFramebuffer(cfg.PNGPath), nil
	default:
		return nil, fmt.Errorf("%w: unknown display sink %q", config.ErrConfig, cfg.Sink)
	}
}

// NewFetcher returns the HTTP feed client with the configured timeout
func NewFetcher(cfg config.FeedConfig) *feed.Client {
	return feed.NewClient(cfg.Timeout)
}

// EndpointBuilder returns the startup endpoint constructor. A non-nil loadErr
// is reported before the user settings are even looked at.
func EndpointBuilder(cfg config.AppConfig, loadErr error) scheduler.EndpointFunc {
	return func() (feed.Endpoint, error) {
		if loadErr != nil {
			return feed.Endpoint{}, loadErr
		}
		if err := cfg.UserSettings.Validate(); err != nil {
			return feed.Endpoint{}, err
		}
		ep, err := feed.NewEndpoint(cfg.Feed.EndpointTemplate, cfg.UserSettings.APIKey, cfg.UserSettings.StopID)
		if err != nil {
			return feed.Endpoint{}, fmt.Errorf("%w: %v", config.ErrConfig, err)
		}
		return ep, nil
	}
}

// AfterHoursWindow converts the schedule's quiet window. It returns nil when
// the window is disabled.
func AfterHoursWindow(cfg config.AfterHoursConfig) (*scheduler.Window, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	start, err := arrivals.ParseClock(cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: after_hours.start: %v", config.ErrConfig, err)
	}
	end, err := arrivals.ParseClock(cfg.End)
	if err != nil {
		return nil, fmt.Errorf("%w: after_hours.end: %v", config.ErrConfig, err)
	}
	return &scheduler.Window{Start: start, End: end}, nil
}

// DisplayOptions maps the display section to sink options
func DisplayOptions(cfg config.DisplayConfig) display.Options {
	return display.Options{
		Rows:            cfg.Rows,
		Cols:            cfg.Cols,
		HardwareMapping: cfg.HardwareMapping,
		GPIOSlowdown:    cfg.GPIOSlowdown,
	}
}

// NewScheduler wires a Scheduler from cfg. Options in extra are applied last
// and may replace the clock, sleep or backoff.
func NewScheduler(cfg config.AppConfig, loadErr error, fetcher scheduler.Fetcher, sink display.Sink, logger *zap.Logger, extra ...func(*scheduler.Options)) (*scheduler.Scheduler, error) {
	parser, err := arrivals.NewParser(cfg.Feed.Format, cfg.UserSettings.StopID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrConfig, err)
	}

	window, err := AfterHoursWindow(cfg.Schedule.AfterHours)
	if err != nil {
		logger.Warn("after-hours window disabled", zap.Error(err))
		window = nil
	}

	opts := scheduler.Options{
		Fetcher:       fetcher,
		Parser:        parser,
		Sink:          sink,
		Endpoint:      EndpointBuilder(cfg, loadErr),
		Display:       DisplayOptions(cfg.Display),
		Layout:        display.DefaultLayout(cfg.Display.RouteLabel, cfg.Display.RGBA()),
		Interval:      cfg.Schedule.Interval,
		AfterHours:    window,
		RenderRetries: cfg.Display.RenderRetries,
		Logger:        logger,
	}
	for _, fn := range extra {
		fn(&opts)
	}
	return scheduler.New(opts)
}
