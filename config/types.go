package config

import (
	"image/color"
	"time"
)

// UserSettings holds the per-installation values needed to build the endpoint
type UserSettings struct {
	APIKey string `yaml:"api_key" validate:"required"`
	StopID string `yaml:"stop_id" validate:"required"`
}

// FeedConfig describes where and how the arrival feed is polled
type FeedConfig struct {
	Format           string        `yaml:"format" validate:"oneof=siri gtfsrt"`
	EndpointTemplate string        `yaml:"endpoint_template" validate:"required"`
	Timeout          time.Duration `yaml:"timeout" validate:"gte=0"` // 0 keeps the transport default
}

// DisplayConfig contains sink selection, matrix geometry and layout
type DisplayConfig struct {
	Sink            string   `yaml:"sink" validate:"oneof=terminal png"`
	PNGPath         string   `yaml:"png_path" validate:"required_if=Sink png"`
	RouteLabel      string   `yaml:"route_label"`
	Rows            int      `yaml:"rows" validate:"gt=0"`
	Cols            int      `yaml:"cols" validate:"gt=0"`
	HardwareMapping string   `yaml:"hardware_mapping"`
	GPIOSlowdown    int      `yaml:"gpio_slowdown" validate:"gte=0"`
	Color           [3]uint8 `yaml:"color"`
	RenderRetries   int      `yaml:"render_retries" validate:"gte=0"`
}

// RGBA returns the configured text color
func (d DisplayConfig) RGBA() color.RGBA {
	return color.RGBA{R: d.Color[0], G: d.Color[1], B: d.Color[2], A: 0xff}
}

// AfterHoursConfig is the optional quiet window during which polling is skipped
type AfterHoursConfig struct {
	Enabled bool   `yaml:"enabled"`
	Start   string `yaml:"start" validate:"required_if=Enabled true"` // HH:MM:SS
	End     string `yaml:"end" validate:"required_if=Enabled true"`
}

// ScheduleConfig contains polling cadence settings
type ScheduleConfig struct {
	Interval   time.Duration    `yaml:"interval" validate:"gt=0"`
	AfterHours AfterHoursConfig `yaml:"after_hours"`
}

// LoggingConfig is passed to the zap logger builder
type LoggingConfig struct {
	Level       string   `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool     `yaml:"development"`
	OutputPaths []string `yaml:"output_paths"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	UserSettings UserSettings   `yaml:"user_settings"`
	Feed         FeedConfig     `yaml:"feed"`
	Display      DisplayConfig  `yaml:"display"`
	Schedule     ScheduleConfig `yaml:"schedule"`
	Logging      LoggingConfig  `yaml:"logging"`
}
