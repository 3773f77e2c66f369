package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfig marks every failure to produce a usable configuration
var ErrConfig = errors.New("config error")

// DefaultPaths are searched in order when no explicit path is given
var DefaultPaths = []string{"config.yml", "config.yaml"}

// Environment overrides for the user settings
const (
	EnvAPIKey = "BUSPI_API_KEY"
	EnvStopID = "BUSPI_STOP_ID"
)

// DefaultEndpointTemplate is the MTA Bus Time SIRI stop-monitoring endpoint
const DefaultEndpointTemplate = "https://bustime.mta.info/api/siri/stop-monitoring.json?key={api_key}&OperatorRef=MTA&MonitoringRef={stop_id}"

// Default returns a configuration with everything but the user settings filled in.
// The display values match a 32x64 matrix on an Adafruit HAT.
func Default() AppConfig {
	return AppConfig{
		Feed: FeedConfig{
			Format:           "siri",
			EndpointTemplate: DefaultEndpointTemplate,
		},
		Display: DisplayConfig{
			Sink:            "terminal",
			RouteLabel:      "M72:",
			Rows:            32,
			Cols:            64,
			HardwareMapping: "adafruit-hat",
			GPIOSlowdown:    3,
			Color:           [3]uint8{255, 255, 0},
			RenderRetries:   3,
		},
		Schedule: ScheduleConfig{
			Interval: 60 * time.Second,
			AfterHours: AfterHoursConfig{
				Start: "00:15:00",
				End:   "05:30:00",
			},
		},
		Logging: LoggingConfig{
			Level:       "info",
			OutputPaths: []string{"stdout", "app.log"},
		},
	}
}

// Load reads, overlays and validates the configuration.
// An empty path searches DefaultPaths. Values absent from the file keep their defaults.
func Load(path string) (AppConfig, error) {
	// .env is optional
	_ = godotenv.Load()

	data, err := readFirst(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of Default, applies environment overrides and validates.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("%w: invalid yaml: %v", ErrConfig, err)
	}
	applyEnv(&cfg)
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the struct tags of every section except UserSettings.
// Missing user settings surface later, when the endpoint is built.
func Validate(cfg AppConfig) error {
	v := validator.New()
	sections := []any{cfg.Feed, cfg.Display, cfg.Schedule, cfg.Schedule.AfterHours, cfg.Logging}
	for _, s := range sections {
		if err := v.Struct(s); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}

// Validate reports a missing api_key or stop_id
func (u UserSettings) Validate() error {
	if err := validator.New().Struct(u); err != nil {
		return fmt.Errorf("%w: user_settings: %v", ErrConfig, err)
	}
	return nil
}

func readFirst(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	var data []byte
	var err error
	for _, p := range DefaultPaths {
		data, err = os.ReadFile(p)
		if err == nil {
			return data, nil
		}
	}
	return nil, err
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.UserSettings.APIKey = v
	}
	if v := os.Getenv(EnvStopID); v != "" {
		cfg.UserSettings.StopID = v
	}
}
