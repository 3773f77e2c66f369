package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
user_settings:
  api_key: "abc123"
  stop_id: "400561"
feed:
  format: siri
schedule:
  interval: 30s
display:
  route_label: "B63:"
  color: [0, 255, 0]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvStopID, "")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.UserSettings.APIKey)
	assert.Equal(t, "400561", cfg.UserSettings.StopID)
	assert.Equal(t, 30*time.Second, cfg.Schedule.Interval)
	assert.Equal(t, "B63:", cfg.Display.RouteLabel)
	assert.Equal(t, uint8(255), cfg.Display.RGBA().G)
	assert.Equal(t, uint8(0), cfg.Display.RGBA().R)
}

func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, DefaultEndpointTemplate, cfg.Feed.EndpointTemplate)
	assert.Equal(t, 32, cfg.Display.Rows)
	assert.Equal(t, 64, cfg.Display.Cols)
	assert.Equal(t, "adafruit-hat", cfg.Display.HardwareMapping)
	assert.Equal(t, 3, cfg.Display.RenderRetries)
	assert.False(t, cfg.Schedule.AfterHours.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestLoad_SearchesDefaultPaths(t *testing.T) {
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleYAML), 0644))
	require.NoError(t, os.Chdir(dir))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "400561", cfg.UserSettings.StopID)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("invalid: yaml: content: [[["))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestParse_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown feed format", "feed:\n  format: xml\n"},
		{"zero interval", "schedule:\n  interval: 0s\n"},
		{"png sink without path", "display:\n  sink: png\n"},
		{"unknown sink", "display:\n  sink: hdmi\n"},
		{"after hours without window", "schedule:\n  after_hours:\n    enabled: true\n    start: \"\"\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfig))
		})
	}
}

func TestParse_MissingUserSettingsIsDeferred(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvStopID, "")

	cfg, err := Parse([]byte("display:\n  route_label: \"Q32:\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Q32:", cfg.Display.RouteLabel)

	err = cfg.UserSettings.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfig))
}

func TestParse_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")
	t.Setenv(EnvStopID, "308209")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.UserSettings.APIKey)
	assert.Equal(t, "308209", cfg.UserSettings.StopID)
	assert.NoError(t, cfg.UserSettings.Validate())
}
