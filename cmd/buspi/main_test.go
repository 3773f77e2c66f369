package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const savedFeed = `{"Siri":{"ServiceDelivery":{"StopMonitoringDelivery":[{"MonitoredStopVisit":[
	{"MonitoredVehicleJourney":{"PublishedLineName":["M72"],"DestinationName":["WEST SIDE"],
	 "MonitoredCall":{"AimedArrivalTime":"2026-10-18Tnot-a-time"}}}
]}]}}}`

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := `user_settings:
  api_key: test-key
  stop_id: "400561"
logging:
  level: debug
  output_paths: ["` + filepath.ToSlash(filepath.Join(dir, "app.log")) + `"]
`
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOnce_FromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)
	feedPath := filepath.Join(dir, "feed.json")
	require.NoError(t, os.WriteFile(feedPath, []byte(savedFeed), 0o600))

	out, err := execute(t, "--config", cfgPath, "once", "--from-file", feedPath)
	require.NoError(t, err)

	assert.Contains(t, out, "M72:")
	assert.Contains(t, out, "UNKNOWN")
	assert.Contains(t, out, "WEST SIDE")
	assert.True(t, strings.Contains(out, "Line") && strings.Contains(out, "Shown"), "table header missing:\n%s", out)

	logs, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"state":"rendering"`)
	assert.NotContains(t, string(logs), "test-key")
}

func TestOnce_MissingFeedFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	out, err := execute(t, "--config", cfgPath, "once", "--from-file", filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "yikes!")
	assert.Contains(t, out, "fetch failed")
}

func TestOnce_RejectsArgs(t *testing.T) {
	_, err := execute(t, "once", "extra")
	assert.Error(t, err)
}
