package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/arvr-host/internal/infrastructure/config"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestRun_Demonstration verifies the flagless run prints exactly one line.
func TestRun_Demonstration(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	t.Setenv("ARVRHOST_SCENARIO_FILE", "")
	t.Setenv("ARVRHOST_LOG_OUTPUT", "")

	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Simulation started!\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"simulation started"`)
	assert.Contains(t, stderr.String(), `"current_scene":"scene1"`)
	assert.Contains(t, stderr.String(), `"source":"built-in"`)
}

func TestRun_ScenarioFromConfig(t *testing.T) {
	t.Setenv("ARVRHOST_SCENARIO_FILE", "")
	t.Setenv("ARVRHOST_LOG_FORMAT", "")
	t.Setenv("ARVRHOST_LOG_OUTPUT", "")
	scenarioPath := writeFile(t, "lab.yaml", `
current_scene: lab
scenes:
  - id: lab
    nodes: [{id: bench}]
devices:
  - id: hmd
    capabilities: {resolution: {width: 1920, height: 1080}, framerate: 90}
`)
	configPath := writeFile(t, "config.yaml", `
simulator:
  id: test-rig
  scenario_file: "`+scenarioPath+`"
logging:
  level: info
  format: text
`)

	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{ConfigPath: configPath}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Simulation started!\n", stdout.String())
	assert.Contains(t, stderr.String(), "host=test-rig")
	assert.Contains(t, stderr.String(), "current_scene=lab")
}

func TestRun_ScenarioFlagOverridesConfig(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	t.Setenv("ARVRHOST_SCENARIO_FILE", "/nonexistent/from-env.yaml")
	scenarioPath := writeFile(t, "flag.yaml", "current_scene: f\nscenes: [{id: f}]\n")

	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{ScenarioPath: scenarioPath}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `"current_scene":"f"`)
}

func TestRun_InvalidConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{ConfigPath: "/nonexistent/path/config.yaml"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidScenario(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	scenarioPath := writeFile(t, "bad.yaml", "devices: [{id: d}]\n")

	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{ScenarioPath: scenarioPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading scenario")
	assert.Empty(t, stdout.String(), "nothing starts on a bad scenario")
}

func TestRun_Cancelled(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	t.Setenv("ARVRHOST_SCENARIO_FILE", "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, &options{}, &stdout, &stderr)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "/from/env.yaml")

	assert.Equal(t, "/from/flag.yaml", getConfigPath(&options{ConfigPath: "/from/flag.yaml"}))
	assert.Equal(t, "/from/env.yaml", getConfigPath(&options{}))
}

func TestNewLogger_SelectsInjectedWriter(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantStdout bool
	}{
		{name: "stderr", output: "stderr"},
		{name: "stdout", output: "stdout", wantStdout: true},
		{name: "unset defaults to stderr", output: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cfg := config.LoggingConfig{Level: "info", Format: "json", Output: tt.output}

			newLogger(cfg, &stdout, &stderr).Info("hello")

			if tt.wantStdout {
				assert.Contains(t, stdout.String(), `"msg":"hello"`)
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), `"msg":"hello"`)
				assert.Empty(t, stdout.String())
			}
		})
	}
}

func TestNewLogger_ProcessStreams(t *testing.T) {
	log := newLogger(config.Default().Logging, os.Stdout, os.Stderr)
	assert.NotNil(t, log)
}

func TestRootCommand(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	t.Setenv("ARVRHOST_SCENARIO_FILE", "")

	cmd := newRootCommand()
	assert.Equal(t, "arvrhost", cmd.Use)

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	scenarioFlag := cmd.Flags().Lookup("scenario")
	require.NotNil(t, scenarioFlag)
	assert.Equal(t, "s", scenarioFlag.Shorthand)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.ExecuteContext(testContext(t)))
	assert.Equal(t, "Simulation started!\n", stdout.String())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unexpected"})

	assert.Error(t, cmd.Execute())
}

// TestExampleConfigs keeps the shipped example files loadable.
func TestExampleConfigs(t *testing.T) {
	t.Setenv("ARVRHOST_CONFIG", "")
	t.Setenv("ARVRHOST_SCENARIO_FILE", "")

	var stdout, stderr bytes.Buffer
	err := run(testContext(t), &options{
		ConfigPath:   filepath.Join("..", "..", "configs", "config.yaml"),
		ScenarioPath: filepath.Join("..", "..", "configs", "scenarios", "showroom.yaml"),
	}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "Simulation started!\n", stdout.String())
}
