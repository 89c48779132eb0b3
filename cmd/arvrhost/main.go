// AR/VR Simulation Host
//
// This is the main entry point of the simulation host. It registers the
// scenes and devices of a scenario, selects the current scene and starts
// the simulation. Without flags it runs the built-in demonstration
// scenario: scene "scene1" with node "node1", device "device1" at
// 1024x768@60.
//
// Stdout carries only operator-facing lines ("Simulation started!");
// structured logs go to stderr unless configured otherwise.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nerrad567/arvr-host/internal/infrastructure/config"
	"github.com/nerrad567/arvr-host/internal/infrastructure/logging"
	"github.com/nerrad567/arvr-host/internal/scenario"
	"github.com/nerrad567/arvr-host/internal/simulator"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// options holds the command-line flags.
type options struct {
	ConfigPath   string
	ScenarioPath string
}

func main() {
	// Cancel on Ctrl+C / SIGTERM so a slow scenario load can be interrupted.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand creates the arvrhost command.
func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "arvrhost",
		Short: "AR/VR simulation host",
		Long: `Register scenes and devices, select the current scene and start the simulation.

Without flags the built-in demonstration scenario is used.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (env ARVRHOST_CONFIG)")
	cmd.Flags().StringVarP(&opts.ScenarioPath, "scenario", "s", "", "path to YAML scenario, overrides simulator.scenario_file")

	return cmd
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation
//   - opts: Command-line options
//   - stdout: Operator-facing output stream
//   - stderr: Default log stream
//
// Returns:
//   - error: nil on success, or error describing failure
func run(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	// Use default logger until config is loaded
	log := newLogger(config.Default().Logging, stdout, stderr)

	configPath := getConfigPath(opts)
	log.Debug("loading config", "path", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = newLogger(cfg.Logging, stdout, stderr).With("host", cfg.Simulator.ID)
	log.Info("starting simulation host",
		"version", version,
		"commit", commit,
		"config", configPath,
	)

	sc, source, err := loadScenario(opts, cfg)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	log.Info("scenario loaded", "source", source, "scenes", len(sc.Scenes), "devices", len(sc.Devices))

	sim := simulator.New()
	sim.SetOutput(stdout)
	sim.SetLogger(log.With("component", "simulator"))

	if err := sim.Apply(ctx, sc); err != nil {
		return err
	}

	sim.StartSimulation()
	return nil
}

// newLogger builds the logger for cfg. When run against the process streams
// the logging package selects the stream itself; otherwise cfg.Output picks
// between the injected writers.
func newLogger(cfg config.LoggingConfig, stdout, stderr io.Writer) *logging.Logger {
	if stdout == os.Stdout && stderr == os.Stderr {
		return logging.New(cfg, version)
	}
	w := stderr
	if strings.EqualFold(cfg.Output, "stdout") {
		w = stdout
	}
	return logging.NewWithWriter(cfg, version, w)
}

// getConfigPath returns the configuration file path.
// The --config flag wins over ARVRHOST_CONFIG; empty means defaults only.
func getConfigPath(opts *options) string {
	if opts.ConfigPath != "" {
		return opts.ConfigPath
	}
	return os.Getenv("ARVRHOST_CONFIG")
}

// loadScenario resolves the scenario to run and names its source.
// The --scenario flag wins over simulator.scenario_file; with neither the
// built-in demonstration scenario is used.
func loadScenario(opts *options, cfg *config.Config) (*scenario.Scenario, string, error) {
	path := opts.ScenarioPath
	if path == "" {
		path = cfg.Simulator.ScenarioFile
	}
	if path == "" {
		return scenario.Default(), "built-in", nil
	}

	sc, err := scenario.Load(path)
	if err != nil {
		return nil, path, err
	}
	return sc, path, nil
}
