package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/buspi"
	"github.com/theoremus-urban-solutions/buspi/config"
	"github.com/theoremus-urban-solutions/buspi/internal"
	"github.com/theoremus-urban-solutions/buspi/scheduler"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "buspi",
		Short:         "Shows the next bus arrivals for one stop on an LED matrix",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoop(cmd, opts)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.yml (default: config.yml or config.yaml in the working directory)")

	cmd.AddCommand(newRunCmd(opts), newOnceCmd(opts))
	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll the feed and refresh the display until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoop(cmd, opts)
		},
	}
}

func runLoop(cmd *cobra.Command, opts *rootOptions) error {
	env, err := setup(opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	s, err := env.scheduler(buspi.NewFetcher(env.cfg.Feed))
	if err != nil {
		env.logger.Error("failed to build scheduler", zap.Error(err))
		return err
	}

	env.logger.Info("starting",
		zap.String("format", env.cfg.Feed.Format),
		zap.String("sink", env.cfg.Display.Sink),
		zap.Duration("interval", env.cfg.Schedule.Interval),
	)
	if err := s.Run(cmd.Context()); err != nil {
		env.logger.Error("display loop stopped", zap.Error(err))
		return err
	}
	env.logger.Info("shutdown complete")
	return nil
}

// environment is what every command needs after loading the config
type environment struct {
	cfg     config.AppConfig
	loadErr error
	logger  *zap.Logger
	out     io.Writer
}

// setup loads the config and builds the logger. A config that cannot be
// loaded is replaced by the defaults; the error is kept and reported on the
// display once the scheduler starts.
func setup(opts *rootOptions, out io.Writer) (*environment, error) {
	cfg, loadErr := config.Load(opts.configPath)
	if loadErr != nil {
		cfg = config.Default()
	}

	logger, err := internal.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to init logging: %w", err)
	}
	if loadErr != nil {
		logger.Error("failed to load config, using defaults", zap.Error(loadErr))
	}
	return &environment{cfg: cfg, loadErr: loadErr, logger: logger, out: out}, nil
}

func (e *environment) scheduler(f scheduler.Fetcher, extra ...func(*scheduler.Options)) (*scheduler.Scheduler, error) {
	sink, err := buspi.NewSink(e.cfg.Display, e.out)
	if err != nil {
		if !errors.Is(err, config.ErrConfig) {
			return nil, err
		}
		e.logger.Error("falling back to terminal display", zap.Error(err))
		sink, _ = buspi.NewSink(config.DisplayConfig{Sink: buspi.SinkTerminal}, e.out)
	}
	return buspi.NewScheduler(e.cfg, e.loadErr, f, sink, e.logger, extra...)
}
