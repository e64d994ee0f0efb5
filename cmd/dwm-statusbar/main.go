package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"codeberg.org/mutker/dwm-statusbar/internal/collector"
	"codeberg.org/mutker/dwm-statusbar/internal/config"
	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"codeberg.org/mutker/dwm-statusbar/internal/journal"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
	"codeberg.org/mutker/dwm-statusbar/internal/pid"
	"codeberg.org/mutker/dwm-statusbar/internal/sink"
	"codeberg.org/mutker/dwm-statusbar/internal/statusbar"
	"codeberg.org/mutker/dwm-statusbar/internal/supervisor"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

// Set at build time with -ldflags "-X main.version=... -X main.buildOS=... -X main.buildKernel=..."
var (
	version     = "dev"
	buildOS     = ""
	buildKernel = ""
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		printVersion(os.Stdout, filepath.Base(os.Args[0]))
		os.Exit(0)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := run(cfg); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.FatalWithCode(appErr).Msg("exiting")
		}
		logger.Fatal().Err(err).Msg("exiting")
	}
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := handleSignals(cancel)
	defer stop()

	if err := pid.Write(); err != nil {
		return err
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove pid file")
		}
	}()

	out, err := sink.Open(cfg.Console)
	if err != nil {
		return err
	}

	rec, err := journal.NewService(journal.Config{
		DBPath:  cfg.JournalPath,
		Enabled: cfg.Journal,
	}, logger.Default())
	if err != nil {
		logger.Warn().Err(err).Msg("journal unavailable, continuing without it")
		rec = nil
	}

	var spawner supervisor.Spawner = supervisor.NewDetachedSpawner(logger.Default())
	if cfg.Console {
		spawner = &supervisor.DryRunSpawner{Out: os.Stdout}
	}

	runner := statusbar.New(statusbar.Config{
		Collector: collector.New(collector.Sources{
			BatteryNow:    cfg.BatteryNow,
			BatteryFull:   cfg.BatteryFull,
			BatteryStatus: cfg.BatteryStatus,
			LinkPath:      cfg.LinkPath,
			MixerDevice:   cfg.MixerDevice,
			MixerControl:  cfg.MixerControl,
		}, logger.Default()),
		Supervisor: supervisor.New(supervisor.Config{
			Threshold: cfg.Threshold,
			Timeout:   cfg.Timeout,
			Command:   cfg.SuspendCommand,
		}, spawner, logger.Default()),
		Sink:     out,
		Journal:  rec,
		Interval: time.Duration(cfg.Interval) * time.Second,
		Command:  cfg.SuspendCommand,
		Logger:   logger.Default(),
	})

	logger.Info().
		Bool("console", cfg.Console).
		Int("threshold", cfg.Threshold).
		Int("timeout", cfg.Timeout).
		Msg("Status bar started")

	return serve(ctx, runner)
}

// serve runs until ctx is cancelled and always releases the runner, so a
// signal and a loop failure share one teardown path.
func serve(ctx context.Context, runner *statusbar.Runner) error {
	defer cleanup(runner)
	return runner.Run(ctx)
}

// handleSignals cancels on SIGINT or SIGTERM. The handler is installed
// before it returns; the returned func uninstalls it.
func handleSignals(cancel context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			logger.Info().Msg("Received termination signal.")
			cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func cleanup(runner *statusbar.Runner) {
	if err := runner.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to release display")
	}
	logger.Info().Msg("Exiting...")
}

func printVersion(w io.Writer, prog string) {
	osName, kernel := buildOS, buildKernel
	if osName == "" || kernel == "" {
		var uts unix.Utsname
		if err := unix.Uname(&uts); err == nil {
			if osName == "" {
				osName = unix.ByteSliceToString(uts.Sysname[:])
			}
			if kernel == "" {
				kernel = unix.ByteSliceToString(uts.Release[:])
			}
		}
	}

	fmt.Fprintf(w, "dwm-statusbar v%s [%s %s]\n\nUsage: %s [-v]\n\n", version, osName, kernel, prog)
}
