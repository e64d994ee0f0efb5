// Package statusbar runs the poll, supervise, format and render cycle.
package statusbar

import (
	"context"
	"strings"
	"time"

	"codeberg.org/mutker/dwm-statusbar/internal/collector"
	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"codeberg.org/mutker/dwm-statusbar/internal/journal"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
	"codeberg.org/mutker/dwm-statusbar/internal/sink"
	"codeberg.org/mutker/dwm-statusbar/internal/status"
	"codeberg.org/mutker/dwm-statusbar/internal/supervisor"
)

// Collector produces the metrics for a tick
type Collector interface {
	Collect(ctx context.Context) (collector.Snapshot, error)
}

// Runner owns the render sink for the lifetime of the loop. It is driven
// from a single goroutine and needs no locking.
type Runner struct {
	collector  Collector
	supervisor *supervisor.Supervisor
	sink       sink.Sink
	journal    journal.Recorder
	interval   time.Duration
	command    string
	logger     logger.Logger
	lastLine   supervisor.LineKind
}

// Config wires the Runner's collaborators
type Config struct {
	Collector  Collector
	Supervisor *supervisor.Supervisor
	Sink       sink.Sink
	Journal    journal.Recorder
	Interval   time.Duration
	Command    []string
	Logger     logger.Logger
}

func New(cfg Config) *Runner {
	rec := cfg.Journal
	if rec == nil {
		rec, _ = journal.NewService(journal.Config{}, cfg.Logger)
	}

	return &Runner{
		collector:  cfg.Collector,
		supervisor: cfg.Supervisor,
		sink:       cfg.Sink,
		journal:    rec,
		interval:   cfg.Interval,
		command:    strings.Join(cfg.Command, " "),
		logger:     cfg.Logger,
	}
}

// Run ticks every interval until ctx is done. It returns nil on
// cancellation and an error only when a tick cannot collect at all.
func (r *Runner) Run(ctx context.Context) error {
	errFactory := errors.New()

	if r.interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, r.interval)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.Tick(ctx); err != nil {
				return errFactory.Wrap(errors.ErrMainLoop, err)
			}
		}
	}
}

// Tick performs one collect, supervise, format and render pass and
// returns the rendered line.
func (r *Runner) Tick(ctx context.Context) (string, error) {
	snap, err := r.collector.Collect(ctx)
	if err != nil {
		return "", err
	}

	d := r.supervisor.Tick(snap.BatteryState, snap.BatteryPercent)

	var line string
	switch d.Line {
	case supervisor.WarningLine:
		line = status.Warning(d.Remaining)
	default:
		line = status.Normal(snap)
	}

	if err := r.sink.Render(line); err != nil {
		r.logger.Error().Err(err).Msg("failed to render status")
	}

	r.journalTransition(ctx, r.lastLine, d, snap)
	r.lastLine = d.Line

	r.logger.Debug().
		Str("line", line).
		Str("state", r.supervisor.State().String()).
		Int("low_battery_ticks", r.supervisor.Ticks()).
		Msg("")

	return line, nil
}

// journalTransition records episode boundaries from the line shown on the
// previous tick. The counter resets after an escalation, but the episode
// only ends once the warning line goes away.
func (r *Runner) journalTransition(ctx context.Context, prev supervisor.LineKind, d supervisor.Decision, snap collector.Snapshot) {
	var kinds []journal.EventKind
	if prev == supervisor.NormalLine && d.Line == supervisor.WarningLine {
		kinds = append(kinds, journal.EpisodeStarted)
	}
	if d.Escalate {
		kinds = append(kinds, journal.Escalated)
	}
	if prev == supervisor.WarningLine && d.Line == supervisor.NormalLine {
		kinds = append(kinds, journal.EpisodeEnded)
	}

	for _, kind := range kinds {
		event := &journal.Event{
			Timestamp:      time.Now(),
			Kind:           kind,
			BatteryPercent: snap.BatteryPercent,
			BatteryState:   snap.BatteryState.String(),
		}
		if kind == journal.Escalated {
			event.Command = r.command
		}

		if err := r.journal.Record(ctx, event); err != nil {
			r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("failed to journal event")
		}
	}
}

// Close releases the sink and the journal
func (r *Runner) Close() error {
	var first error
	if err := r.sink.Close(); err != nil {
		first = err
	}
	if err := r.journal.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
