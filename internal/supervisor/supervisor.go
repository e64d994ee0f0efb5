// Package supervisor implements the low battery escalation state machine.
//
// A tick qualifies when the battery is discharging below the threshold.
// Qualifying ticks are counted; when the count reaches the timeout the
// suspend command is spawned once and the count starts over. Any
// non-qualifying tick resets the count.
package supervisor

import (
	"codeberg.org/mutker/dwm-statusbar/internal/collector"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
)

// LineKind selects which status line a tick renders
type LineKind int

const (
	NormalLine LineKind = iota
	WarningLine
)

// State is the resting state of the supervisor between ticks
type State int

const (
	Normal State = iota
	Counting
)

func (s State) String() string {
	if s == Counting {
		return "low_battery_counting"
	}
	return "normal"
}

// Decision is the outcome of a single tick
type Decision struct {
	Line      LineKind
	Remaining int
	Escalate  bool
}

// Config holds the escalation parameters
type Config struct {
	Threshold int
	Timeout   int
	Command   []string
}

type Supervisor struct {
	cfg     Config
	spawner Spawner
	logger  logger.Logger
	ticks   int
}

// New returns a Supervisor in the Normal state
func New(cfg Config, spawner Spawner, log logger.Logger) *Supervisor {
	return &Supervisor{
		cfg:     cfg,
		spawner: spawner,
		logger:  log,
	}
}

// Qualifies reports whether a reading counts toward escalation. An Unknown
// state never qualifies, so machines without a battery never escalate.
func (s *Supervisor) Qualifies(state collector.BatteryState, percent float64) bool {
	return state == collector.Discharging && percent < float64(s.cfg.Threshold)
}

// Step advances the counter for one reading without performing any action.
// Remaining is computed from the counter as it was before this tick.
func (s *Supervisor) Step(state collector.BatteryState, percent float64) Decision {
	if !s.Qualifies(state, percent) {
		s.ticks = 0
		return Decision{Line: NormalLine}
	}

	d := Decision{
		Line:      WarningLine,
		Remaining: s.cfg.Timeout - s.ticks,
	}

	s.ticks++
	if s.ticks >= s.cfg.Timeout {
		d.Escalate = true
		s.ticks = 0
	}

	return d
}

// Tick is Step followed by the escalation action. The suspend command is
// spawned detached; its outcome is never observed.
func (s *Supervisor) Tick(state collector.BatteryState, percent float64) Decision {
	d := s.Step(state, percent)
	if !d.Escalate {
		return d
	}

	s.logger.Warn().
		Float64("battery_percent", percent).
		Strs("command", s.cfg.Command).
		Msg("Battery low for too long, suspending")

	if err := s.spawner.Spawn(s.cfg.Command); err != nil {
		s.logger.Error().Err(err).Msg("failed to spawn suspend command")
	}

	return d
}

// Ticks returns the number of consecutive qualifying ticks counted so far
func (s *Supervisor) Ticks() int {
	return s.ticks
}

// State returns Counting while a low battery episode is being counted
func (s *Supervisor) State() State {
	if s.ticks > 0 {
		return Counting
	}
	return Normal
}
