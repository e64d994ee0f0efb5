package journal

import (
	"context"
	"time"
)

// Recorder stores low battery events. Nothing is ever read back into the
// supervisor; the journal is for the operator only.
type Recorder interface {
	Record(ctx context.Context, event *Event) error
	Close() error
}

// Repository is the storage behind a Recorder
type Repository interface {
	Record(event *Event) error
	Close() error
}

// EventKind names what happened to a low battery episode
type EventKind string

const (
	EpisodeStarted EventKind = "episode_started"
	Escalated      EventKind = "escalated"
	EpisodeEnded   EventKind = "episode_ended"
)

// Event is one journal row
type Event struct {
	Timestamp      time.Time
	Kind           EventKind
	BatteryPercent float64
	BatteryState   string
	Command        string
}
