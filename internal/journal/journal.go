// Package journal optionally records low battery episodes and suspend
// escalations to SQLite.
package journal

import (
	"context"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
)

type service struct {
	repo Repository
}

type noopRecorder struct{}

// NewService returns a Recorder, or a no-op Recorder when the journal is disabled
func NewService(cfg Config, log logger.Logger) (Recorder, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if !cfg.Enabled {
		log.Debug().Msg("Journal disabled, using no-op recorder")
		return &noopRecorder{}, nil
	}

	repo, err := NewRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, event *Event) error {
	errFactory := errors.New()

	if event == nil || event.Kind == "" {
		return errFactory.New(ErrInvalidEvent)
	}

	select {
	case <-ctx.Done():
		return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
	default:
		return s.repo.Record(event)
	}
}

func (s *service) Close() error {
	return s.repo.Close()
}

func (*noopRecorder) Record(context.Context, *Event) error {
	return nil
}

func (*noopRecorder) Close() error {
	return nil
}
