package sink

import (
	"fmt"
	"io"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
)

// ConsoleSink prints each line, for running without a display
type ConsoleSink struct {
	out io.Writer
}

func NewConsole(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Render(line string) error {
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		return errors.New().Wrap(errors.ErrRenderFailed, err)
	}
	return nil
}

func (*ConsoleSink) Close() error {
	return nil
}
