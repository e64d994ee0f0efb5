package supervisor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
)

// Spawner launches an external command without waiting for it
type Spawner interface {
	Spawn(argv []string) error
}

// DetachedSpawner starts commands in a new session. Spawn returns as soon
// as the process has started; its exit status is discarded.
type DetachedSpawner struct {
	logger logger.Logger
}

func NewDetachedSpawner(log logger.Logger) *DetachedSpawner {
	return &DetachedSpawner{logger: log}
}

func (d *DetachedSpawner) Spawn(argv []string) error {
	errFactory := errors.New()

	if len(argv) == 0 || argv[0] == "" {
		return errFactory.New(errors.ErrInvalidCommand)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		return errFactory.Wrap(errors.ErrSpawnFailed, err)
	}

	d.logger.Debug().Int("pid", cmd.Process.Pid).Msg("Spawned detached command")

	// reap only
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// DryRunSpawner prints the command instead of running it. Used in
// console mode.
type DryRunSpawner struct {
	Out io.Writer
}

func (d *DryRunSpawner) Spawn(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return errors.New().New(errors.ErrInvalidCommand)
	}

	_, err := fmt.Fprintf(d.Out, "spawning command %s\n", strings.Join(argv, " "))
	return err
}
