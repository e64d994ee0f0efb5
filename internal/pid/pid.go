// Package pid keeps a second status bar from starting while one is
// already running; both would overwrite the same root window name.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
)

const (
	pidFile = "dwm-statusbar.pid"
)

// To allow tests to relocate the PID file.
var dir = os.TempDir

// Path returns the location of the PID file
func Path() string {
	return filepath.Join(dir(), pidFile)
}

// Write writes the current process ID to the PID file. It fails with
// ErrAlreadyRunning if the file names another live process; a stale or
// unreadable file is overwritten.
func Write() error {
	errFactory := errors.New()
	path := Path()

	if running, ok := readPID(path); ok && running != os.Getpid() && alive(running) {
		return errFactory.WithData(errors.ErrAlreadyRunning, running)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove removes the PID file.
func Remove() error {
	errFactory := errors.New()
	path := Path()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func readPID(path string) (int, bool) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(bytes)))
	if err != nil || pid <= 0 {
		return 0, false
	}

	return pid, true
}

func alive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	return process.Signal(syscall.Signal(0)) == nil
}
