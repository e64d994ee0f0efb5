package pid

import (
	"os"
	"os/exec"
	"strconv"
	"testing"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempDir(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	orig := dir
	dir = func() string { return tmp }
	t.Cleanup(func() { dir = orig })
}

func TestWriteAndRemove(t *testing.T) {
	useTempDir(t)

	require.NoError(t, Write())

	content, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(content))

	require.NoError(t, Remove())
	_, err = os.Stat(Path())
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	require.NoError(t, Remove())
}

func TestWriteOverwritesOwnPID(t *testing.T) {
	useTempDir(t)

	require.NoError(t, Write())
	require.NoError(t, Write())
}

func TestWriteOverwritesStaleFile(t *testing.T) {
	useTempDir(t)

	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())
	dead := cmd.Process.Pid

	require.NoError(t, os.WriteFile(Path(), []byte(strconv.Itoa(dead)), 0o600))
	require.NoError(t, Write())

	require.NoError(t, os.WriteFile(Path(), []byte("garbage"), 0o600))
	require.NoError(t, Write())
}

func TestWriteRefusesLiveProcess(t *testing.T) {
	useTempDir(t)

	cmd := exec.Command("sleep", "10")
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	require.NoError(t, os.WriteFile(Path(), []byte(strconv.Itoa(cmd.Process.Pid)), 0o600))

	err := Write()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAlreadyRunning))
}
