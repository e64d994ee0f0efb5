package collector

import (
	"context"
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monoOutput = `Simple mixer control 'Master',0
  Capabilities: pvolume pvolume-joined pswitch pswitch-joined
  Playback channels: Mono
  Limits: Playback 0 - 87
  Mono: Playback 44 [51%] [-32.25dB] [on]
`

const stereoMutedOutput = `Simple mixer control 'Master',0
  Capabilities: pvolume pswitch pswitch-joined
  Playback channels: Front Left - Front Right
  Limits: Playback 0 - 65536
  Mono:
  Front Left: Playback 32768 [50%] [off]
  Front Right: Playback 32768 [50%] [off]
`

func TestParseAmixer(t *testing.T) {
	vol, err := parseAmixer([]byte(monoOutput))
	require.NoError(t, err)
	assert.Equal(t, 50, vol.Percent)
	assert.False(t, vol.Muted)

	vol, err = parseAmixer([]byte(stereoMutedOutput))
	require.NoError(t, err)
	assert.Equal(t, 50, vol.Percent)
	assert.True(t, vol.Muted)
}

func TestParseAmixerInvalid(t *testing.T) {
	for _, out := range []string{
		"",
		"amixer: Unable to find simple control 'Master',0\n",
		"  Limits: Playback 0 - 0\n  Mono: Playback 0 [0%] [on]\n",
	} {
		_, err := parseAmixer([]byte(out))
		require.Error(t, err, out)
		assert.True(t, errors.HasCode(err, errors.ErrMixerQuery))
	}
}

func TestParseAmixerClamps(t *testing.T) {
	vol, err := parseAmixer([]byte("  Limits: Playback 0 - 50\n  Mono: Playback 80 [160%] [on]\n"))
	require.NoError(t, err)
	assert.Equal(t, 100, vol.Percent)
}

func TestMixerQuery(t *testing.T) {
	var gotArgs []string
	m := NewMixer("default", "Master")
	m.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotArgs = append([]string{name}, args...)
		return []byte(monoOutput), nil
	}

	vol, err := m.Query(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 50, vol.Percent)
	assert.Equal(t, []string{"amixer", "-D", "default", "sget", "Master"}, gotArgs)
}

func TestMixerQueryFailure(t *testing.T) {
	m := NewMixer("default", "Master")
	m.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, stderrors.New("exec: \"amixer\": executable file not found in $PATH")
	}

	_, err := m.Query(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrMixerQuery))
}
