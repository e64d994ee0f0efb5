package supervisor_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"codeberg.org/mutker/dwm-statusbar/internal/collector"
	"codeberg.org/mutker/dwm-statusbar/internal/logger"
	"codeberg.org/mutker/dwm-statusbar/internal/supervisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpawner struct {
	calls [][]string
	err   error
}

func (f *fakeSpawner) Spawn(argv []string) error {
	f.calls = append(f.calls, argv)
	return f.err
}

var suspendCmd = []string{"/bin/sh", "/usr/local/bin/suspend.sh"}

func newSupervisor(threshold, timeout int) (*supervisor.Supervisor, *fakeSpawner) {
	sp := &fakeSpawner{}
	return supervisor.New(supervisor.Config{
		Threshold: threshold,
		Timeout:   timeout,
		Command:   suspendCmd,
	}, sp, logger.Default()), sp
}

func TestQualifies(t *testing.T) {
	s, _ := newSupervisor(8, 40)

	assert.True(t, s.Qualifies(collector.Discharging, 7.9))
	assert.False(t, s.Qualifies(collector.Discharging, 8))
	assert.False(t, s.Qualifies(collector.Charging, 1))
	assert.False(t, s.Qualifies(collector.Full, 1))
	assert.False(t, s.Qualifies(collector.Unknown, 0))
}

func TestEscalatesExactlyOnceAtTimeout(t *testing.T) {
	s, sp := newSupervisor(8, 40)

	for tick := 1; tick <= 40; tick++ {
		d := s.Tick(collector.Discharging, 5)

		assert.Equal(t, supervisor.WarningLine, d.Line, "tick %d", tick)
		assert.Equal(t, 40-(tick-1), d.Remaining, "tick %d", tick)

		if tick < 40 {
			assert.False(t, d.Escalate, "tick %d", tick)
			assert.Equal(t, tick, s.Ticks())
			assert.Equal(t, supervisor.Counting, s.State())
		} else {
			assert.True(t, d.Escalate, "tick %d", tick)
		}
	}

	require.Len(t, sp.calls, 1)
	assert.Equal(t, suspendCmd, sp.calls[0])
	assert.Equal(t, 0, s.Ticks())
	assert.Equal(t, supervisor.Normal, s.State())
}

func TestScenarioChargingAfterEscalation(t *testing.T) {
	s, sp := newSupervisor(8, 40)

	for i := 0; i < 40; i++ {
		s.Tick(collector.Discharging, 5)
	}
	require.Len(t, sp.calls, 1)
	require.Equal(t, 0, s.Ticks())

	d := s.Tick(collector.Charging, 50)
	assert.Equal(t, supervisor.NormalLine, d.Line)
	assert.False(t, d.Escalate)
	assert.Equal(t, 0, s.Ticks())
	assert.Len(t, sp.calls, 1)
}

func TestReescalatesAfterRecount(t *testing.T) {
	s, sp := newSupervisor(8, 3)

	for i := 0; i < 6; i++ {
		s.Tick(collector.Discharging, 2)
	}

	assert.Len(t, sp.calls, 2)
}

func TestResetOnNonQualifyingTick(t *testing.T) {
	readings := []struct {
		name    string
		state   collector.BatteryState
		percent float64
	}{
		{"charging", collector.Charging, 3},
		{"full", collector.Full, 100},
		{"unknown", collector.Unknown, 0},
		{"above threshold", collector.Discharging, 60},
		{"at threshold", collector.Discharging, 8},
	}

	for _, r := range readings {
		t.Run(r.name, func(t *testing.T) {
			s, sp := newSupervisor(8, 40)
			for i := 0; i < 25; i++ {
				s.Tick(collector.Discharging, 5)
			}
			require.Equal(t, 25, s.Ticks())

			d := s.Tick(r.state, r.percent)
			assert.Equal(t, supervisor.NormalLine, d.Line)
			assert.Equal(t, 0, s.Ticks())
			assert.Equal(t, supervisor.Normal, s.State())
			assert.Empty(t, sp.calls)
		})
	}
}

func TestNoBatteryNeverEscalates(t *testing.T) {
	s, sp := newSupervisor(8, 2)

	for i := 0; i < 100; i++ {
		d := s.Tick(collector.Unknown, 0)
		assert.Equal(t, supervisor.NormalLine, d.Line)
	}
	assert.Empty(t, sp.calls)
}

func TestSpawnFailureDoesNotStopSupervisor(t *testing.T) {
	sp := &fakeSpawner{err: stderrors.New("exec format error")}
	s := supervisor.New(supervisor.Config{Threshold: 8, Timeout: 1, Command: suspendCmd}, sp, logger.Default())

	d := s.Tick(collector.Discharging, 1)
	assert.True(t, d.Escalate)
	assert.Equal(t, 0, s.Ticks())

	d = s.Tick(collector.Discharging, 1)
	assert.True(t, d.Escalate)
	assert.Len(t, sp.calls, 2)
}

func TestStepDoesNotSpawn(t *testing.T) {
	s, sp := newSupervisor(8, 1)

	d := s.Step(collector.Discharging, 1)
	assert.True(t, d.Escalate)
	assert.Empty(t, sp.calls)
}

func TestDryRunSpawner(t *testing.T) {
	var buf bytes.Buffer
	sp := &supervisor.DryRunSpawner{Out: &buf}

	require.NoError(t, sp.Spawn(suspendCmd))
	assert.Equal(t, "spawning command /bin/sh /usr/local/bin/suspend.sh\n", buf.String())

	assert.Error(t, sp.Spawn(nil))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "normal", supervisor.Normal.String())
	assert.Equal(t, "low_battery_counting", supervisor.Counting.String())
}
