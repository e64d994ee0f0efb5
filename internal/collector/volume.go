package collector

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
)

var (
	limitsRx = regexp.MustCompile(`Limits:\s+Playback\s+(-?\d+)\s+-\s+(-?\d+)`)
	levelRx  = regexp.MustCompile(`^\s*[^:]+:\s+Playback\s+(-?\d+)\s+\[`)
)

// Volume is a mixer reading
type Volume struct {
	Percent int
	Muted   bool
}

type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Mixer queries an ALSA simple mixer control through amixer
type Mixer struct {
	Device  string
	Control string

	run commandRunner
}

// NewMixer returns a Mixer for control on device
func NewMixer(device, control string) *Mixer {
	return &Mixer{Device: device, Control: control, run: runCommand}
}

// Query returns the playback level of the control as a percentage of its
// maximum.
func (m *Mixer) Query(ctx context.Context) (Volume, error) {
	errFactory := errors.New()

	run := m.run
	if run == nil {
		run = runCommand
	}

	out, err := run(ctx, "amixer", "-D", m.Device, "sget", m.Control)
	if err != nil {
		return Volume{}, errFactory.Wrap(errors.ErrMixerQuery, err)
	}

	return parseAmixer(out)
}

// parseAmixer reads the output of "amixer sget", e.g.
//
//	Simple mixer control 'Master',0
//	  Limits: Playback 0 - 87
//	  Mono: Playback 44 [51%] [-32.25dB] [on]
func parseAmixer(out []byte) (Volume, error) {
	errFactory := errors.New()

	var (
		maxLevel, level    int
		haveMax, haveLevel bool
		muted              bool
	)

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()

		if m := limitsRx.FindStringSubmatch(line); m != nil && !haveMax {
			maxLevel, _ = strconv.Atoi(m[2])
			haveMax = true
			continue
		}

		if m := levelRx.FindStringSubmatch(line); m != nil && !haveLevel {
			level, _ = strconv.Atoi(m[1])
			haveLevel = true
			muted = strings.Contains(line, "[off]")
		}
	}

	if !haveMax || !haveLevel {
		return Volume{}, errFactory.WithMessage(errors.ErrMixerQuery, "unrecognized amixer output")
	}
	if maxLevel <= 0 {
		return Volume{}, errFactory.WithData(errors.ErrMixerQuery, "zero playback range")
	}

	pct := int(float64(level) / float64(maxLevel) * 100)

	return Volume{Percent: clamp(pct, 0, 100), Muted: muted}, nil
}

func clamp(value, minValue, maxValue int) int {
	if value < minValue {
		return minValue
	}

	if value > maxValue {
		return maxValue
	}

	return value
}
