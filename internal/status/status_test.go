package status_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"codeberg.org/mutker/dwm-statusbar/internal/collector"
	"codeberg.org/mutker/dwm-statusbar/internal/status"
	"github.com/stretchr/testify/assert"
)

func TestVolumeBar(t *testing.T) {
	tests := []struct {
		volume int
		want   string
	}{
		{0, "▁"},
		{14, "▁"},
		{15, "▂"},
		{50, "▄"},
		{99, "▇"},
		{100, "█"},
		{-5, "▁"},
		{250, "█"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, status.VolumeBar(tt.volume, false), "volume %d", tt.volume)
	}

	assert.Equal(t, status.MutedGlyph, status.VolumeBar(80, true))
}

func TestNormal(t *testing.T) {
	line := status.Normal(collector.Snapshot{
		LoadAverage:    "0.12 0.34 0.56",
		Link:           "up",
		Volume:         50,
		BatteryPercent: 50,
		BatteryState:   collector.Charging,
		Timestamp:      "Fri Mar 06 09:05:07",
	})

	assert.Equal(t, "0.12 0.34 0.56 | vol:▄ | up | +50.0% | Fri Mar 06 09:05:07", line)
}

func TestNormalSigns(t *testing.T) {
	tests := map[collector.BatteryState]string{
		collector.Charging:    "| +",
		collector.Discharging: "| -",
		collector.Unknown:     "| ?",
		collector.Full:        "| =",
	}

	for state, want := range tests {
		line := status.Normal(collector.Snapshot{BatteryState: state, BatteryPercent: 42})
		assert.Contains(t, line, want+"42.0%", state.String())
	}
}

func TestNormalClampsPercent(t *testing.T) {
	line := status.Normal(collector.Snapshot{BatteryState: collector.Full, BatteryPercent: 137.5})
	assert.Contains(t, line, "=100.0%")
}

func TestNormalEmptyLink(t *testing.T) {
	line := status.Normal(collector.Snapshot{
		LoadAverage:  "0.00 0.00 0.00",
		BatteryState: collector.Unknown,
		Timestamp:    "now",
	})
	assert.Equal(t, "0.00 0.00 0.00 | vol:▁ |  | ?0.0% | now", line)
}

func TestWarning(t *testing.T) {
	assert.Equal(t, "LOW BATTERY: suspending after 40 ", status.Warning(40))
	assert.Equal(t, "LOW BATTERY: suspending after 0 ", status.Warning(0))
}

func TestNormalBounded(t *testing.T) {
	line := status.Normal(collector.Snapshot{
		LoadAverage: "0.00 0.00 0.00",
		Link:        strings.Repeat("█", 200),
	})

	assert.LessOrEqual(t, len(line), status.MaxLen)
	assert.True(t, utf8.ValidString(line))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", status.Truncate("abc", 10))
	assert.Equal(t, "ab", status.Truncate("abc", 2))
	assert.Equal(t, "", status.Truncate("abc", 0))
	// "█" is three bytes; cutting inside it drops the whole rune
	assert.Equal(t, "a", status.Truncate("a█", 3))
	assert.Equal(t, "a█", status.Truncate("a█", 4))
}
