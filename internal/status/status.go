// Package status renders a Snapshot into the single line shown in the bar.
package status

import (
	"fmt"
	"unicode/utf8"

	"codeberg.org/mutker/dwm-statusbar/internal/collector"
)

// MaxLen bounds a rendered line in bytes
const MaxLen = 255

// MutedGlyph replaces the volume bar while the mixer is muted
const MutedGlyph = "M"

var volumeGlyphs = [...]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// VolumeBar picks one of eight glyphs for a 0..100 volume
func VolumeBar(volume int, muted bool) string {
	if muted {
		return MutedGlyph
	}

	idx := volume * (len(volumeGlyphs) - 1) / 100
	if idx < 0 {
		idx = 0
	}
	if idx >= len(volumeGlyphs) {
		idx = len(volumeGlyphs) - 1
	}

	return volumeGlyphs[idx]
}

// Normal renders the full metrics line
func Normal(s collector.Snapshot) string {
	return Truncate(fmt.Sprintf("%s | vol:%s | %s | %c%.1f%% | %s",
		s.LoadAverage,
		VolumeBar(s.Volume, s.Muted),
		s.Link,
		s.BatteryState.Sign(),
		min(s.BatteryPercent, 100),
		s.Timestamp,
	), MaxLen)
}

// Warning renders the low battery countdown
func Warning(remaining int) string {
	return Truncate(fmt.Sprintf("LOW BATTERY: suspending after %d ", remaining), MaxLen)
}

// Truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}

	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
