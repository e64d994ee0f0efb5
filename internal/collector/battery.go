package collector

import (
	"unicode"

	"codeberg.org/mutker/dwm-statusbar/internal/sysfs"
)

// BatteryState is the charge direction reported by the power supply
type BatteryState int

const (
	Charging BatteryState = iota
	Discharging
	Unknown
	Full
)

// same order as the BatteryState constants
var batterySigns = [...]rune{'+', '-', '?', '='}

var batteryNames = [...]string{"charging", "discharging", "unknown", "full"}

// Sign is the single character shown before the charge percentage
func (s BatteryState) Sign() rune {
	if s < 0 || int(s) >= len(batterySigns) {
		return batterySigns[Unknown]
	}
	return batterySigns[s]
}

func (s BatteryState) String() string {
	if s < 0 || int(s) >= len(batteryNames) {
		return batteryNames[Unknown]
	}
	return batteryNames[s]
}

// ParseBatteryState maps the first character of a power_supply status
// ("Charging", "Discharging", "Idle", "Full", ...) onto a BatteryState.
// Idle is reported as Full.
func ParseBatteryState(code byte) BatteryState {
	switch unicode.ToLower(rune(code)) {
	case 'c':
		return Charging
	case 'd':
		return Discharging
	case 'i', 'f':
		return Full
	default:
		return Unknown
	}
}

// BatteryPercent returns now/full as a percentage clamped to 100. Sensors
// routinely report now > full on a fresh battery. A zero or negative full
// charge yields 0.
func BatteryPercent(now, full int) float64 {
	if full <= 0 {
		return 0
	}

	pct := float64(now) / float64(full) * 100
	if pct < 0 {
		return 0
	}

	return min(pct, 100)
}

// Battery reads charge and state from power_supply files
type Battery struct {
	NowPath    string
	FullPath   string
	StatusPath string
}

// Percent returns the current charge percentage
func (b Battery) Percent() float64 {
	return BatteryPercent(sysfs.ReadInt(b.NowPath), sysfs.ReadInt(b.FullPath))
}

// State returns the charge direction, Unknown when the status file is absent
func (b Battery) State() BatteryState {
	code, ok := sysfs.ReadByte(b.StatusPath)
	if !ok {
		return Unknown
	}

	return ParseBatteryState(code)
}
