// Package collector gathers the metrics shown in the status line.
package collector

import (
	"context"
	"time"

	"codeberg.org/mutker/dwm-statusbar/internal/logger"
	"codeberg.org/mutker/dwm-statusbar/internal/sysfs"
)

// TimeFormat renders as "Mon Jan 02 15:04:05"
const TimeFormat = "Mon Jan 02 15:04:05"

// To allow tests to pin the clock.
var now = time.Now

// Sources names where each metric is read from
type Sources struct {
	BatteryNow    string
	BatteryFull   string
	BatteryStatus string
	LinkPath      string
	MixerDevice   string
	MixerControl  string
}

// Collector produces one Snapshot per tick
type Collector struct {
	battery Battery
	link    string
	mixer   *Mixer
	logger  logger.Logger
}

// New returns a Collector reading from src
func New(src Sources, log logger.Logger) *Collector {
	return &Collector{
		battery: Battery{
			NowPath:    src.BatteryNow,
			FullPath:   src.BatteryFull,
			StatusPath: src.BatteryStatus,
		},
		link:   src.LinkPath,
		mixer:  NewMixer(src.MixerDevice, src.MixerControl),
		logger: log,
	}
}

// Collect reads all sources. Only a load average failure is returned;
// every other source degrades to its zero value.
func (c *Collector) Collect(ctx context.Context) (Snapshot, error) {
	la, err := LoadAverage()
	if err != nil {
		return Snapshot{}, err
	}

	link, ok := sysfs.ReadStringOK(c.link, sysfs.BufSize)
	if !ok {
		c.logger.Debug().Str("path", c.link).Msg("link source unavailable")
	}

	vol, err := c.mixer.Query(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("volume unavailable")
		vol = Volume{}
	}

	return Snapshot{
		LoadAverage:    la,
		Link:           link,
		Volume:         vol.Percent,
		Muted:          vol.Muted,
		BatteryPercent: c.battery.Percent(),
		BatteryState:   c.battery.State(),
		Timestamp:      now().Format(TimeFormat),
	}, nil
}
