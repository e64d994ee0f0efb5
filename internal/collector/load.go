package collector

import (
	"fmt"

	"codeberg.org/mutker/dwm-statusbar/internal/errors"
	"github.com/shirou/gopsutil/v3/load"
)

// To allow tests to mock out load.Avg.
var loadAvg = load.Avg

// LoadAverage returns the 1, 5 and 15 minute load averages as "%.2f %.2f %.2f".
// Unlike the other collectors a failure here is reported: a system without
// load averages is not a state the bar can degrade from.
func LoadAverage() (string, error) {
	avg, err := loadAvg()
	if err != nil {
		return "", errors.New().Wrap(errors.ErrLoadUnavailable, err)
	}
	if avg == nil {
		return "", errors.New().New(errors.ErrLoadUnavailable)
	}

	return fmt.Sprintf("%.2f %.2f %.2f", avg.Load1, avg.Load5, avg.Load15), nil
}
