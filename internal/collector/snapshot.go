package collector

// Snapshot holds every metric captured during one tick. A new Snapshot
// replaces the previous one; nothing is carried over.
type Snapshot struct {
	LoadAverage    string
	Link           string
	Volume         int
	Muted          bool
	BatteryPercent float64
	BatteryState   BatteryState
	Timestamp      string
}
