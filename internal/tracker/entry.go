package tracker

// Source identifies which capture channel produced a sighting.
// Entries accumulate sources as a bitmask.
type Source uint8

const (
	SourceWiFi Source = 1 << iota
	SourceBLE
)

func (s Source) String() string {
	switch s {
	case SourceWiFi:
		return "WiFi"
	case SourceBLE:
		return "BLE"
	case SourceWiFi | SourceBLE:
		return "WiFi+BLE"
	default:
		return "none"
	}
}

// Symbol returns the single-character list marker for this source mask.
func (s Source) Symbol() string {
	switch s {
	case SourceWiFi:
		return "W"
	case SourceBLE:
		return "*"
	default:
		return "+"
	}
}

// Entry is one tracked device. Entries live in the fixed table slots;
// there is no per-entry allocation.
type Entry struct {
	Addr       Addr
	Sources    Source
	Count      uint32 // saturates at MaxUint32, never wraps
	FirstSeen  uint32 // ms since start, set once at creation
	LastSeen   uint32 // ms since start
	Occupied   bool
	Suspicious bool // one-way until Reset
}
