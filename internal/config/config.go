package config

import "time"

const (
	// Tracking table
	DefaultCapacity  = 128 // table slots, power of two
	DefaultThreshold = 10  // sightings before an address is flagged

	// Scanners
	DefaultScanIntervalMs = 10000                  // WiFi scan period
	BLEScanThrottle       = 100 * time.Millisecond // BLE callback throttle
	WiFiScanTimeout       = 15 * time.Second       // upper bound on one blocking scan

	// Display
	TargetFPS    = 30 // frames per second
	EventLogSize = 64 // recent outcome lines kept for the log panel

	// Alert indicator
	BlinkPeriodTicks = 15 // ALERT banner toggles every this many frames

	// App
	AppName    = "BLE-SENTRY"
	AppVersion = "1.0"
)

// Config holds the runtime options bound to CLI flags. All tracking
// state is volatile; nothing here is persisted.
type Config struct {
	Capacity     int    // table capacity, rounded up to a power of two
	Threshold    uint32 // suspicion threshold
	ScanInterval time.Duration
	Adapter      string // Bluetooth adapter, e.g. "hci0"
	Demo         bool   // fake devices, no hardware required
	PcapPath     string // replay an 802.11 capture instead of live WiFi
	Headless     bool   // no TUI, event log only
	LogFile      string // zap output; the TUI owns the terminal
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Capacity:     DefaultCapacity,
		Threshold:    DefaultThreshold,
		ScanInterval: DefaultScanIntervalMs * time.Millisecond,
		Adapter:      "hci0",
		LogFile:      "ble-sentry.log",
	}
}
