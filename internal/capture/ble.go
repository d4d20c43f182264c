package capture

import (
	"fmt"
	"sync/atomic"
	"time"

	"tinygo.org/x/bluetooth"

	"ble-sentry.klederson.com/internal/config"
	"ble-sentry.klederson.com/internal/tracker"
)

// BLEScanner delivers advertisement sightings. The underlying driver
// invokes the scan callback asynchronously, so sightings are forwarded
// through the sink rather than applied to the table here.
type BLEScanner struct {
	adapter *bluetooth.Adapter
	sink    Sink
	clock   *Clock
	running atomic.Bool

	lastEmit map[tracker.Addr]time.Time
}

// NewBLEScanner creates a scanner on the default adapter.
func NewBLEScanner(clock *Clock) *BLEScanner {
	return &BLEScanner{
		adapter:  bluetooth.DefaultAdapter,
		clock:    clock,
		lastEmit: make(map[tracker.Addr]time.Time),
	}
}

// Start begins BLE scanning in a goroutine. Each advertisement becomes
// a SightingMsg sent through the sink; a scan failure becomes a
// ScanErrorMsg.
func (s *BLEScanner) Start(sink Sink) error {
	s.sink = sink

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running.Store(true)
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running.Load() {
				return
			}

			addr, ok := tracker.ParseAddr(result.Address.String())
			if !ok {
				return // malformed address, drop the sighting
			}

			// Advertisers repeat several times per second; throttle per
			// address so one broadcast burst is one sighting.
			now := time.Now()
			if last, seen := s.lastEmit[addr]; seen && now.Sub(last) < config.BLEScanThrottle {
				return
			}
			s.lastEmit[addr] = now

			name := result.LocalName()
			if name == "" {
				if mfrs := result.ManufacturerData(); len(mfrs) > 0 {
					name = fallbackName(mfrs[0].CompanyID, addr)
				}
			}

			if s.sink != nil {
				s.sink.Send(SightingMsg{
					Addr:      addr,
					Source:    tracker.SourceBLE,
					Name:      name,
					Timestamp: s.clock.Now(),
				})
			}
		})
		if err != nil && s.running.Load() && s.sink != nil {
			s.sink.Send(ScanErrorMsg{Err: fmt.Errorf("ble scan: %w", err)})
		}
	}()

	return nil
}

// Stop halts the BLE scanner.
func (s *BLEScanner) Stop() {
	s.running.Store(false)
	_ = s.adapter.StopScan()
}

// fallbackName identifies an unnamed advertiser by its manufacturer
// data, suffixed with the last two address octets so multiple devices
// from one vendor stay distinguishable. Returns "" for unknown
// company IDs.
func fallbackName(companyID uint16, addr tracker.Addr) string {
	mfr := LookupManufacturer(companyID)
	if mfr == "" {
		return ""
	}
	s := addr.String()
	return mfr + " " + s[12:] // e.g. "Apple EE:FF"
}
