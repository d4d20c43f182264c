package capture

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"ble-sentry.klederson.com/internal/tracker"
)

type demoDevice struct {
	addr       tracker.Addr
	source     tracker.Source
	name       string
	emitChance float64 // probability of a sighting per tick
	active     bool
}

// DemoScanner generates fake sightings for demo mode. A few devices
// are deliberately persistent so the suspicion threshold trips within
// the first minute; the rest drift in and out like real passers-by.
type DemoScanner struct {
	sink    Sink
	clock   *Clock
	devices []demoDevice
	running atomic.Bool
	cancel  context.CancelFunc
}

var demoNames = []string{"AirTag", "Galaxy Buds", "Tile Mate", "Pixel Watch"}

// NewDemoScanner creates a demo scanner with a random population.
func NewDemoScanner(clock *Clock) *DemoScanner {
	var devices []demoDevice

	// Persistent followers: always active, sighted nearly every tick.
	for i := 0; i < 2; i++ {
		devices = append(devices, demoDevice{
			addr:       randomAddr(),
			source:     tracker.SourceBLE,
			name:       demoNames[rand.Intn(len(demoNames))],
			emitChance: 0.9,
			active:     true,
		})
	}

	// A fixed access point seen on every WiFi pass.
	devices = append(devices, demoDevice{
		addr:       randomAddr(),
		source:     tracker.SourceWiFi,
		emitChance: 0.5,
		active:     true,
	})

	// Transient devices: occasional sightings, appear and disappear.
	n := 8 + rand.Intn(6)
	for i := 0; i < n; i++ {
		src := tracker.SourceBLE
		if rand.Intn(3) == 0 {
			src = tracker.SourceWiFi
		}
		var name string
		if src == tracker.SourceBLE && rand.Intn(3) == 0 {
			name = demoNames[rand.Intn(len(demoNames))]
		}
		devices = append(devices, demoDevice{
			addr:       randomAddr(),
			source:     src,
			name:       name,
			emitChance: 0.05 + rand.Float64()*0.1,
			active:     rand.Intn(2) == 0,
		})
	}

	return &DemoScanner{clock: clock, devices: devices}
}

// Start begins the demo scanner.
func (s *DemoScanner) Start(sink Sink) error {
	s.sink = sink
	s.running.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *DemoScanner) loop(ctx context.Context) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.running.Load() {
				return
			}
			s.emit()
		}
	}
}

func (s *DemoScanner) emit() {
	ts := s.clock.Now()
	for i := range s.devices {
		d := &s.devices[i]

		// Transients randomly appear and disappear.
		if rand.Float64() < 0.01 {
			d.active = !d.active
		}
		if !d.active || rand.Float64() > d.emitChance {
			continue
		}

		if s.sink != nil {
			s.sink.Send(SightingMsg{
				Addr:      d.addr,
				Source:    d.source,
				Name:      d.name,
				Timestamp: ts,
			})
		}
	}
}

// Stop halts the demo scanner.
func (s *DemoScanner) Stop() {
	s.running.Store(false)
	if s.cancel != nil {
		s.cancel()
	}
}

func randomAddr() tracker.Addr {
	var b [6]byte
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	return tracker.AddrFromBytes(b)
}
