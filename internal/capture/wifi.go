package capture

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"sync/atomic"
	"time"

	"ble-sentry.klederson.com/internal/config"
	"ble-sentry.klederson.com/internal/tracker"
)

// WiFiScanner sights nearby access points by BSSID.
// Prefers nmcli (no root needed), falls back to iw (needs root).
// Each scan is a bounded blocking call run from the scanner's own
// loop, never from the BLE callback path.
type WiFiScanner struct {
	sink     Sink
	clock    *Clock
	iface    string
	running  atomic.Bool
	cancel   context.CancelFunc
	interval time.Duration
	useNmcli bool
}

// NewWiFiScanner creates a WiFi scanner. If iface is empty, auto-detects.
func NewWiFiScanner(iface string, interval time.Duration, clock *Clock) *WiFiScanner {
	useNmcli := nmcliAvailable()
	if iface == "" && !useNmcli {
		iface = detectWiFiInterface()
	}
	return &WiFiScanner{
		clock:    clock,
		iface:    iface,
		interval: interval,
		useNmcli: useNmcli,
	}
}

// Start begins periodic WiFi scans in a goroutine.
func (s *WiFiScanner) Start(sink Sink) error {
	s.sink = sink
	s.running.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *WiFiScanner) loop(ctx context.Context) {
	for {
		if !s.running.Load() {
			return
		}
		s.scan()
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

func (s *WiFiScanner) scan() {
	var addrs []tracker.Addr
	if s.useNmcli {
		addrs = s.scanNmcli()
	} else {
		addrs = s.scanIW()
	}
	ts := s.clock.Now()
	for _, addr := range addrs {
		if s.sink != nil {
			s.sink.Send(SightingMsg{
				Addr:      addr,
				Source:    tracker.SourceWiFi,
				Timestamp: ts,
			})
		}
	}
}

// scanNmcli uses nmcli (works without root).
func (s *WiFiScanner) scanNmcli() []tracker.Addr {
	ctx, cancel := context.WithTimeout(context.Background(), config.WiFiScanTimeout)
	defer cancel()

	// Use cached results from NetworkManager (it rescans automatically).
	cmd := exec.CommandContext(ctx, "nmcli", "-t", "-f", "BSSID", "dev", "wifi", "list")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	return parseNmcliBSSIDs(string(out))
}

// parseNmcliBSSIDs parses nmcli terse output: one BSSID per line, with
// literal colons escaped as \:
func parseNmcliBSSIDs(output string) []tracker.Addr {
	var addrs []tracker.Addr

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		bssid := strings.ReplaceAll(line, `\:`, ":")
		if addr, ok := tracker.ParseAddr(bssid); ok {
			addrs = append(addrs, addr)
		}
	}

	return addrs
}

// scanIW uses iw (requires root).
func (s *WiFiScanner) scanIW() []tracker.Addr {
	ctx, cancel := context.WithTimeout(context.Background(), config.WiFiScanTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "iw", "dev", s.iface, "scan")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	return parseIWBSSIDs(string(out))
}

// parseIWBSSIDs extracts BSS addresses from `iw dev <iface> scan` output.
// BSS blocks start with lines like "BSS aa:bb:cc:dd:ee:ff(on wlan0)".
func parseIWBSSIDs(output string) []tracker.Addr {
	var addrs []tracker.Addr

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "BSS ") {
			continue
		}
		mac := strings.TrimPrefix(line, "BSS ")
		if idx := strings.IndexByte(mac, '('); idx >= 0 {
			mac = mac[:idx]
		}
		mac = strings.TrimSpace(mac)
		if addr, ok := tracker.ParseAddr(mac); ok {
			addrs = append(addrs, addr)
		}
	}

	return addrs
}

// Stop halts the WiFi scanner.
func (s *WiFiScanner) Stop() {
	s.running.Store(false)
	if s.cancel != nil {
		s.cancel()
	}
}

// WiFiScannerAvailable checks if nmcli or iw is available on the system.
func WiFiScannerAvailable() bool {
	return nmcliAvailable() || iwAvailable()
}

func nmcliAvailable() bool {
	_, err := exec.LookPath("nmcli")
	return err == nil
}

func iwAvailable() bool {
	_, err := exec.LookPath("iw")
	return err == nil
}

// detectWiFiInterface finds the first wireless interface via `iw dev`.
func detectWiFiInterface() string {
	out, err := exec.Command("iw", "dev").Output()
	if err != nil {
		return "wlan0"
	}
	scanner := bufio.NewScanner(strings.NewReader(string(out)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Interface ") {
			return strings.TrimPrefix(line, "Interface ")
		}
	}
	return "wlan0"
}
