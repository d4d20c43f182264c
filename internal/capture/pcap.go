package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"ble-sentry.klederson.com/internal/tracker"
)

// pcapReplayDelay paces replayed frames so counts accumulate the way a
// live capture would rather than all at once.
const pcapReplayDelay = 10 * time.Millisecond

// PcapReplayer reads an 802.11 capture file and replays transmitter
// addresses as WiFi sightings. Works without radio hardware, which
// also makes it the easiest way to exercise the tracker against
// recorded stalking scenarios.
type PcapReplayer struct {
	sink   Sink
	clock  *Clock
	path   string
	cancel context.CancelFunc
}

// NewPcapReplayer creates a replayer for the given capture file.
func NewPcapReplayer(path string, clock *Clock) *PcapReplayer {
	return &PcapReplayer{clock: clock, path: path}
}

// Start opens the capture and begins replaying it in a goroutine.
func (r *PcapReplayer) Start(sink Sink) error {
	r.sink = sink

	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("failed to open capture %s: %w", r.path, err)
	}
	reader, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to read capture %s: %w", r.path, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	go r.loop(ctx, f, reader)
	return nil
}

func (r *PcapReplayer) loop(ctx context.Context, f *os.File, reader *pcapgo.Reader) {
	defer f.Close()

	linkType := reader.LinkType()
	for {
		data, _, err := reader.ReadPacketData()
		if errors.Is(err, io.EOF) {
			return // clean end of capture
		}
		if err != nil {
			// Truncated or corrupt record: the replay cannot continue,
			// but the operator should know why it went quiet.
			if r.sink != nil {
				r.sink.Send(ScanErrorMsg{Err: fmt.Errorf("pcap replay %s: %w", r.path, err)})
			}
			return
		}

		if addr, ok := ExtractTransmitter(data, linkType); ok && r.sink != nil {
			r.sink.Send(SightingMsg{
				Addr:      addr,
				Source:    tracker.SourceWiFi,
				Timestamp: r.clock.Now(),
			})
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(pcapReplayDelay):
		}
	}
}

// Stop halts the replay.
func (r *PcapReplayer) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// ExtractTransmitter pulls the transmitting address out of one captured
// frame. 802.11 frames (raw or radiotap-wrapped) yield Address2; an
// Ethernet capture falls back to the source MAC. Frames without a
// usable address are dropped, never passed along malformed.
func ExtractTransmitter(data []byte, linkType layers.LinkType) (tracker.Addr, bool) {
	pkt := gopacket.NewPacket(data, linkType, gopacket.Lazy)

	if l := pkt.Layer(layers.LayerTypeDot11); l != nil {
		dot11 := l.(*layers.Dot11)
		return hardwareAddr(dot11.Address2)
	}
	if l := pkt.Layer(layers.LayerTypeEthernet); l != nil {
		eth := l.(*layers.Ethernet)
		return hardwareAddr(eth.SrcMAC)
	}
	return 0, false
}

func hardwareAddr(mac net.HardwareAddr) (tracker.Addr, bool) {
	if len(mac) != 6 {
		return 0, false
	}
	var b [6]byte
	copy(b[:], mac)
	if b == [6]byte{} {
		return 0, false
	}
	return tracker.AddrFromBytes(b), true
}
