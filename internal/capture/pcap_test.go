package capture

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTransmitterDot11(t *testing.T) {
	tx := net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}

	dot11 := &layers.Dot11{
		Type:     layers.Dot11TypeMgmtBeacon,
		Address1: net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		Address2: tx,
		Address3: tx,
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, dot11))

	// gopacket's Dot11 SerializeTo never emits the trailing 4-byte FCS
	// that its DecodeFromBytes requires, so append it here.
	raw := binary.LittleEndian.AppendUint32(buf.Bytes(), crc32.ChecksumIEEE(buf.Bytes()))

	addr, ok := ExtractTransmitter(raw, layers.LinkTypeIEEE802_11)
	require.True(t, ok)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", addr.String())
}

func TestExtractTransmitterEthernetFallback(t *testing.T) {
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
		DstMAC:       net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		EthernetType: layers.EthernetTypeIPv4,
	}

	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
		eth, gopacket.Payload([]byte{0x45, 0x00, 0x00, 0x14})))

	addr, ok := ExtractTransmitter(buf.Bytes(), layers.LinkTypeEthernet)
	require.True(t, ok)
	assert.Equal(t, "11:22:33:44:55:66", addr.String())
}

func TestExtractTransmitterRejectsGarbage(t *testing.T) {
	_, ok := ExtractTransmitter([]byte{0x01, 0x02, 0x03}, layers.LinkTypeIEEE802_11)
	assert.False(t, ok)
}

// buildEthFrame serializes a minimal Ethernet frame from srcMAC.
func buildEthFrame(t *testing.T, srcMAC net.HardwareAddr) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       net.HardwareAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		EthernetType: layers.EthernetTypeIPv4,
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
		eth, gopacket.Payload([]byte{0x45, 0x00, 0x00, 0x14})))
	return buf.Bytes()
}

func TestPcapReplayerReportsTruncatedCapture(t *testing.T) {
	frame := buildEthFrame(t, net.HardwareAddr{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})

	var capBuf bytes.Buffer
	w := pcapgo.NewWriter(&capBuf)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: len(frame),
		Length:        len(frame),
	}
	require.NoError(t, w.WritePacket(ci, frame))
	require.NoError(t, w.WritePacket(ci, frame))

	// Chop into the second record's payload so its header promises
	// more bytes than the file holds.
	raw := capBuf.Bytes()
	path := filepath.Join(t.TempDir(), "truncated.pcap")
	require.NoError(t, os.WriteFile(path, raw[:len(raw)-10], 0o644))

	sink := newTestSink()
	r := NewPcapReplayer(path, NewClock())
	require.NoError(t, r.Start(sink))
	defer r.Stop()

	got := sink.waitFor(t, 2*time.Second, func(m tea.Msg) bool {
		_, ok := m.(ScanErrorMsg)
		return ok
	})
	errMsg := got.(ScanErrorMsg)
	require.Error(t, errMsg.Err)
	assert.Contains(t, errMsg.Err.Error(), "pcap replay")
}

func TestPcapReplayerCleanEOFIsSilent(t *testing.T) {
	frame := buildEthFrame(t, net.HardwareAddr{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})

	var capBuf bytes.Buffer
	w := pcapgo.NewWriter(&capBuf)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: len(frame),
		Length:        len(frame),
	}
	require.NoError(t, w.WritePacket(ci, frame))

	path := filepath.Join(t.TempDir(), "clean.pcap")
	require.NoError(t, os.WriteFile(path, capBuf.Bytes(), 0o644))

	sink := newTestSink()
	r := NewPcapReplayer(path, NewClock())
	require.NoError(t, r.Start(sink))
	defer r.Stop()

	sighting := sink.waitFor(t, 2*time.Second, func(m tea.Msg) bool {
		_, ok := m.(SightingMsg)
		return ok
	})
	assert.Equal(t, "11:22:33:44:55:66", sighting.(SightingMsg).Addr.String())

	// The single-record capture ends cleanly, so no error follows.
	select {
	case m := <-sink.msgs:
		_, isErr := m.(ScanErrorMsg)
		assert.False(t, isErr, "clean EOF should not surface an error")
	case <-time.After(200 * time.Millisecond):
	}
}
