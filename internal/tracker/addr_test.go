package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrRoundTrip(t *testing.T) {
	a := AddrFromBytes([6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF})
	assert.Equal(t, Addr(0xAABBCCDDEEFF), a)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", a.String())

	parsed, ok := ParseAddr("AA:BB:CC:DD:EE:FF")
	require.True(t, ok)
	assert.Equal(t, a, parsed)

	lower, ok := ParseAddr("aa:bb:cc:dd:ee:ff")
	require.True(t, ok)
	assert.Equal(t, a, lower)
}

func TestAddrHighBitsUnused(t *testing.T) {
	a := AddrFromBytes([6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	assert.Zero(t, uint64(a)>>48)
}

func TestParseAddrRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"AA:BB:CC:DD:EE",
		"AA:BB:CC:DD:EE:FF:00",
		"AA-BB-CC-DD-EE-FF",
		"AA:BB:CC:DD:EE:GG",
		"AABBCCDDEEFF00000",
	} {
		_, ok := ParseAddr(s)
		assert.Falsef(t, ok, "expected parse failure for %q", s)
	}
}

func TestAddrZeroPadding(t *testing.T) {
	a := AddrFromBytes([6]byte{0x00, 0x01, 0x02, 0x0A, 0x0B, 0x0C})
	assert.Equal(t, "00:01:02:0A:0B:0C", a.String())
}

func TestOUI(t *testing.T) {
	a := AddrFromBytes([6]byte{0x00, 0x1A, 0x7D, 0x11, 0x22, 0x33})
	assert.Equal(t, uint32(0x001A7D), a.OUI())
}

func TestFoldMixesBothHalves(t *testing.T) {
	// Addresses differing only in the high half must still hash apart.
	a := AddrFromBytes([6]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00})
	b := AddrFromBytes([6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00})
	assert.NotEqual(t, a.fold(), b.fold())
}

func TestSourceStrings(t *testing.T) {
	assert.Equal(t, "WiFi", SourceWiFi.String())
	assert.Equal(t, "BLE", SourceBLE.String())
	assert.Equal(t, "WiFi+BLE", (SourceWiFi | SourceBLE).String())
}
