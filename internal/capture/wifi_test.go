package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ble-sentry.klederson.com/internal/tracker"
)

func TestParseNmcliBSSIDs(t *testing.T) {
	output := "AA\\:BB\\:CC\\:DD\\:EE\\:FF\n" +
		"11\\:22\\:33\\:44\\:55\\:66\n" +
		"\n" +
		"not-a-mac\n"

	addrs := parseNmcliBSSIDs(output)
	require.Len(t, addrs, 2)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", addrs[0].String())
	assert.Equal(t, "11:22:33:44:55:66", addrs[1].String())
}

func TestParseNmcliBSSIDsEmpty(t *testing.T) {
	assert.Empty(t, parseNmcliBSSIDs(""))
}

func TestParseIWBSSIDs(t *testing.T) {
	output := `BSS aa:bb:cc:dd:ee:ff(on wlan0) -- associated
	freq: 2437
	signal: -52.00 dBm
	SSID: HomeNetwork
BSS 11:22:33:44:55:66(on wlan0)
	freq: 5180
	signal: -70.00 dBm
	SSID: Other
`

	addrs := parseIWBSSIDs(output)
	require.Len(t, addrs, 2)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", addrs[0].String())
	assert.Equal(t, "11:22:33:44:55:66", addrs[1].String())
}

func TestParseIWBSSIDsIgnoresMalformed(t *testing.T) {
	output := "BSS garbage(on wlan0)\nBSS \nsome other line\n"
	assert.Empty(t, parseIWBSSIDs(output))
}

func TestLookupVendor(t *testing.T) {
	apple := tracker.AddrFromBytes([6]byte{0x00, 0x03, 0x93, 0x12, 0x34, 0x56})
	assert.Equal(t, "Apple", LookupVendor(apple))

	unknown := tracker.AddrFromBytes([6]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01})
	assert.Equal(t, "", LookupVendor(unknown))
}
