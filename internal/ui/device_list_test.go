package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ble-sentry.klederson.com/internal/tracker"
)

func TestRenderDeviceListExactHeight(t *testing.T) {
	devices := []tracker.Entry{
		{Addr: 0xAABBCCDDEEFF, Sources: tracker.SourceBLE, Count: 3, LastSeen: 100, Occupied: true},
		{Addr: 0x112233445566, Sources: tracker.SourceWiFi | tracker.SourceBLE, Count: 12, LastSeen: 200, Occupied: true, Suspicious: true},
	}

	for _, h := range []int{8, 15, 30} {
		out := RenderDeviceList(devices, nil, 50, h, 0)
		assert.Equalf(t, h, len(strings.Split(out, "\n")), "height %d", h)
	}
}

func TestRenderDeviceListEmpty(t *testing.T) {
	out := RenderDeviceList(nil, nil, 40, 10, 0)
	assert.Contains(t, out, "No devices")
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestRenderDeviceListAdvertisedName(t *testing.T) {
	devices := []tracker.Entry{
		{Addr: 0xAABBCCDDEEFF, Sources: tracker.SourceBLE, Count: 3, LastSeen: 100, Occupied: true},
	}
	names := map[tracker.Addr]string{0xAABBCCDDEEFF: "AirTag"}

	out := RenderDeviceList(devices, names, 60, 12, 0)
	assert.Contains(t, out, "AirTag")
}

func TestRenderDetailPanelName(t *testing.T) {
	e := &tracker.Entry{Addr: 0xAABBCCDDEEFF, Sources: tracker.SourceBLE, Count: 3, Occupied: true}

	named := RenderDetailPanel(e, "Galaxy Buds", 10, 40, 14)
	assert.Contains(t, named, "Galaxy Buds")

	anon := RenderDetailPanel(e, "", 10, 40, 14)
	assert.NotContains(t, anon, "name:")
}

func TestRenderStatusBarAlert(t *testing.T) {
	out := RenderStatusBar(80, true, 5, 1, 2, 3, true)
	assert.Contains(t, out, "ALERT")
	assert.Contains(t, out, "Suspicious: 1")

	quiet := RenderStatusBar(80, true, 5, 0, 2, 3, false)
	assert.NotContains(t, quiet, "ALERT")
}

func TestTruncRaw(t *testing.T) {
	assert.Equal(t, "abc", truncRaw("abcdef", 3))
	assert.Equal(t, "ab   ", truncRaw("ab", 5))
	assert.Equal(t, "abc", truncRaw("abc", 3))
}
