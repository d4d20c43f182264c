package ui

import (
	"fmt"
	"strings"

	"ble-sentry.klederson.com/internal/capture"
	"ble-sentry.klederson.com/internal/tracker"
)

// RenderDetailPanel renders details for the cursor-selected device, or
// a placeholder when nothing is selected. name is the advertised name
// when one was captured, "" otherwise.
func RenderDetailPanel(e *tracker.Entry, name string, threshold uint32, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	title := StylePanelTitle.Render("DETAIL")
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))

	var lines []string
	lines = append(lines, title, separator)

	if e == nil {
		lines = append(lines, "", StyleHelp.Render(" No device selected"))
	} else {
		vendor := capture.LookupVendor(e.Addr)
		if vendor == "" {
			vendor = "unknown"
		}

		lines = append(lines, " "+StyleDeviceAddr.Render(e.Addr.String()))
		if name != "" {
			lines = append(lines, " "+StyleDeviceVendor.Render("name:   "+name))
		}
		lines = append(lines,
			" "+StyleDeviceVendor.Render("vendor: "+vendor),
			" "+StyleDeviceMeta.Render(fmt.Sprintf("sightings: %d / %d", e.Count, threshold)),
			" "+StyleDeviceMeta.Render(fmt.Sprintf("first seen: %dms", e.FirstSeen)),
			" "+StyleDeviceMeta.Render(fmt.Sprintf("last seen:  %dms", e.LastSeen)),
			" "+renderSourceFlags(e.Sources),
		)
		if e.Suspicious {
			lines = append(lines, "", " "+StyleSuspicious.Render("!! SUSPICIOUS !!"))
		}
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
	return clampHeight(rendered, height)
}

func renderSourceFlags(s tracker.Source) string {
	wifi := StyleHelp.Render("[ ] WiFi")
	if s&tracker.SourceWiFi != 0 {
		wifi = StyleSourceWiFi.Render("[x] WiFi")
	}
	ble := StyleHelp.Render("[ ] BLE")
	if s&tracker.SourceBLE != 0 {
		ble = StyleSourceBLE.Render("[x] BLE")
	}
	return wifi + "  " + ble
}
