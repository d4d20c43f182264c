package ui

import (
	"fmt"
	"strings"

	"ble-sentry.klederson.com/internal/capture"
	"ble-sentry.klederson.com/internal/tracker"
)

// RenderDeviceList renders the scrollable tracked-device panel.
// Entries arrive in table-index order; the order means nothing beyond
// being stable, so no sort is applied. names maps addresses to
// advertised names; entries without one fall back to the OUI vendor.
func RenderDeviceList(devices []tracker.Entry, names map[tracker.Addr]string, width, height int, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("TRACKED [%d]", len(devices)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	devSpace := innerH - len(headerLines)

	var devLines []string
	if len(devices) == 0 {
		devLines = append(devLines, "")
		devLines = append(devLines, StyleHelp.Render(" No devices..."))
		devLines = append(devLines, StyleHelp.Render(" Waiting for sightings"))
	} else {
		linesPerDevice := 3 // 2 content + 1 blank
		maxVisible := devSpace / linesPerDevice
		if maxVisible < 1 {
			maxVisible = 1
		}

		viewStart := 0
		if cursor >= maxVisible {
			viewStart = cursor - maxVisible + 1
		}

		count := 0
		for i := viewStart; i < len(devices); i++ {
			entry := renderDeviceEntry(&devices[i], names[devices[i].Addr], innerW, i == cursor)
			for _, l := range entry {
				if count >= devSpace {
					break
				}
				devLines = append(devLines, l)
				count++
			}
			if count >= devSpace {
				break
			}
		}
	}

	if len(devLines) > devSpace {
		devLines = devLines[:devSpace]
	}
	for len(devLines) < devSpace {
		devLines = append(devLines, "")
	}

	all := append(headerLines, devLines...)
	content := strings.Join(all, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	return clampHeight(rendered, height)
}

func renderDeviceEntry(e *tracker.Entry, name string, maxW int, isCursor bool) []string {
	tag := "[" + e.Sources.String() + "]"

	susTag := ""
	if e.Suspicious {
		susTag = " SUSPICIOUS"
	}

	vendor := name
	if vendor == "" {
		vendor = capture.LookupVendor(e.Addr)
	}
	if vendor == "" {
		vendor = "unknown vendor"
	}

	cursor := "  "
	if isCursor {
		cursor = ">>"
	}

	rawLine1 := fmt.Sprintf("%s %s %s %s%s", cursor, e.Sources.Symbol(), e.Addr, tag, susTag)
	rawLine2 := fmt.Sprintf("     %s  seen %d  last %dms", vendor, e.Count, e.LastSeen)

	rawLine1 = truncRaw(rawLine1, maxW)
	rawLine2 = truncRaw(rawLine2, maxW)

	if isCursor {
		return []string{
			StyleCursorRow.Render(rawLine1),
			StyleCursorRow.Render(rawLine2),
			"",
		}
	}

	srcSty := StyleSourceBLE
	if e.Sources == tracker.SourceWiFi {
		srcSty = StyleSourceWiFi
	}

	line1 := fmt.Sprintf("   %s %s %s", srcSty.Render(e.Sources.Symbol()),
		StyleDeviceAddr.Render(e.Addr.String()), srcSty.Render(tag))
	if e.Suspicious {
		line1 += " " + StyleSuspicious.Render("SUSPICIOUS")
	}
	line2 := "     " + StyleDeviceVendor.Render(vendor) +
		StyleDeviceMeta.Render(fmt.Sprintf("  seen %d  last %dms", e.Count, e.LastSeen))

	return []string{line1, line2, ""}
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	if len(s) > w {
		return s[:w]
	}
	if len(s) < w {
		return s + strings.Repeat(" ", w-len(s))
	}
	return s
}

// clampHeight forces rendered output to exactly h lines. lipgloss
// Height() only sets a minimum; it won't truncate overflow.
func clampHeight(rendered string, h int) string {
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > h {
		outLines = outLines[:h]
	}
	for len(outLines) < h {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}
