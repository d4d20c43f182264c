package ui

import (
	"strings"
)

// RenderEventLog renders the most recent event lines, newest at the
// bottom, truncated to fit the panel.
func RenderEventLog(lines []string, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	title := StylePanelTitle.Render("EVENTS")
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	out := []string{title, separator}

	space := innerH - len(out)
	if len(lines) > space {
		lines = lines[len(lines)-space:]
	}
	for _, l := range lines {
		if len(l) > innerW-1 {
			l = l[:innerW-1]
		}
		out = append(out, StyleEventLine.Render(" "+l))
	}
	for len(out) < innerH {
		out = append(out, "")
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(out, "\n"))
	return clampHeight(rendered, height)
}
