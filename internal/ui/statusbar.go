package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the aggregate
// counts and the ALERT indicator.
func RenderStatusBar(width int, scanning bool, total, suspicious, wifi, ble int, alertLit bool) string {
	status := ""
	if scanning {
		status = StyleStatusScanning.Render("[SCANNING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Tracked: %d  Suspicious: %d  WiFi: %d  BLE: %d",
		total, suspicious, wifi, ble)

	alert := ""
	if suspicious > 0 {
		if alertLit {
			alert = "  " + StyleAlertOn.Render(" ALERT ")
		} else {
			alert = "  " + StyleAlertOff.Render(" ALERT ")
		}
	}

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info) + alert

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
