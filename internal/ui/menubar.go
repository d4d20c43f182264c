package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"ble-sentry.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, adapter string, scanning, susOnly bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"S", "can"},
		{"P", "ause"},
		{"F", "lagged"},
		{"R", "eset"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if scanning {
		status = StyleStatusScanning.Render("SCANNING")
	} else {
		status = StyleStatusPaused.Render("PAUSED")
	}
	if susOnly {
		status = StyleSuspicious.Render("FLAGGED ONLY") + "  " + status
	}

	adapterInfo := StyleMenuLabel.Render(fmt.Sprintf("Adapter: %s", adapter))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + adapterInfo + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
