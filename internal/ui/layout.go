package ui

import "github.com/charmbracelet/lipgloss"

// ComposeSidebar stacks the detail panel above the event log.
func ComposeSidebar(detail, eventLog string) string {
	return lipgloss.JoinVertical(lipgloss.Left, detail, eventLog)
}

// ComposeLayout joins the device list and sidebar horizontally, with
// the menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, deviceList, sidebar, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, deviceList, sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
