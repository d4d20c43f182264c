package ui

import "github.com/charmbracelet/lipgloss"

// Matrix color palette
var (
	ColorMatrixGreen = lipgloss.Color("#00FF41")
	ColorGreen       = lipgloss.Color("#00CC33")
	ColorMidGreen    = lipgloss.Color("#008F11")
	ColorDimGreen    = lipgloss.Color("#004A0A")
	ColorDeviceBLE   = lipgloss.Color("#00FFAA")
	ColorDeviceWiFi  = lipgloss.Color("#FFCC00")
	ColorBorderNorm  = lipgloss.Color("#00AA22")
	ColorAlert       = lipgloss.Color("#FF3300")
	ColorWarning     = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStatusScanning = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleAlertOn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorAlert).
			Bold(true)

	StyleAlertOff = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleDeviceAddr = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleDeviceVendor = lipgloss.NewStyle().
				Foreground(ColorMidGreen)

	StyleDeviceMeta = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleSourceBLE = lipgloss.NewStyle().
			Foreground(ColorDeviceBLE)

	StyleSourceWiFi = lipgloss.NewStyle().
			Foreground(ColorDeviceWiFi)

	StyleSuspicious = lipgloss.NewStyle().
			Foreground(ColorAlert).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleEventLine = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)

	// Cursor row: black text on bright green
	StyleCursorRow = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(ColorMatrixGreen).
			Bold(true)
)
