// Package capture turns vendor scan events into device sightings.
// Each adapter reduces whatever its source produces to a SightingMsg
// and hands it to a Sink; the control loop owns the tracking table and
// is the only consumer, so adapters never touch tracker state directly.
package capture

import (
	tea "github.com/charmbracelet/bubbletea"

	"ble-sentry.klederson.com/internal/tracker"
)

// SightingMsg is one observed transmission from a device. Name is
// display metadata only; the tracking table never stores it.
type SightingMsg struct {
	Addr      tracker.Addr
	Source    tracker.Source
	Name      string // advertised name, "" when the source has none
	Timestamp uint32 // ms since start
}

// ScanErrorMsg reports a scanner failure.
type ScanErrorMsg struct {
	Err error
}

// Sink receives capture messages. *tea.Program satisfies it; headless
// mode and tests provide their own.
type Sink interface {
	Send(msg tea.Msg)
}
