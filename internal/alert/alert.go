// Package alert drives the suspicious-device indicator.
package alert

// Indicator is a blink state machine polled once per frame. It turns
// the status-bar ALERT banner on and off while any tracked device is
// flagged, and reports the rising edge so the caller can ring the
// terminal bell exactly once per episode.
type Indicator struct {
	active bool
	tick   int
	period int
}

// NewIndicator creates an indicator that toggles its lit phase every
// period polls.
func NewIndicator(period int) *Indicator {
	if period < 1 {
		period = 1
	}
	return &Indicator{period: period}
}

// Observe advances the indicator by one poll. It returns true only on
// the transition from no suspicious devices to at least one; a reset
// clears the episode so a later recurrence fires again.
func (i *Indicator) Observe(anySuspicious bool) bool {
	if !anySuspicious {
		i.active = false
		i.tick = 0
		return false
	}
	if !i.active {
		i.active = true
		i.tick = 0
		return true
	}
	i.tick++
	return false
}

// Active reports whether any suspicious device is currently present.
func (i *Indicator) Active() bool {
	return i.active
}

// Lit reports whether the banner is in its on phase.
func (i *Indicator) Lit() bool {
	return i.active && (i.tick/i.period)%2 == 0
}
