package app

import (
	"fmt"

	"go.uber.org/zap"

	"ble-sentry.klederson.com/internal/capture"
	"ble-sentry.klederson.com/internal/logging"
	"ble-sentry.klederson.com/internal/tracker"
)

// Operator-facing event lines. The new-device and eviction formats are
// load-bearing: existing log scrapers match them verbatim.

func newDeviceLine(addr tracker.Addr, src tracker.Source) string {
	return fmt.Sprintf("New device %s type=%s", addr, src)
}

func evictionLine(ev tracker.Eviction) string {
	return fmt.Sprintf("Evicting %s count=%d lastSeen=%d slot=%d",
		ev.Addr, ev.Count, ev.LastSeen, ev.Slot)
}

func suspiciousLine(addr tracker.Addr, count uint32) string {
	return fmt.Sprintf("Suspicious device %s count=%d", addr, count)
}

// dispatch turns a Record outcome into log lines. The tracker stays
// free of I/O; everything observable happens here. threshold is the
// table's suspicion threshold, which is exactly the count at the
// moment an entry becomes suspicious.
func dispatch(logger *zap.Logger, ring *EventRing, threshold uint32, msg capture.SightingMsg, res tracker.Result) {
	switch res.Outcome {
	case tracker.OutcomeNew:
		line := newDeviceLine(msg.Addr, msg.Source)
		ring.Push(line)
		logger.Info(line, logging.Device(msg.Addr), logging.SourceMask(msg.Source))

	case tracker.OutcomeEvicted:
		evLine := evictionLine(res.Evicted)
		ring.Push(evLine)
		logger.Info(evLine,
			logging.Device(res.Evicted.Addr),
			logging.Count(res.Evicted.Count),
			logging.LastSeen(res.Evicted.LastSeen),
			logging.Slot(res.Evicted.Slot))

		line := newDeviceLine(msg.Addr, msg.Source)
		ring.Push(line)
		logger.Info(line, logging.Device(msg.Addr), logging.SourceMask(msg.Source))

	case tracker.OutcomeBecameSuspicious:
		line := suspiciousLine(msg.Addr, threshold)
		ring.Push(line)
		logger.Warn(line, logging.Device(msg.Addr), logging.Slot(res.Slot))
	}
}

// EventRing is a fixed-size circular buffer of recent event lines for
// the on-screen log panel.
type EventRing struct {
	buf   []string
	pos   int
	count int
}

// NewEventRing creates a ring holding up to capacity lines.
func NewEventRing(capacity int) *EventRing {
	return &EventRing{buf: make([]string, capacity)}
}

// Push adds a line, discarding the oldest when full.
func (r *EventRing) Push(line string) {
	r.buf[r.pos] = line
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Lines returns the stored lines in chronological order.
func (r *EventRing) Lines() []string {
	if r.count == 0 {
		return nil
	}
	result := make([]string, 0, r.count)
	if r.count < len(r.buf) {
		result = append(result, r.buf[:r.count]...)
	} else {
		result = append(result, r.buf[r.pos:]...)
		result = append(result, r.buf[:r.pos]...)
	}
	return result
}

// Len returns the number of stored lines.
func (r *EventRing) Len() int {
	return r.count
}
