package capture

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// testSink buffers scanner messages for assertions without a running
// Bubble Tea program.
type testSink struct {
	msgs chan tea.Msg
}

func newTestSink() *testSink {
	return &testSink{msgs: make(chan tea.Msg, 256)}
}

func (s *testSink) Send(msg tea.Msg) {
	select {
	case s.msgs <- msg:
	default:
	}
}

// waitFor blocks until a message matching match arrives, failing the
// test at the timeout.
func (s *testSink) waitFor(t *testing.T, timeout time.Duration, match func(tea.Msg) bool) tea.Msg {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case m := <-s.msgs:
			if match(m) {
				return m
			}
		case <-deadline:
			t.Fatal("timed out waiting for scanner message")
			return nil
		}
	}
}
