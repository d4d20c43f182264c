package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ble-sentry.klederson.com/internal/capture"
	"ble-sentry.klederson.com/internal/config"
	"ble-sentry.klederson.com/internal/logging"
	"ble-sentry.klederson.com/internal/tracker"
)

// chanSink is a bounded queue between the capture goroutines and the
// headless drain loop. Send never blocks: when the queue is full the
// sighting is dropped, because capture paths must stay non-blocking.
type chanSink struct {
	ch chan tea.Msg
}

func newChanSink(depth int) *chanSink {
	return &chanSink{ch: make(chan tea.Msg, depth)}
}

func (s *chanSink) Send(msg tea.Msg) {
	select {
	case s.ch <- msg:
	default:
	}
}

// RunHeadless drives capture without the TUI. The zap event log is the
// only reporting surface; a summary line is emitted once per scan
// interval. Blocks until ctx is done.
func RunHeadless(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	clock := capture.NewClock()
	table := tracker.New(cfg.Capacity, cfg.Threshold)
	ring := NewEventRing(config.EventLogSize)
	sink := newChanSink(256)

	scanners, err := buildScanners(cfg, clock)
	if err != nil {
		return err
	}
	if err := startAll(scanners, sink); err != nil {
		return err
	}
	defer func() {
		for _, s := range scanners {
			s.Stop()
		}
	}()

	logger.Info("headless tracking started",
		logging.Component("headless"),
		zap.Int("capacity", table.Capacity()),
		zap.Uint32("threshold", table.Threshold()))

	summary := time.NewTicker(cfg.ScanInterval)
	defer summary.Stop()

	alerted := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-sink.ch:
			switch msg := msg.(type) {
			case capture.SightingMsg:
				res := table.Record(msg.Addr, msg.Source, msg.Timestamp)
				dispatch(logger, ring, table.Threshold(), msg, res)

				if now := table.AnySuspicious(); now != alerted {
					alerted = now
					if now {
						logger.Warn("ALERT: suspicious device present")
					}
				}
			case capture.ScanErrorMsg:
				logger.Warn("scanner error", zap.Error(msg.Err))
			}

		case <-summary.C:
			wifi, ble := table.CountBySource()
			logger.Info("tracking summary",
				zap.Int("devices", table.Count()),
				zap.Int("suspicious", table.SuspiciousCount()),
				zap.Int("wifi", wifi),
				zap.Int("ble", ble))
		}
	}
}
