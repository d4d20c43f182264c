// Package logging provides structured logging configuration.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ble-sentry.klederson.com/internal/tracker"
)

// Config holds logging configuration options.
type Config struct {
	Level string // debug|info|warn|error
	File  string // log file path; empty logs to stderr
}

// New creates a configured zap logger. The TUI owns the terminal, so
// the default sink is a file; headless mode passes an empty File to
// log to stderr instead.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			return nil, err
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.LevelKey = "level"
	zcfg.EncoderConfig.MessageKey = "msg"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.File != "" {
		zcfg.OutputPaths = []string{cfg.File}
		zcfg.ErrorOutputPaths = []string{cfg.File}
	} else {
		zcfg.OutputPaths = []string{"stderr"}
		zcfg.ErrorOutputPaths = []string{"stderr"}
	}

	return zcfg.Build()
}

// Sync flushes any buffered log entries.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}

// Component returns a zap field for the component name.
func Component(name string) zap.Field { return zap.String("component", name) }

// Device returns a zap field for a hardware address.
func Device(a tracker.Addr) zap.Field { return zap.String("addr", a.String()) }

// Count returns a zap field for a sighting count.
func Count(n uint32) zap.Field { return zap.Uint32("count", n) }

// Slot returns a zap field for a table slot index.
func Slot(i int) zap.Field { return zap.Int("slot", i) }

// SourceMask returns a zap field for a source bitmask.
func SourceMask(s tracker.Source) zap.Field { return zap.String("sources", s.String()) }

// LastSeen returns a zap field for a ms-since-start timestamp.
func LastSeen(ms uint32) zap.Field { return zap.Uint32("last_seen_ms", ms) }
