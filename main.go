package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ble-sentry.klederson.com/internal/app"
	"ble-sentry.klederson.com/internal/config"
	"ble-sentry.klederson.com/internal/logging"
)

var (
	flagDemo         bool
	flagAdapter      string
	flagCapacity     int
	flagThreshold    uint32
	flagScanInterval int
	flagPcap         string
	flagHeadless     bool
	flagLogFile      string
	flagLogLevel     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ble-sentry",
		Short: "BLE Sentry - detects persistent wireless trackers near you",
		Long: `BLE Sentry watches nearby WiFi and Bluetooth LE transmissions, counts
repeat sightings per hardware address in a fixed-capacity table, and flags
addresses seen often enough to be persistent trackers or stalking devices.

Requires sudo or CAP_NET_ADMIN capability for real BLE scanning.
Use --demo for demonstration mode without radio hardware, or --pcap to
replay a recorded 802.11 capture.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run in demo mode with fake devices (no hardware required)")
	rootCmd.Flags().StringVar(&flagAdapter, "adapter", "hci0", "Bluetooth adapter to use")
	rootCmd.Flags().IntVar(&flagCapacity, "capacity", config.DefaultCapacity, "Tracking table capacity (rounded up to a power of two)")
	rootCmd.Flags().Uint32Var(&flagThreshold, "threshold", config.DefaultThreshold, "Sighting count at which a device is flagged suspicious")
	rootCmd.Flags().IntVar(&flagScanInterval, "scan-interval", config.DefaultScanIntervalMs, "WiFi scan interval in milliseconds")
	rootCmd.Flags().StringVar(&flagPcap, "pcap", "", "Replay an 802.11 capture file instead of live WiFi scanning")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "No TUI; log events to stderr or --log-file")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ble-sentry.log with TUI, stderr headless)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.Demo = flagDemo
	cfg.Adapter = flagAdapter
	cfg.Capacity = flagCapacity
	cfg.Threshold = flagThreshold
	cfg.ScanInterval = time.Duration(flagScanInterval) * time.Millisecond
	cfg.PcapPath = flagPcap
	cfg.Headless = flagHeadless

	logFile := flagLogFile
	if logFile == "" && !cfg.Headless {
		logFile = cfg.LogFile // the TUI owns the terminal
	}
	logger, err := logging.New(logging.Config{Level: flagLogLevel, File: logFile})
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	defer logging.Sync(logger)

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.RunHeadless(ctx, cfg, logger)
	}

	model := app.New(cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start scanners with reference to the tea program
	if err := model.StartScanners(p); err != nil {
		if !cfg.Demo {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "BLE scanning requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./ble-sentry")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./ble-sentry")
			fmt.Fprintln(os.Stderr, "  ./ble-sentry --demo    (demo mode, no hardware needed)")
			return err
		}
	}
	defer model.StopScanners()

	_, err = p.Run()
	return err
}
