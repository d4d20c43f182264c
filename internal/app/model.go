package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"ble-sentry.klederson.com/internal/alert"
	"ble-sentry.klederson.com/internal/capture"
	"ble-sentry.klederson.com/internal/config"
	"ble-sentry.klederson.com/internal/logging"
	"ble-sentry.klederson.com/internal/tracker"
	"ble-sentry.klederson.com/internal/ui"
)

// scanner is the common surface of every capture adapter.
type scanner interface {
	Start(sink capture.Sink) error
	Stop()
}

// shared holds state shared between the Bubble Tea model copies and
// main.go. Because Bubble Tea uses value receivers, pointer fields
// ensure all copies see the same underlying data.
type shared struct {
	table     *tracker.Table
	clock     *capture.Clock
	indicator *alert.Indicator
	ring      *EventRing
	logger    *zap.Logger
	scanners  []scanner

	// Advertised names by address, display metadata only. The tracking
	// table stays name-free so eviction decisions never depend on it.
	names map[tracker.Addr]string
}

// AppModel is the root Bubble Tea model for BLE Sentry.
type AppModel struct {
	width  int
	height int

	cfg      config.Config
	scanning bool
	cursor   int
	susOnly  bool // device list shows flagged entries only

	shared *shared

	// Cached snapshot, refreshed each tick
	devices []tracker.Entry
}

// New creates a new AppModel.
func New(cfg config.Config, logger *zap.Logger) AppModel {
	return AppModel{
		cfg:      cfg,
		scanning: true,
		shared: &shared{
			table:     tracker.New(cfg.Capacity, cfg.Threshold),
			clock:     capture.NewClock(),
			indicator: alert.NewIndicator(config.BlinkPeriodTicks),
			ring:      NewEventRing(config.EventLogSize),
			logger:    logger,
			names:     make(map[tracker.Addr]string),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.devices = m.shared.table.Snapshot(m.filter())
		if m.cursor >= len(m.devices) {
			m.cursor = len(m.devices) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}

		if m.shared.indicator.Observe(m.shared.table.AnySuspicious()) {
			return m, tea.Batch(tickCmd(), bellCmd())
		}
		return m, tickCmd()

	case capture.SightingMsg:
		if m.scanning {
			if msg.Name != "" {
				m.shared.names[msg.Addr] = msg.Name
			}
			res := m.shared.table.Record(msg.Addr, msg.Source, msg.Timestamp)
			dispatch(m.shared.logger, m.shared.ring, m.shared.table.Threshold(), msg, res)
		}
		return m, nil

	case capture.ScanErrorMsg:
		m.shared.logger.Warn("scanner error", zap.Error(msg.Err))
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.StopScanners()
		logging.Sync(m.shared.logger)
		return m, tea.Quit

	case "s", "S":
		m.scanning = true

	case "p", "P":
		m.scanning = false

	case "f", "F":
		m.susOnly = !m.susOnly
		m.cursor = 0

	case "r", "R":
		m.shared.table.Reset()
		clear(m.shared.names)
		m.shared.ring.Push("Tracking table reset")
		m.shared.logger.Info("Tracking table reset")
		m.devices = nil
		m.cursor = 0

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.devices)-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if len(m.devices) > 0 {
			m.cursor = len(m.devices) - 1
		}
	}

	return m, nil
}

func (m AppModel) filter() tracker.Filter {
	if m.susOnly {
		return tracker.FilterSuspicious
	}
	return tracker.FilterAll
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing BLE Sentry..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	listW := m.width * 3 / 5
	if listW < 30 {
		listW = 30
	}
	sideW := m.width - listW
	if sideW < 20 {
		sideW = 20
		listW = m.width - sideW
	}

	menuBar := ui.RenderMenuBar(m.width, m.cfg.Adapter, m.scanning, m.susOnly)

	deviceList := ui.RenderDeviceList(m.devices, m.shared.names, listW, bodyH, m.cursor)

	var selected *tracker.Entry
	var selectedName string
	if m.cursor >= 0 && m.cursor < len(m.devices) {
		selected = &m.devices[m.cursor]
		selectedName = m.shared.names[selected.Addr]
	}
	detailH := bodyH / 2
	detail := ui.RenderDetailPanel(selected, selectedName, m.shared.table.Threshold(), sideW, detailH)
	eventLog := ui.RenderEventLog(m.shared.ring.Lines(), sideW, bodyH-detailH)
	sidebar := ui.ComposeSidebar(detail, eventLog)

	total := m.shared.table.Count()
	sus := m.shared.table.SuspiciousCount()
	wifi, ble := m.shared.table.CountBySource()
	statusBar := ui.RenderStatusBar(m.width, m.scanning, total, sus, wifi, ble,
		m.shared.indicator.Lit())

	return ui.ComposeLayout(menuBar, deviceList, sidebar, statusBar)
}

// StartScanners initializes and starts the configured capture
// adapters. Must be called before p.Run().
func (m *AppModel) StartScanners(p *tea.Program) error {
	scanners, err := buildScanners(m.cfg, m.shared.clock)
	if err != nil {
		return err
	}
	m.shared.scanners = scanners
	return startAll(scanners, p)
}

// StopScanners halts every running adapter.
func (m *AppModel) StopScanners() {
	for _, s := range m.shared.scanners {
		s.Stop()
	}
}

// buildScanners picks adapters for the configuration: demo fakes,
// pcap replay, or live BLE plus WiFi when the tooling is present.
func buildScanners(cfg config.Config, clock *capture.Clock) ([]scanner, error) {
	if cfg.Demo {
		return []scanner{capture.NewDemoScanner(clock)}, nil
	}
	if cfg.PcapPath != "" {
		return []scanner{capture.NewPcapReplayer(cfg.PcapPath, clock)}, nil
	}

	scanners := []scanner{capture.NewBLEScanner(clock)}
	if capture.WiFiScannerAvailable() {
		scanners = append(scanners, capture.NewWiFiScanner("", cfg.ScanInterval, clock))
	}
	return scanners, nil
}

func startAll(scanners []scanner, sink capture.Sink) error {
	for i, s := range scanners {
		if err := s.Start(sink); err != nil {
			for _, started := range scanners[:i] {
				started.Stop()
			}
			return err
		}
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// bellCmd rings the terminal bell once, routed through the renderer so
// BEL never interleaves with frame output.
func bellCmd() tea.Cmd {
	return tea.Printf("\a")
}
