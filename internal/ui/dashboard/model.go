// Package dashboard runs the refresh loop: every tick it loads both state
// files, rebuilds the panels and binds them into the static layout.
package dashboard

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rovshanmuradov/mirror-dash/internal/state"
	"github.com/rovshanmuradov/mirror-dash/internal/ui"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/layout"
	"github.com/rovshanmuradov/mirror-dash/internal/ui/panel"
)

// RunState is the refresh loop state.
type RunState int

const (
	Running RunState = iota
	Stopped
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	DefaultInterval  = 500 * time.Millisecond
	initializingView = "Initializing..."
)

// SnapshotSource loads state snapshots. A nil result means absent.
type SnapshotSource interface {
	LoadExecutor(path string) *state.ExecutorState
	LoadWatcher(path string) *state.WatcherState
}

// statsSource is implemented by sources that keep read counters.
type statsSource interface {
	Stats() state.LoaderStats
}

// Options configures the refresh loop.
type Options struct {
	ExecutorFile string
	WatcherFile  string
	Interval     time.Duration
	Layout       string
	// StatsEvery logs loader stats every N ticks; 0 disables.
	StatsEvery int
	// Now is the clock used for the first refresh. Defaults to time.Now.
	Now func() time.Time
}

type preset struct {
	set  panel.Set
	tree func() *layout.Node
}

var presets = map[string]preset{
	panel.FullSet.Name:    {set: panel.FullSet, tree: layout.Full},
	panel.CompactSet.Name: {set: panel.CompactSet, tree: layout.Compact},
}

// tickMsg fires once per refresh interval.
type tickMsg time.Time

// StopMsg asks the loop to stop, e.g. on an interrupt signal.
type StopMsg struct {
	Reason string
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	opts   Options
	source SnapshotSource
	logger *zap.Logger
	keys   ui.KeyMap

	set    panel.Set
	layout *layout.Layout

	state       RunState
	width       int
	height      int
	ticks       int
	lastRefresh time.Time
}

// New creates a dashboard model for the named layout.
func New(opts Options, source SnapshotSource, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.ExecutorFile == "" {
		opts.ExecutorFile = state.DefaultExecutorFile
	}
	if opts.WatcherFile == "" {
		opts.WatcherFile = state.DefaultWatcherFile
	}
	if opts.Layout == "" {
		opts.Layout = panel.FullSet.Name
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	p, ok := presets[opts.Layout]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q", opts.Layout)
	}
	l, err := layout.New(p.tree())
	if err != nil {
		return nil, fmt.Errorf("build layout %q: %w", opts.Layout, err)
	}

	return &Model{
		opts:   opts,
		source: source,
		logger: logger.Named("dashboard"),
		keys:   ui.DefaultKeyMap(),
		set:    p.set,
		layout: l,
		state:  Stopped,
	}, nil
}

// Init enters the running state, renders the first snapshot and schedules
// the next tick.
func (m *Model) Init() tea.Cmd {
	m.state = Running
	m.logger.Info("Dashboard started",
		zap.String("layout", m.opts.Layout),
		zap.Duration("interval", m.opts.Interval),
		zap.String("executor_file", m.opts.ExecutorFile),
		zap.String("watcher_file", m.opts.WatcherFile))

	m.refresh(m.opts.Now())
	return m.tick()
}

// Update handles ticks, resizes, quit keys and stop requests.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, m.stop("quit key")
		}

	case tickMsg:
		if m.state != Running {
			return m, nil
		}
		m.refresh(time.Time(msg))
		return m, m.tick()

	case StopMsg:
		return m, m.stop(msg.Reason)
	}

	return m, nil
}

// View renders the layout at the terminal size.
func (m *Model) View() string {
	if m.state == Stopped {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return initializingView
	}
	return m.layout.Render(m.width, m.height)
}

// State returns the loop state.
func (m *Model) State() RunState { return m.state }

// Ticks returns how many refreshes ran.
func (m *Model) Ticks() int { return m.ticks }

// LastRefresh returns the time of the latest refresh.
func (m *Model) LastRefresh() time.Time { return m.lastRefresh }

// Layout returns the layout the model binds into.
func (m *Model) Layout() *layout.Layout { return m.layout }

// Interval returns the refresh interval.
func (m *Model) Interval() time.Duration { return m.opts.Interval }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh rebuilds every panel. A panic while loading or building is logged
// and the frame keeps its previous content; the caller schedules the next
// tick either way.
func (m *Model) refresh(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Refresh panic recovered",
				zap.Any("panic", r),
				zap.Int("ticks", m.ticks),
				zap.String("stack", string(debug.Stack())))
		}
	}()

	snap := panel.Snapshot{
		Executor: m.source.LoadExecutor(m.opts.ExecutorFile),
		Watcher:  m.source.LoadWatcher(m.opts.WatcherFile),
		TakenAt:  now,
	}

	for _, p := range m.set.Build(snap) {
		if err := m.layout.Bind(p.Region, p); err != nil {
			m.logger.Warn("Failed to bind panel", zap.Error(err))
		}
	}

	m.ticks++
	m.lastRefresh = now

	if m.opts.StatsEvery > 0 && m.ticks%m.opts.StatsEvery == 0 {
		m.logStats()
	}
}

func (m *Model) logStats() {
	fields := []zap.Field{zap.Int("ticks", m.ticks)}
	if s, ok := m.source.(statsSource); ok {
		stats := s.Stats()
		fields = append(fields,
			zap.Uint64("reads", stats.Reads),
			zap.Uint64("missing", stats.Missing),
			zap.Uint64("failures", stats.Failures))
	}
	m.logger.Debug("Refresh stats", fields...)
}

func (m *Model) stop(reason string) tea.Cmd {
	if m.state != Stopped {
		m.logger.Info("Dashboard stopping", zap.String("reason", reason), zap.Int("ticks", m.ticks))
	}
	m.state = Stopped
	return tea.Quit
}
