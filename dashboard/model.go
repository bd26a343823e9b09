// Package dashboard drives the fetch/render/input cycle of the kline table.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/yitech/klineterm/adapter"
	"github.com/yitech/klineterm/layout"
	"github.com/yitech/klineterm/model/candle"
	"github.com/yitech/klineterm/render"
)

// ── styles ────────────────────────────────────────────────────────────────────

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aaaaaa"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05c5c"))
)

// ── messages ──────────────────────────────────────────────────────────────────

// refreshMsg asks the model to start a fetch if one is pending.
type refreshMsg struct{}

type fetchedMsg struct {
	resp *candle.MarketResponse
	err  error
}

// ── model ─────────────────────────────────────────────────────────────────────

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	source adapter.Adapter
	keys   KeyMap
	now    func() time.Time

	state   State
	updated time.Time
	width   int
	height  int
}

// New returns a Model that fetches symbol/interval from source. Fetches run
// under a child of ctx that is cancelled on quit.
func New(ctx context.Context, source adapter.Adapter, symbol, interval string) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		ctx:    ctx,
		cancel: cancel,
		source: source,
		keys:   DefaultKeyMap(),
		now:    time.Now,
		state:  NewState(symbol, interval),
	}
}

// WithSize sets the terminal size used until the first tea.WindowSizeMsg.
func (m Model) WithSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// State returns a copy of the control state.
func (m Model) State() State {
	return m.state
}

// ── Init / Update / View ──────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Refresh):
			m.state.RequestRefresh()
			return m.next()
		}

	case refreshMsg:
		return m.next()

	case fetchedMsg:
		m.state.Complete(msg.resp, msg.err)
		if msg.err == nil && m.state.Phase == Rendered {
			m.updated = m.now()
		}
		log.Debug().Stringer("phase", m.state.Phase).Err(msg.err).Msg("dashboard: fetch completed")
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.state.Phase == Quitting {
		return ""
	}

	l := layout.New(m.width, m.height)
	f := m.frame()

	switch {
	case m.width == 0 || m.state.Phase == Fetching:
		return strings.Join(f.Loading(l), "\n")
	case !l.Fits():
		return strings.Join(f.TooSmall(l), "\n")
	}

	lines := f.Dashboard(m.state.LastResponse, l)
	last := len(lines) - 1
	lines[0] = headerStyle.Render(lines[0])
	lines[last-1] = footerStyle.Render(lines[last-1])
	if m.state.LastErr != nil {
		lines[last] = errorStyle.Render(lines[last])
	} else {
		lines[last] = footerStyle.Render(lines[last])
	}
	return strings.Join(lines, "\n")
}

// ── helpers ───────────────────────────────────────────────────────────────────

// next starts a fetch when the state machine allows one.
func (m Model) next() (tea.Model, tea.Cmd) {
	if !m.state.BeginFetch() {
		return m, nil
	}
	log.Debug().Str("symbol", m.state.Symbol).Str("interval", m.state.Interval).Msg("dashboard: fetch started")
	return m, fetch(m.ctx, m.source, m.state.Symbol, m.state.Interval)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.state.Quit()
	m.cancel()
	log.Debug().Msg("dashboard: quit requested")
	return m, tea.Quit
}

// fetch returns a Cmd that runs one request and reports it as fetchedMsg.
func fetch(ctx context.Context, source adapter.Adapter, symbol, interval string) tea.Cmd {
	return func() tea.Msg {
		resp, err := source.FetchKlines(ctx, symbol, interval)
		return fetchedMsg{resp: resp, err: err}
	}
}

func (m Model) frame() render.Frame {
	return render.Frame{
		Symbol:   m.state.Symbol,
		Interval: m.state.Interval,
		Help:     m.keys.Help(),
		Status:   m.status(),
	}
}

func (m Model) status() string {
	if err := m.state.LastErr; err != nil {
		var fe *adapter.FetchError
		if errors.As(err, &fe) {
			return fmt.Sprintf("Refresh failed (%s): %v", fe.Kind, fe.Err)
		}
		return fmt.Sprintf("Refresh failed: %v", err)
	}
	if m.state.LastResponse != nil {
		return fmt.Sprintf("Updated %s (%d candles)", m.updated.Format("15:04:05"), len(m.state.LastResponse.Data))
	}
	return ""
}
