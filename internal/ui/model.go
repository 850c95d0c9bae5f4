package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrSnakeDoc/restdemo/internal/client"
	"github.com/MrSnakeDoc/restdemo/internal/domain"
	"github.com/MrSnakeDoc/restdemo/internal/session"
)

// Backend is what the UI needs from the API client.
type Backend interface {
	client.HealthChecker
	client.RecordFetcher
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Backend    Backend
	Session    *session.Session
	BackendURL string
	Now        func() time.Time // for testing, defaults to time.Now
}

// Model is the root application state for Bubble Tea. Everything it renders comes
// from the session; the model itself only holds presentation state.
type Model struct {
	ctx        context.Context
	backend    Backend
	sess       *session.Session
	backendURL string
	now        func() time.Time

	styles  Styles
	spinner spinner.Model
	width   int

	// probeSeq numbers health probes; only the latest one may update the session.
	probeSeq uint64
}

type healthMsg struct {
	seq uint64
	ok  bool
}

type fetchResultMsg struct {
	record domain.Record
	err    error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	sess := opts.Session
	if sess == nil {
		sess = &session.Session{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	styles := defaultStyles()
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Pending))

	return Model{
		ctx:        ctx,
		backend:    opts.Backend,
		sess:       sess,
		backendURL: opts.BackendURL,
		now:        now,
		styles:     styles,
		spinner:    sp,
	}
}

// Init implements tea.Model. The health probe starts right away.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.probeCmd(m.probeSeq))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case healthMsg:
		if msg.seq == m.probeSeq {
			m.sess.SetHealthy(msg.ok)
		}
		return m, nil

	case fetchResultMsg:
		if msg.err != nil {
			_ = m.sess.Fail(msg.err.Error())
		} else {
			_ = m.sess.Succeed(msg.record)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "f", "enter":
		return m, m.startFetch()

	case "r":
		return m.probe()
	}
	return m, nil
}

// startFetch enters Loading synchronously so a second key press before the
// result arrives is rejected by the session.
func (m Model) startFetch() tea.Cmd {
	if m.backend == nil || !m.sess.CanFetch() {
		return nil
	}
	if err := m.sess.BeginFetch(); err != nil {
		return nil
	}
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		rec, err := backend.FetchData(ctx)
		return fetchResultMsg{record: rec, err: err}
	}
}

// probe starts a new health check that supersedes any still in flight.
func (m Model) probe() (Model, tea.Cmd) {
	m.probeSeq++
	return m, m.probeCmd(m.probeSeq)
}

func (m Model) probeCmd(seq uint64) tea.Cmd {
	if m.backend == nil {
		return nil
	}
	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		return healthMsg{seq: seq, ok: backend.CheckHealth(ctx)}
	}
}
