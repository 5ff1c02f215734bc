package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
	"github.com/vovakirdan/wasteland-flyer/internal/game"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

// Options configures a Model.
type Options struct {
	Config  config.FlyerConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; nil disables persistence
	Player  string         // Name recorded with each round
	Logger  *log.Logger
}

// roundSavedMsg reports the outcome of writing a round to the history.
type roundSavedMsg struct {
	round int
	err   error
}

// Model is the Bubble Tea model for playing the flyer.
type Model struct {
	engine     *game.Engine
	cfg        config.FlyerConfig
	runtime    core.RuntimeConfig
	screen     *core.Screen
	store      *storage.Store
	player     string
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	scoreboard *ScoreboardModel // Non-nil while the round history is open
	showReward bool
	quitting   bool
}

// NewModel creates a Bubble Tea model with a fresh engine in the Menu state.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Config == (config.FlyerConfig{}) {
		opts.Config = config.DefaultFlyerConfig()
	}
	rt := opts.Runtime.Normalized()

	engineOpts := []game.Option{game.WithLogger(logger)}
	if rt.Seed != 0 {
		engineOpts = append(engineOpts, game.WithSeed(rt.Seed))
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, game.WithStore(opts.Store))
	}

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		engine:  game.New(opts.Config, engineOpts...),
		cfg:     opts.Config,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		store:   opts.Store,
		player:  opts.Player,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

// Init starts in the menu; no ticks run until a round begins.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case TickMsg:
		return m.handleTick(msg)

	case roundSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save round", "round", msg.round, "error", msg.err)
		}
		return m, nil
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleKey dispatches a key by the current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionFlap:
		m.engine.RequestImpulse(core.SourceKey)

	case core.ActionStart:
		if m.engine.Start() || m.engine.Restart() {
			return m.beginRound()
		}

	case core.ActionRestart:
		if m.engine.Restart() {
			return m.beginRound()
		}

	case core.ActionBack:
		if m.showReward {
			m.showReward = false
			return m, nil
		}
		m.engine.Return()

	case core.ActionScores:
		if m.engine.State() != game.StatePlaying {
			sb := NewScoreboardModel(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
			m.scoreboard = &sb
		}

	case core.ActionDismiss:
		m.showReward = false
	}

	return m, nil
}

// handleMouse maps a left click to a flap, or to start from the menu.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.engine.State() == game.StateMenu {
		m.engine.Start()
		return m.beginRound()
	}
	m.engine.RequestImpulse(core.SourcePointer)
	return m, nil
}

func (m Model) beginRound() (tea.Model, tea.Cmd) {
	m.showReward = false
	return m, tickCmd(m.runtime.TickInterval(), m.engine.Round())
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick advances the engine and arms the next tick while the round lasts.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Round != m.engine.Round() || m.engine.State() != game.StatePlaying {
		return m, nil
	}

	res := m.engine.Tick()
	if res.Milestone {
		m.showReward = true
	}

	if res.Over != nil {
		return m, m.saveRoundCmd(*res.Over)
	}
	return m, tickCmd(m.runtime.TickInterval(), msg.Round)
}

// saveRoundCmd writes the finished round to the history off the update loop.
func (m Model) saveRoundCmd(summary game.RoundSummary) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, player := m.store, m.player
	return func() tea.Msg {
		_, err := store.SaveRound(storage.RoundRecord{
			Score:     summary.Score,
			Ticks:     summary.Ticks,
			Milestone: summary.Milestone,
			Player:    player,
		})
		return roundSavedMsg{round: summary.Round, err: err}
	}
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	if sb.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".flyer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flyer_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

func (m Model) render() {
	game.Render(m.screen, m.engine.Snapshot(), m.cfg, game.RenderOptions{ShowReward: m.showReward})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.render()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Engine exposes the underlying engine.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
	)

	_, err := p.Run()
	return err
}
