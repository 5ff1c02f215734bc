package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

const historyLimit = 100

// boardView selects which slice of the history the table shows.
type boardView int

const (
	viewTop boardView = iota
	viewRecent
)

func (v boardView) title() string {
	if v == viewRecent {
		return "RECENT ROUNDS"
	}
	return "HIGH SCORES"
}

func (v boardView) next() boardView {
	return 1 - v
}

// fetch loads this view's rows from the store.
func (v boardView) fetch(store *storage.Store) ([]storage.RoundRecord, error) {
	if v == viewRecent {
		return store.RecentRounds(historyLimit)
	}
	return store.TopRounds(historyLimit)
}

var boardStyle = struct {
	title, frame, stats, faint, empty lipgloss.Style
}{
	title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("22")).Padding(0, 1),
	stats: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	faint: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	empty: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
}

// boardColumns are the fixed table columns; Pilot absorbs spare width.
var boardColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 7},
	{Title: "Ticks", Width: 8},
	{Title: "Pilot", Width: 12},
	{Title: "Date", Width: 14},
}

const pilotColumn = 3

// ScoreboardKeyMap holds the bindings of the round history screen.
type ScoreboardKeyMap struct {
	Up, Down, Toggle, Back, Quit key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Toggle}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the history screen bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Toggle: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "top/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the round history.
// Inside the game Model it only reports back; standalone it quits the program.
type ScoreboardModel struct {
	store      *storage.Store
	rounds     []storage.RoundRecord
	stats      *storage.Stats
	loadErr    error
	view       boardView
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens on the high scores and loads them right away.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newRoundsTable(width, height)
	m.reload()
	return m
}

func newRoundsTable(width, height int) table.Model {
	cols := append([]table.Column(nil), boardColumns...)
	used := 10 // frame and cell padding
	for _, c := range cols {
		used += c.Width
	}
	if spare := width - used; spare > 0 {
		cols[pilotColumn].Width += min(spare, 12)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("22")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")).
		Bold(false)

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 3)),
	)
	t.SetStyles(styles)
	return t
}

// reload refreshes the current view and the aggregate stats.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.rounds, m.loadErr = m.view.fetch(m.store)
		if stats, err := m.store.Stats(); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.rounds))
	for i, r := range m.rounds {
		rows = append(rows, roundRow(i+1, r))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// roundRow formats one history entry. A trailing * marks an unlocked code.
func roundRow(rank int, r storage.RoundRecord) table.Row {
	score := strconv.Itoa(r.Score)
	if r.Milestone {
		score += "*"
	}
	pilot := r.Player
	if pilot == "" {
		pilot = "-"
	}
	return table.Row{
		"#" + strconv.Itoa(rank),
		score,
		strconv.Itoa(r.Ticks),
		pilot,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.view = m.view.next()
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRoundsTable(msg.Width, msg.Height)
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || (m.standalone && m.goingBack) {
		return ""
	}

	center := func(s string) string {
		if lipgloss.Width(s) >= m.width {
			return s
		}
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		boardStyle.title.Render(center("WASTELAND FLYER - "+m.view.title())),
		"",
		center(boardStyle.frame.Render(m.body())),
		boardStyle.stats.Render(center(m.statsLine())),
		boardStyle.faint.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) body() string {
	switch {
	case m.loadErr != nil:
		return boardStyle.empty.Render("Could not load rounds:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return boardStyle.empty.Render("No rounds recorded yet.\nFly through the wasteland to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("rounds %d   best %d   avg %.1f   milestones %d   (* = code unlocked)",
		m.stats.Rounds, m.stats.BestScore, m.stats.AvgScore, m.stats.Milestones)
}

// IsGoingBack reports whether the user asked to leave the history.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the history as its own program, for `flyer scores --tui`.
func RunScoreboard(store *storage.Store, width, height int) error {
	m := NewScoreboardModel(store, width, height)
	m.standalone = true

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
