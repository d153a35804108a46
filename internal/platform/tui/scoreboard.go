package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/registry"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForPanel = 80  // narrower terminals stack the stats above the table
	panelWidth       = 24
	maxRows          = 100 // rows loaded per view
)

// scoreView is one of the tables the scoreboard cycles through.
type scoreView int

const (
	viewScores scoreView = iota
	viewRecentRuns
	viewBestRuns
	viewCount
)

func (v scoreView) title() string {
	switch v {
	case viewRecentRuns:
		return "RECENT RUNS"
	case viewBestRuns:
		return "BEST RUNS"
	default:
		return "HIGH SCORES"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Game key.Binding
	View key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.View, k.Game, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.View, k.Game},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Game: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		View: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "scores/runs"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows high scores and run history for one game at a time.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       scoreView
	scores     []storage.ScoreEntry
	runs       []storage.RunResult
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// load reads the current view and stats for the selected game. A missing
// store or a failed query shows an empty table.
func (m *ScoreboardModel) load() {
	m.scores, m.runs, m.stats = nil, nil, nil

	id := m.gameID()
	if m.store != nil && id != "" {
		ctx := context.Background()
		switch m.view {
		case viewScores:
			m.scores, _ = m.store.TopScores(ctx, id, maxRows)
		case viewRecentRuns:
			m.runs, _ = m.store.RecentRuns(ctx, id, maxRows)
		case viewBestRuns:
			m.runs, _ = m.store.BestRuns(ctx, id, maxRows)
		}
		if st, err := m.store.GetGameStats(ctx, id); err == nil {
			m.stats = st
		}
	}
	m.updateTableRows()
}

// columns returns the table columns for the current view and width.
func (m *ScoreboardModel) columns() []table.Column {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Kills", Width: 10},
		{Title: "Date", Width: 18},
	}
	if m.view != viewScores {
		columns = []table.Column{
			{Title: "Kills", Width: 6},
			{Title: "Shots", Width: 6},
			{Title: "Survived", Width: 9},
			{Title: "Date", Width: 13},
		}
	}

	avail := m.width - 6
	if m.width >= minWidthForPanel {
		avail -= panelWidth + 2
	}
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width
	}
	if spare := avail - used; spare > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = min(spare, 20)
	}
	return columns
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("52")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == viewScores {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				strconv.Itoa(s.Score),
				s.CreatedAt.Local().Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				strconv.Itoa(r.Kills),
				strconv.Itoa(r.Shots),
				r.Survived(core.DefaultTickRate).Round(100 * time.Millisecond).String(),
				r.CreatedAt.Local().Format("Jan 02 15:04"),
			}
		}
	}

	// Rows must match the column count before SetRows renders them.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Game):
			if len(m.games) > 1 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.View):
			m.view = (m.view + 1) % viewCount
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := m.view.title()
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableBox := box.Render(m.renderTableContent())
	panel := box.Width(panelWidth).Render(m.renderStats())
	if m.width >= minWidthForPanel {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, "  ", panel))
	} else {
		b.WriteString(panel)
		b.WriteString("\n")
		b.WriteString(tableBox)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats summarises every recorded score of the selected game.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return "No runs yet"
	}
	s := m.stats
	return strings.Join([]string{
		fmt.Sprintf("Scored runs: %d", s.GamesCount),
		fmt.Sprintf("Best:        %d", s.HighScore),
		fmt.Sprintf("Average:     %.1f", s.AvgScore),
		fmt.Sprintf("Total kills: %d", s.TotalScore),
		"Last played:",
		"  " + s.LastPlayed.Local().Format("Jan 02 15:04"),
	}, "\n")
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nPlay a round to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
