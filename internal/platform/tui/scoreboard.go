package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapper/internal/storage"
)

const scoreboardRows = 100

// listing picks the slice of history on screen.
type listing int

const (
	listTop    listing = iota // best games of everyone
	listRecent                // newest games of one player
)

func (l listing) String() string {
	if l == listRecent {
		return "recent games"
	}
	return "top scores"
}

var (
	boardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

type boardKeys struct {
	table.KeyMap
	Switch  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown, k.Switch, k.Refresh, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LineUp, k.LineDown, k.PageUp, k.PageDown},
		{k.Switch, k.Refresh, k.Quit},
	}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		KeyMap:  table.DefaultKeyMap(),
		Switch:  key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", "top/recent")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardLoaded carries one read of the store back into Update.
type boardLoaded struct {
	list    listing
	entries []storage.ScoreEntry
	stats   *storage.Stats
	err     error
}

// Scoreboard is the Bubble Tea model that browses the score history.
type Scoreboard struct {
	store  *storage.Store
	player string
	list   listing

	entries []storage.ScoreEntry
	stats   *storage.Stats
	err     error
	loading bool

	table  table.Model
	help   help.Model
	keys   boardKeys
	width  int
	height int
}

// NewScoreboard creates the scoreboard. Rows are read by Init.
func NewScoreboard(store *storage.Store, player string, width, height int) Scoreboard {
	b := Scoreboard{
		store:   store,
		player:  player,
		keys:    newBoardKeys(),
		help:    help.New(),
		loading: true,
	}
	b.table = table.New(table.WithFocused(true))
	b.table.KeyMap = b.keys.KeyMap

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	b.table.SetStyles(st)

	b.resize(width, height)
	return b
}

// load reads the listing from the store off the update loop.
func (b Scoreboard) load() tea.Cmd {
	store, player, list := b.store, b.player, b.list
	return func() tea.Msg {
		msg := boardLoaded{list: list}
		if store == nil {
			return msg
		}
		if list == listRecent {
			msg.entries, msg.err = store.PlayerScores(player, scoreboardRows)
		} else {
			msg.entries, msg.err = store.TopScores(scoreboardRows)
		}
		if msg.err == nil {
			msg.stats, msg.err = store.Stats()
		}
		return msg
	}
}

// resize fits the columns to a width by height terminal. The player
// column takes what is left after the fixed ones.
func (b *Scoreboard) resize(width, height int) {
	b.width, b.height = width, height
	b.help.Width = width

	playerW := max(min(width-4-6-8-14-8, 24), 8)
	b.table.SetColumns([]table.Column{
		{Title: "#", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Player", Width: playerW},
		{Title: "When", Width: 14},
	})
	// title, stats, frame and help take six rows
	b.table.SetHeight(max(height-6, 3))
}

func (b *Scoreboard) fill() {
	rows := make([]table.Row, 0, len(b.entries))
	for i, e := range b.entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.Player,
			e.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Init starts the first read.
func (b Scoreboard) Init() tea.Cmd {
	return b.load()
}

// Update handles keys, resizes and finished reads.
func (b Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoaded:
		if msg.list != b.list {
			return b, nil // superseded by a later switch
		}
		b.loading = false
		b.entries, b.stats, b.err = msg.entries, msg.stats, msg.err
		b.fill()
		return b, nil

	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Switch):
			b.list = 1 - b.list
			b.loading = true
			return b, b.load()
		case key.Matches(msg, b.keys.Refresh):
			b.loading = true
			return b, b.load()
		}
	}

	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return b, cmd
}

// View draws the title, the table and a one-line summary.
func (b Scoreboard) View() string {
	title := boardTitle.Render("FLAPPER - " + b.list.String())
	if b.list == listRecent {
		title += boardDim.Render(" of " + b.player)
	}

	var body string
	switch {
	case b.loading:
		body = boardDim.Render("loading...")
	case b.err != nil:
		body = boardDim.Render("could not read scores: " + b.err.Error())
	case len(b.entries) == 0:
		body = boardDim.Render("No games recorded yet. Play one to get on the board!")
	default:
		body = b.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(b.width, lipgloss.Center, title),
		boardFrame.Render(body),
		b.summary(),
		b.help.View(b.keys),
	)
}

func (b Scoreboard) summary() string {
	if b.stats == nil {
		return ""
	}
	pair := func(label string, v any) string {
		return boardDim.Render(label+" ") + boardValue.Render(fmt.Sprint(v))
	}
	out := pair("games", b.stats.GamesCount) + "  " +
		pair("best", b.stats.HighScore) + "  " +
		pair("avg", fmt.Sprintf("%.1f", b.stats.AvgScore))
	if !b.stats.LastPlayed.IsZero() {
		out += "  " + pair("last", b.stats.LastPlayed.Format("Jan 02"))
	}
	return out
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	_, err := tea.NewProgram(NewScoreboard(store, player, width, height), tea.WithAltScreen()).Run()
	return err
}
