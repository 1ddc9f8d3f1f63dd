package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tumble/internal/storage"
)

// BoardsKeyMap defines the key bindings for the saved boards picker.
type BoardsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Load   key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BoardsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Load, k.Delete},
		{k.Back, k.Quit},
	}
}

// DefaultBoardsKeyMap returns default key bindings.
func DefaultBoardsKeyMap() BoardsKeyMap {
	return BoardsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
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

// BoardsModel lists saved boards in a table.
type BoardsModel struct {
	store     *storage.Store
	boards    []storage.SavedBoard
	table     table.Model
	help      help.Model
	keys      BoardsKeyMap
	width     int
	height    int
	chosen    *storage.SavedBoard
	status    string
	quitting  bool
	goingBack bool
}

// NewBoardsModel creates a picker over the boards in store.
func NewBoardsModel(store *storage.Store, width, height int) BoardsModel {
	m := BoardsModel{
		store:  store,
		keys:   DefaultBoardsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadBoards()
	return m
}

// createTable creates a new table sized to the window.
func (m *BoardsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 16},
		{Title: "Marbles", Width: 9},
		{Title: "Saved", Width: 14},
		{Title: "Code", Width: 20},
	}

	// Give the code column whatever width is left
	if rest := m.width - 4 - 16 - 9 - 14 - 8; rest > columns[3].Width {
		columns[3].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadBoards reads the saved boards from storage.
func (m *BoardsModel) loadBoards() {
	boards, err := m.store.ListBoards()
	if err != nil {
		m.status = "could not read saved boards"
		boards = nil
	}
	m.boards = boards
	m.updateTableRows()
}

// updateTableRows updates the table with current boards.
func (m *BoardsModel) updateTableRows() {
	rows := make([]table.Row, len(m.boards))
	for i, b := range m.boards {
		rows[i] = table.Row{
			b.Name,
			fmt.Sprintf("%d/%d", b.Blue, b.Red),
			b.CreatedAt.Format("Jan 02 15:04"),
			b.Code,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the picker.
func (m BoardsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m BoardsModel) Update(msg tea.Msg) (BoardsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Load):
			if b, ok := m.selected(); ok {
				m.chosen = &b
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if b, ok := m.selected(); ok {
				if err := m.store.DeleteBoard(b.ID); err != nil {
					m.status = "delete failed"
				} else {
					m.status = fmt.Sprintf("deleted %q", b.Name)
				}
				m.loadBoards()
			}
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

// selected returns the board under the table cursor.
func (m BoardsModel) selected() (storage.SavedBoard, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.boards) {
		return storage.SavedBoard{}, false
	}
	return m.boards[i], true
}

// View renders the picker.
func (m BoardsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SAVED BOARDS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.boards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No saved boards yet.\nPress ctrl+s in the editor to save one.")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(messageStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Chosen returns the board picked for loading, or nil.
func (m BoardsModel) Chosen() *storage.SavedBoard {
	return m.chosen
}

// IsGoingBack returns true if user wants to go back to the editor.
func (m BoardsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BoardsModel) IsQuitting() bool {
	return m.quitting
}
