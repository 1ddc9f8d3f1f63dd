package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/core"
	"github.com/vovakirdan/tumble/internal/puzzles"
	"github.com/vovakirdan/tumble/internal/sim"
	"github.com/vovakirdan/tumble/internal/storage"
)

// mode is what the editor is currently showing.
type mode int

const (
	modeEdit mode = iota
	modeSave
	modeBoards
)

// Model is the Bubble Tea model for editing and running one board.
type Model struct {
	session  *sim.Session
	puzzle   *puzzles.Puzzle
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	clock    clock
	cursor   board.Coord
	part     int // Index into palette
	mode     mode
	prompt   textinput.Model
	boards   BoardsModel
	message  string
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
// store may be nil, which disables autosave, saving and the boards picker.
func NewModel(sess *sim.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	w, h := BoardScreenSize(sess.Board().Topology())
	t := sess.Board().Topology()

	prompt := textinput.New()
	prompt.Placeholder = "board name"
	prompt.CharLimit = 40
	prompt.Width = 30

	return Model{
		session: sess,
		store:   store,
		config:  cfg,
		logger:  log.New(io.Discard),
		screen:  core.NewScreen(w, h),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		clock:   newClock(cfg.Speed),
		cursor:  board.C(t.Center(), 0),
		prompt:  prompt,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// WithPuzzle attaches a puzzle whose goal the check action compares against.
func (m Model) WithPuzzle(p *puzzles.Puzzle) Model {
	m.puzzle = p
	return m
}

// WithLogger sets the logger used for storage warnings.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Session returns the simulation the model drives.
func (m Model) Session() *sim.Session {
	return m.session
}

// Init initializes the model. Ticks are only armed once a marble is launched.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.mode == modeBoards {
			var cmd tea.Cmd
			m.boards, cmd = m.boards.Update(msg)
			return m, cmd
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeSave:
			return m.handleSaveKey(msg)
		case modeBoards:
			return m.handleBoardsKey(msg)
		default:
			return m.handleKey(msg)
		}
	}

	if m.mode == modeSave {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick steps the marble if the tick belongs to the current generation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.accept(msg) {
		return m, nil
	}
	m.afterStep(m.session.Step())
	if m.session.Status() != sim.Rolling {
		m.clock.stop()
		m.autosave()
		return m, nil
	}
	cmd := m.clock.next()
	return m, cmd
}

// handleKey processes keyboard input in edit mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if i, ok := m.keys.paletteIndex(msg); ok {
		m.part = i
		return m, nil
	}
	return m.apply(m.keys.MapKey(msg))
}

// apply performs one editor action.
func (m Model) apply(a core.Action) (Model, tea.Cmd) {
	t := m.session.Board().Topology()

	if a.Edits() && m.session.Status() == sim.Rolling {
		m.message = "abort the marble (a) before editing"
		return m, nil
	}

	switch a {
	case core.ActionQuit:
		m.autosave()
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.cursor.Y = core.Clamp(m.cursor.Y-1, 0, t.H-1)
	case core.ActionDown:
		m.cursor.Y = core.Clamp(m.cursor.Y+1, 0, t.H-1)
	case core.ActionLeft:
		m.cursor.X = core.Clamp(m.cursor.X-1, 0, t.W-1)
	case core.ActionRight:
		m.cursor.X = core.Clamp(m.cursor.X+1, 0, t.W-1)

	case core.ActionNextPart:
		m.part = (m.part + 1) % len(palette)
	case core.ActionPrevPart:
		m.part = (m.part + len(palette) - 1) % len(palette)

	case core.ActionPlace:
		p := palette[m.part]
		m.session.Abort()
		if !m.session.Place(m.cursor.X, m.cursor.Y, p) {
			m.message = fmt.Sprintf("%s does not fit on a %s", p, t.CellKind(m.cursor.X, m.cursor.Y))
			return m, nil
		}
		m.message = ""
		m.autosave()
	case core.ActionErase:
		m.session.Abort()
		m.session.Place(m.cursor.X, m.cursor.Y, board.Empty)
		m.autosave()
	case core.ActionFlip:
		m.session.Abort()
		if !m.session.Flip(m.cursor.X, m.cursor.Y) {
			m.message = "nothing to flip here"
			return m, nil
		}
		m.autosave()
	case core.ActionClearBoard:
		m.session.Abort()
		m.session.Board().Clear()
		m.message = "board cleared"
		m.autosave()

	case core.ActionLaunchBlue, core.ActionLaunchRed:
		return m.launch(a)

	case core.ActionStep:
		cmd := m.clock.rearm()
		m.afterStep(m.session.Step())
		if m.session.Status() != sim.Rolling {
			m.clock.stop()
			return m, nil
		}
		return m, cmd
	case core.ActionStepBack:
		if !m.session.StepBackward() {
			m.message = "nothing to undo"
			return m, nil
		}
		m.message = ""
		// Undoing holds the marble; resume with pause.
		m.clock.paused = true
		m.clock.running = true
		cmd := m.clock.rearm()
		return m, cmd
	case core.ActionPause:
		m.clock.running = m.session.Status() == sim.Rolling
		cmd := m.clock.togglePause()
		return m, cmd
	case core.ActionFaster:
		cmd, ok := m.clock.faster()
		if !ok {
			m.message = "already at the fastest speed"
		}
		return m, cmd
	case core.ActionSlower:
		cmd, ok := m.clock.slower()
		if !ok {
			m.message = "already at the slowest speed"
		}
		return m, cmd

	case core.ActionAbort:
		m.session.Abort()
		m.clock.stop()
	case core.ActionResetMarbles:
		m.session.ResetMarbles()
		m.clock.stop()
		m.message = "marbles reset"
	case core.ActionBlueMore, core.ActionBlueFewer, core.ActionRedMore, core.ActionRedFewer:
		m.adjustMarbles(a)
		m.autosave()

	case core.ActionCheck:
		m.check()
	case core.ActionShare:
		m.message = m.shareLink()
	case core.ActionSave:
		if m.store == nil {
			m.message = "no database configured"
			return m, nil
		}
		m.mode = modeSave
		m.prompt.SetValue("")
		cmd := m.prompt.Focus()
		return m, cmd
	case core.ActionBoards:
		if m.store == nil {
			m.message = "no database configured"
			return m, nil
		}
		m.boards = NewBoardsModel(m.store, m.width, m.height)
		m.mode = modeBoards
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// launch releases a marble and starts automatic stepping.
func (m Model) launch(a core.Action) (Model, tea.Cmd) {
	c := sim.Blue
	if a == core.ActionLaunchRed {
		c = sim.Red
	}
	if m.session.Status() == sim.Rolling {
		m.message = "a marble is already rolling"
		return m, nil
	}
	if !m.session.Launch(c) {
		m.message = fmt.Sprintf("no %s marbles left", strings.ToLower(c.String()))
		return m, nil
	}
	m.message = ""
	cmd := m.clock.start()
	return m, cmd
}

// adjustMarbles changes a reservoir total and its available count together.
func (m *Model) adjustMarbles(a core.Action) {
	res := m.session.Reservoir()
	c, delta := sim.Blue, 1
	switch a {
	case core.ActionBlueFewer:
		delta = -1
	case core.ActionRedMore:
		c = sim.Red
	case core.ActionRedFewer:
		c, delta = sim.Red, -1
	}
	if delta < 0 && res.Total(c) == 0 {
		return
	}
	res.AdjustTotal(c, delta)
	res.Adjust(c, delta)
}

// afterStep turns notable step results into status messages.
func (m *Model) afterStep(r sim.StepResult) {
	switch r.Status {
	case sim.Intercepted:
		m.message = "marble intercepted"
	case sim.BlueEmpty:
		m.message = "out of blue marbles"
	case sim.RedEmpty:
		m.message = "out of red marbles"
	}
}

// check runs the puzzle goal against the current board.
func (m *Model) check() {
	if m.puzzle == nil {
		m.message = "no puzzle loaded"
		return
	}
	b := m.session.Board()
	result := m.puzzle.Check(b, m.config.MaxSteps)
	if !result.Solved {
		m.message = fmt.Sprintf("got %q, want %q", result.Got, result.Want)
		return
	}
	parts := b.PartCount()
	m.message = fmt.Sprintf("solved with %d parts!", parts)
	if m.store == nil {
		return
	}
	code := codec.EncodeURL(b, m.marbles())
	if _, err := m.store.RecordSolve(m.puzzle.ID, parts, code); err != nil {
		m.logger.Warn("could not record solve", "puzzle", m.puzzle.ID, "error", err)
		return
	}
	if best, err := m.store.FewestParts(m.puzzle.ID); err == nil && best < parts {
		m.message += fmt.Sprintf(" (best: %d)", best)
	}
}

// marbles returns the reservoir totals for codes and snapshots.
func (m Model) marbles() codec.Marbles {
	res := m.session.Reservoir()
	return codec.Marbles{Blue: res.Total(sim.Blue), Red: res.Total(sim.Red)}
}

// shareLink returns the compact code, prefixed by the base URL if configured.
func (m Model) shareLink() string {
	code := codec.EncodeURL(m.session.Board(), m.marbles())
	if m.config.BaseURL == "" {
		return "code: " + code
	}
	return strings.TrimRight(m.config.BaseURL, "/") + "/b/" + code
}

// autosave stores a snapshot in the configured slot.
func (m Model) autosave() {
	if m.store == nil || m.config.Slot == "" {
		return
	}
	snapshot := codec.EncodeSnapshot(m.session.Board(), m.marbles())
	if err := m.store.SaveAutosave(m.config.Slot, snapshot); err != nil {
		m.logger.Warn("autosave failed", "slot", m.config.Slot, "error", err)
	}
}

// handleSaveKey processes input while the board name prompt is open.
func (m Model) handleSaveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeEdit
		m.prompt.Blur()
		m.message = "save cancelled"
		return m, nil
	case "enter":
		m.mode = modeEdit
		m.prompt.Blur()
		name := strings.TrimSpace(m.prompt.Value())
		if name == "" {
			m.message = "save cancelled"
			return m, nil
		}
		mb := m.marbles()
		code := codec.EncodeURL(m.session.Board(), codec.DefaultMarbleCounts())
		if _, err := m.store.SaveBoard(name, code, mb.Blue, mb.Red); err != nil {
			m.logger.Warn("could not save board", "name", name, "error", err)
			m.message = "save failed"
			return m, nil
		}
		m.message = fmt.Sprintf("saved %q", name)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// handleBoardsKey forwards input to the saved boards picker.
func (m Model) handleBoardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.boards, cmd = m.boards.Update(msg)

	if m.boards.IsQuitting() {
		m.autosave()
		m.quitting = true
		return m, tea.Quit
	}
	if chosen := m.boards.Chosen(); chosen != nil {
		m.loadSaved(*chosen)
		m.mode = modeEdit
		return m, nil
	}
	if m.boards.IsGoingBack() {
		m.mode = modeEdit
		return m, nil
	}
	return m, cmd
}

// loadSaved replaces the board with a saved one.
func (m *Model) loadSaved(sb storage.SavedBoard) {
	b, _ := codec.DecodeURL(m.session.Board().Topology(), sb.Code)
	m.clock.stop()
	m.session.LoadBoard(b)
	m.session.SetMarbles(sb.Blue, sb.Red)
	m.message = fmt.Sprintf("loaded %q", sb.Name)
	m.autosave()
}

// Panel styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle   = lipgloss.NewStyle().Padding(0, 2)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeBoards {
		return m.boards.View()
	}

	DrawBoard(m.screen, m.session, m.cursor)

	var b strings.Builder
	title := "TUMBLE"
	if m.puzzle != nil {
		title = fmt.Sprintf("TUMBLE - %s", m.puzzle.Name)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), panelStyle.Render(m.panel())))
	b.WriteString("\n")

	if m.mode == modeSave {
		b.WriteString("Save as: " + m.prompt.View())
	} else {
		b.WriteString(messageStyle.Render(m.message))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// panel renders the status lines beside the board.
func (m Model) panel() string {
	res := m.session.Reservoir()
	speed := m.clock.SpeedName()
	if m.clock.paused {
		speed += " (paused)"
	}
	p := palette[m.part]

	lines := []string{
		labelStyle.Render("Status: ") + m.session.Status().String(),
		labelStyle.Render("Speed:  ") + speed,
		labelStyle.Render("Steps:  ") + fmt.Sprint(m.session.Steps()),
		labelStyle.Render("Blue:   ") + fmt.Sprintf("%d/%d", res.Available(sim.Blue), res.Total(sim.Blue)),
		labelStyle.Render("Red:    ") + fmt.Sprintf("%d/%d", res.Available(sim.Red), res.Total(sim.Red)),
		labelStyle.Render("Part:   ") + colorStyles[partColor(p)].Render(string(p.Symbol())) + " " + p.String(),
		labelStyle.Render("Cursor: ") + m.cursor.String(),
		"",
		labelStyle.Render("Exits:  ") + exitStrip(m.session.Exits(), 16),
	}
	if m.puzzle != nil && m.puzzle.Goal != "" {
		lines = append(lines, labelStyle.Render("Goal:   ")+m.puzzle.Goal)
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// RestoreAutosave loads the board saved in slot for topology t.
// Returns false when there is no usable snapshot; a snapshot saved for
// another board size is ignored.
func RestoreAutosave(store *storage.Store, slot string, t board.Topology) (*board.Board, codec.Marbles, bool) {
	if store == nil || slot == "" {
		return nil, codec.Marbles{}, false
	}
	snapshot, err := store.LoadAutosave(slot)
	if err != nil {
		return nil, codec.Marbles{}, false
	}
	b, mb, err := codec.DecodeSnapshot(t, snapshot)
	if err != nil {
		return nil, codec.Marbles{}, false
	}
	return b, mb, true
}
