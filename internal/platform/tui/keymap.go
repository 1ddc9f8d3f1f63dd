package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/core"
)

// KeyMap defines the key bindings of the board editor.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	NextPart     key.Binding
	PrevPart     key.Binding
	SelectPart   key.Binding
	Place        key.Binding
	Erase        key.Binding
	Flip         key.Binding
	LaunchBlue   key.Binding
	LaunchRed    key.Binding
	Step         key.Binding
	StepBack     key.Binding
	Pause        key.Binding
	Faster       key.Binding
	Slower       key.Binding
	Abort        key.Binding
	ResetMarbles key.Binding
	BlueMore     key.Binding
	BlueFewer    key.Binding
	RedMore      key.Binding
	RedFewer     key.Binding
	ClearBoard   key.Binding
	Check        key.Binding
	Share        key.Binding
	Save         key.Binding
	Boards       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LaunchBlue, k.LaunchRed, k.Pause, k.Step, k.Place, k.Flip, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.SelectPart, k.NextPart, k.PrevPart, k.Place, k.Erase, k.Flip, k.ClearBoard},
		{k.LaunchBlue, k.LaunchRed, k.Step, k.StepBack, k.Pause, k.Faster, k.Slower},
		{k.Abort, k.ResetMarbles, k.BlueMore, k.BlueFewer, k.RedMore, k.RedFewer},
		{k.Check, k.Share, k.Save, k.Boards},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "cursor right"),
		),
		NextPart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next part"),
		),
		PrevPart: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev part"),
		),
		SelectPart: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "select part"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("space", "place"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace", "delete", "x"),
			key.WithHelp("x", "erase"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flip"),
		),
		LaunchBlue: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "launch blue"),
		),
		LaunchRed: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "launch red"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "."),
			key.WithHelp("n", "step"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("N", ","),
			key.WithHelp("N", "step back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Abort: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "abort marble"),
		),
		ResetMarbles: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset marbles"),
		),
		BlueMore: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "more blue"),
		),
		BlueFewer: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "fewer blue"),
		),
		RedMore: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "more red"),
		),
		RedFewer: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "fewer red"),
		),
		ClearBoard: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear board"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check puzzle"),
		),
		Share: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "share code"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save board"),
		),
		Boards: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "saved boards"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an editor action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.NextPart, core.ActionNextPart},
		{k.PrevPart, core.ActionPrevPart},
		{k.Place, core.ActionPlace},
		{k.Erase, core.ActionErase},
		{k.Flip, core.ActionFlip},
		{k.LaunchBlue, core.ActionLaunchBlue},
		{k.LaunchRed, core.ActionLaunchRed},
		{k.Step, core.ActionStep},
		{k.StepBack, core.ActionStepBack},
		{k.Pause, core.ActionPause},
		{k.Faster, core.ActionFaster},
		{k.Slower, core.ActionSlower},
		{k.Abort, core.ActionAbort},
		{k.ResetMarbles, core.ActionResetMarbles},
		{k.BlueMore, core.ActionBlueMore},
		{k.BlueFewer, core.ActionBlueFewer},
		{k.RedMore, core.ActionRedMore},
		{k.RedFewer, core.ActionRedFewer},
		{k.ClearBoard, core.ActionClearBoard},
		{k.Check, core.ActionCheck},
		{k.Share, core.ActionShare},
		{k.Save, core.ActionSave},
		{k.Boards, core.ActionBoards},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// palette is the order parts are cycled through in the editor.
// Digit keys select the first six directly.
var palette = []board.Part{
	board.RampLeft,
	board.BitLeft,
	board.Crossover,
	board.Interceptor,
	board.GearBitLeft,
	board.GearLeft,
	board.RampRight,
	board.BitRight,
	board.GearBitRight,
	board.GearRight,
}

// paletteIndex returns the palette position selected by a digit key.
func (k KeyMap) paletteIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, k.SelectPart) {
		return 0, false
	}
	i := int(msg.String()[0] - '1')
	if i < 0 || i >= len(palette) {
		return 0, false
	}
	return i, true
}
