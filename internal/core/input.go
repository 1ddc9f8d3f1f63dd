package core

// Action represents a semantic editor action, abstracted from physical key presses.
// Front-ends map keys to actions so the same bindings work locally and over SSH.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // Move cursor up
	ActionDown                 // Move cursor down
	ActionLeft                 // Move cursor left
	ActionRight                // Move cursor right
	ActionNextPart             // Cycle the selected part forward
	ActionPrevPart             // Cycle the selected part backward
	ActionPlace                // Put the selected part under the cursor
	ActionErase                // Clear the cell under the cursor
	ActionFlip                 // Flip the part under the cursor
	ActionLaunchBlue           // Release a blue marble
	ActionLaunchRed            // Release a red marble
	ActionStep                 // Advance one step
	ActionStepBack             // Undo one step
	ActionPause                // Toggle automatic stepping
	ActionFaster               // Next tick speed
	ActionSlower               // Previous tick speed
	ActionAbort                // Remove the rolling marble
	ActionResetMarbles         // Refill reservoir and clear exits
	ActionBlueMore             // Add a blue marble to the reservoir
	ActionBlueFewer            // Remove a blue marble from the reservoir
	ActionRedMore              // Add a red marble to the reservoir
	ActionRedFewer             // Remove a red marble from the reservoir
	ActionClearBoard           // Remove every part
	ActionCheck                // Check the puzzle goal
	ActionShare                // Show the share code
	ActionSave                 // Save the board under a name
	ActionBoards               // Open the saved boards picker
	ActionHelp                 // Toggle full help
	ActionQuit                 // Exit session
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionNextPart:     "NextPart",
	ActionPrevPart:     "PrevPart",
	ActionPlace:        "Place",
	ActionErase:        "Erase",
	ActionFlip:         "Flip",
	ActionLaunchBlue:   "LaunchBlue",
	ActionLaunchRed:    "LaunchRed",
	ActionStep:         "Step",
	ActionStepBack:     "StepBack",
	ActionPause:        "Pause",
	ActionFaster:       "Faster",
	ActionSlower:       "Slower",
	ActionAbort:        "Abort",
	ActionResetMarbles: "ResetMarbles",
	ActionBlueMore:     "BlueMore",
	ActionBlueFewer:    "BlueFewer",
	ActionRedMore:      "RedMore",
	ActionRedFewer:     "RedFewer",
	ActionClearBoard:   "ClearBoard",
	ActionCheck:        "Check",
	ActionShare:        "Share",
	ActionSave:         "Save",
	ActionBoards:       "Boards",
	ActionHelp:         "Help",
	ActionQuit:         "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// Edits reports whether the action changes the board.
func (a Action) Edits() bool {
	switch a {
	case ActionPlace, ActionErase, ActionFlip, ActionClearBoard:
		return true
	default:
		return false
	}
}
