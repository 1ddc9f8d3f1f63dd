package core

import "testing"

func TestActionString(t *testing.T) {
	if ActionLaunchBlue.String() != "LaunchBlue" {
		t.Errorf("unexpected name %q", ActionLaunchBlue.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unregistered action should be Unknown, got %q", Action(999).String())
	}
	for a := ActionNone; a <= ActionQuit; a++ {
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", a)
		}
	}
}

func TestActionEdits(t *testing.T) {
	edits := map[Action]bool{
		ActionPlace:      true,
		ActionErase:      true,
		ActionFlip:       true,
		ActionClearBoard: true,
		ActionStep:       false,
		ActionLaunchRed:  false,
		ActionUp:         false,
	}
	for a, want := range edits {
		if a.Edits() != want {
			t.Errorf("%s.Edits() = %v, expected %v", a, a.Edits(), want)
		}
	}
}
