package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveAutosave("local", "11,11,20|..."); err != nil {
		t.Fatalf("SaveAutosave() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.LoadAutosave("local")
	if err != nil {
		t.Fatalf("LoadAutosave() failed: %v", err)
	}
	if got != "11,11,20|..." {
		t.Errorf("Expected snapshot to survive reopen, got %q", got)
	}
}

func TestStoreAutosave(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.LoadAutosave("local"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for empty slot, got %v", err)
	}

	if err := store.SaveAutosave("local", "first"); err != nil {
		t.Fatalf("SaveAutosave() failed: %v", err)
	}
	if err := store.SaveAutosave("local", "second"); err != nil {
		t.Fatalf("SaveAutosave() overwrite failed: %v", err)
	}
	if err := store.SaveAutosave("ssh-abc", "other"); err != nil {
		t.Fatalf("SaveAutosave() failed: %v", err)
	}

	got, err := store.LoadAutosave("local")
	if err != nil {
		t.Fatalf("LoadAutosave() failed: %v", err)
	}
	if got != "second" {
		t.Errorf("Expected latest snapshot, got %q", got)
	}

	if err := store.DeleteAutosave("local"); err != nil {
		t.Fatalf("DeleteAutosave() failed: %v", err)
	}
	if _, err := store.LoadAutosave("local"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected slot to be cleared, got %v", err)
	}
	// Other slots are untouched
	if got, _ := store.LoadAutosave("ssh-abc"); got != "other" {
		t.Errorf("Deleting one slot affected another: %q", got)
	}
	// Deleting twice is fine
	if err := store.DeleteAutosave("local"); err != nil {
		t.Errorf("DeleteAutosave() on empty slot failed: %v", err)
	}
}

func TestStoreSaveBoard(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveBoard("adder", "xxeb", 20, 20)
	if err != nil {
		t.Fatalf("SaveBoard() failed: %v", err)
	}
	if saved.ID == "" || saved.Name != "adder" || saved.Code != "xxeb" {
		t.Errorf("Unexpected saved board: %+v", saved)
	}

	// Saving the same name replaces the contents and keeps the ID
	again, err := store.SaveBoard("adder", "xxer", 5, 6)
	if err != nil {
		t.Fatalf("SaveBoard() overwrite failed: %v", err)
	}
	if again.ID != saved.ID {
		t.Errorf("Expected ID %s to be kept, got %s", saved.ID, again.ID)
	}
	if again.Code != "xxer" || again.Blue != 5 || again.Red != 6 {
		t.Errorf("Board not replaced: %+v", again)
	}

	byID, err := store.GetBoard(saved.ID)
	if err != nil {
		t.Fatalf("GetBoard(id) failed: %v", err)
	}
	if byID.Name != "adder" {
		t.Errorf("Expected lookup by ID to find adder, got %q", byID.Name)
	}

	if _, err := store.SaveBoard("", "x", 1, 1); err == nil {
		t.Error("Expected error for empty name")
	}
}

func TestStoreListAndDeleteBoards(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := store.SaveBoard(name, "r", 20, 20); err != nil {
			t.Fatalf("SaveBoard(%s) failed: %v", name, err)
		}
	}

	boards, err := store.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards() failed: %v", err)
	}
	if len(boards) != 3 {
		t.Fatalf("Expected 3 boards, got %d", len(boards))
	}
	// Should be sorted by name
	if boards[0].Name != "alpha" || boards[1].Name != "mid" || boards[2].Name != "zeta" {
		t.Errorf("Boards not sorted by name: %v", boards)
	}

	if err := store.DeleteBoard("mid"); err != nil {
		t.Fatalf("DeleteBoard() failed: %v", err)
	}
	if _, err := store.GetBoard("mid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteBoard("mid"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting missing board, got %v", err)
	}

	boards, _ = store.ListBoards()
	if len(boards) != 2 {
		t.Errorf("Expected 2 boards after delete, got %d", len(boards))
	}
}

func TestStoreSolves(t *testing.T) {
	store := openTestStore(t)

	// No solves yet
	fewest, err := store.FewestParts("flip-flop")
	if err != nil {
		t.Fatalf("FewestParts() failed: %v", err)
	}
	if fewest != 0 {
		t.Errorf("Expected 0 for unsolved puzzle, got %d", fewest)
	}

	for _, parts := range []int{7, 4, 9, 4} {
		if _, err := store.RecordSolve("flip-flop", parts, "code"); err != nil {
			t.Fatalf("RecordSolve() failed: %v", err)
		}
	}
	store.RecordSolve("gear-train", 2, "other")

	solves, err := store.BestSolves("flip-flop", 3)
	if err != nil {
		t.Fatalf("BestSolves() failed: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("Expected 3 solves with limit, got %d", len(solves))
	}
	// Fewest parts first, ties in insertion order
	if solves[0].Parts != 4 || solves[1].Parts != 4 || solves[2].Parts != 7 {
		t.Errorf("Solves not in expected order: %v", solves)
	}
	if solves[0].ID >= solves[1].ID {
		t.Errorf("Expected ties ordered by ID, got %d then %d", solves[0].ID, solves[1].ID)
	}

	fewest, err = store.FewestParts("flip-flop")
	if err != nil {
		t.Fatalf("FewestParts() failed: %v", err)
	}
	if fewest != 4 {
		t.Errorf("Expected fewest parts 4, got %d", fewest)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
