package puzzles

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Info contains metadata about a registered puzzle.
type Info struct {
	ID   string
	Name string
	Goal string
	Path string // Empty for built-ins
}

var (
	registered = make(map[string]Puzzle)
	mu         sync.RWMutex
)

func init() {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("puzzles: builtin dir: %v", err))
	}
	all, err := newFSLoader(sub, "builtin").LoadAll()
	if err != nil {
		panic(fmt.Sprintf("puzzles: loading builtins: %v", err))
	}
	for _, p := range all {
		p.FilePath = ""
		Register(p)
	}
}

// Register adds a puzzle to the registry.
// Panics if a puzzle with the same ID is already registered.
func Register(p Puzzle) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[p.ID]; exists {
		panic(fmt.Sprintf("puzzles: puzzle %q already registered", p.ID))
	}
	registered[p.ID] = p
}

// List returns information about all registered puzzles, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for id, p := range registered {
		result = append(result, Info{
			ID:   id,
			Name: p.Name,
			Goal: p.Goal,
			Path: p.FilePath,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered puzzle by its ID.
func Get(id string) (Puzzle, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := registered[id]
	if !ok {
		return Puzzle{}, fmt.Errorf("puzzles: unknown puzzle %q", id)
	}
	return p, nil
}

// Exists checks if a puzzle with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}

// RegisterDir loads every puzzle under root and registers those whose IDs
// are not taken yet. Returns the number of puzzles added.
func RegisterDir(root string) (int, error) {
	all, err := NewLoader(root).LoadAll()
	if err != nil {
		return 0, err
	}
	added := 0
	for _, p := range all {
		if Exists(p.ID) {
			continue
		}
		Register(p)
		added++
	}
	return added, nil
}
