package puzzles

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tumble/internal/puzzles/formats"
)

// Loader handles loading puzzles from a directory.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a new puzzle loader rooted at a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// newFSLoader creates a loader over an arbitrary file system.
func newFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{Root: root, fsys: fsys}
}

// LoadAll recursively scans and loads all puzzle files.
// Invalid files are skipped. Returns puzzles sorted by ID.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	var puzzles []Puzzle

	err := fs.WalkDir(l.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		p, err := l.loadFS(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		puzzles = append(puzzles, p)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})

	return puzzles, nil
}

func (l *Loader) loadFS(path string) (Puzzle, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parse(data, filepath.Join(l.Root, filepath.FromSlash(path)))
}

// LoadFile loads a single puzzle file from any path.
func (l *Loader) LoadFile(path string) (Puzzle, error) {
	return LoadFile(path)
}

// LoadFile loads a single puzzle file from disk.
func LoadFile(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (Puzzle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Puzzle{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return fromFormat(parsed, path)
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}

	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}

	return Puzzle{}, fmt.Errorf("puzzle not found: %s", id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(puzzles))
	for i, p := range puzzles {
		ids[i] = p.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Puzzle, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Puzzle{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
