// Package formats provides pluggable puzzle file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLPuzzle represents the YAML structure for a puzzle file.
type YAMLPuzzle struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Size        YAMLSize          `yaml:"size,omitempty"`
	Marbles     YAMLMarbles       `yaml:"marbles,omitempty"`
	Launch      string            `yaml:"launch,omitempty"`   // First lever: "blue" or "red"
	Goal        string            `yaml:"goal,omitempty"`     // Expected exit colours, e.g. "brbr"
	Board       string            `yaml:"board,omitempty"`    // Text layout
	Code        string            `yaml:"code,omitempty"`     // Compact code, used when Board is empty
	Solution    string            `yaml:"solution,omitempty"` // Compact code of a solved board
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLMarbles represents reservoir totals.
type YAMLMarbles struct {
	Blue int `yaml:"blue"`
	Red  int `yaml:"red"`
}

// Puzzle represents a parsed puzzle with defaults applied.
type Puzzle struct {
	ID          string
	Name        string
	Description string
	Width       int
	Height      int
	Blue        int
	Red         int
	Launch      string
	Goal        string
	Board       string
	Code        string
	Solution    string
	Metadata    map[string]string
}

// Defaults used when a puzzle file omits a field.
const (
	DefaultWidth   = 11
	DefaultHeight  = 11
	DefaultMarbles = 20
)

// ParseYAML parses a YAML puzzle file.
func ParseYAML(data []byte) (Puzzle, error) {
	var yp YAMLPuzzle
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yp.ID == "" {
		return Puzzle{}, fmt.Errorf("puzzle has no id")
	}
	if yp.Board != "" && yp.Code != "" {
		return Puzzle{}, fmt.Errorf("puzzle %s: board and code are mutually exclusive", yp.ID)
	}

	p := Puzzle{
		ID:          yp.ID,
		Name:        yp.Name,
		Description: yp.Description,
		Width:       yp.Size.W,
		Height:      yp.Size.H,
		Blue:        yp.Marbles.Blue,
		Red:         yp.Marbles.Red,
		Launch:      yp.Launch,
		Goal:        yp.Goal,
		Board:       yp.Board,
		Code:        yp.Code,
		Solution:    yp.Solution,
		Metadata:    yp.Metadata,
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Height <= 0 {
		p.Height = DefaultHeight
	}
	if p.Blue <= 0 && p.Red <= 0 {
		p.Blue, p.Red = DefaultMarbles, DefaultMarbles
	}
	if p.Launch == "" {
		p.Launch = "blue"
	}

	return p, nil
}

// MarshalYAML renders a puzzle back into file form.
func MarshalYAML(p Puzzle) ([]byte, error) {
	yp := YAMLPuzzle{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Size:        YAMLSize{W: p.Width, H: p.Height},
		Marbles:     YAMLMarbles{Blue: p.Blue, Red: p.Red},
		Launch:      p.Launch,
		Goal:        p.Goal,
		Board:       p.Board,
		Code:        p.Code,
		Solution:    p.Solution,
		Metadata:    p.Metadata,
	}
	data, err := yaml.Marshal(&yp)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
