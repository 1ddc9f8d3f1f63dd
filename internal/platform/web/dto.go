package web

// BoardResponse describes a decoded share code.
type BoardResponse struct {
	Code   string   `json:"code"`   // Canonical code, re-encoded
	Width  int      `json:"width"`  // Board width in cells
	Height int      `json:"height"` // Board height in cells
	Blue   int      `json:"blue"`   // Blue marbles in the reservoir
	Red    int      `json:"red"`    // Red marbles in the reservoir
	Parts  int      `json:"parts"`  // Non-empty cells
	Rows   []string `json:"rows"`   // Text layout, one string per row
}

// RunRequest asks for a headless run of a board.
type RunRequest struct {
	Code     string `json:"code"`
	Color    string `json:"color"`     // "blue" or "red"; blue when empty
	MaxSteps int    `json:"max_steps"` // 0 uses the server limit
}

// Exit is one marble leaving the board.
type Exit struct {
	Color string `json:"color"`
	X     int    `json:"x"`
}

// RunResponse reports the outcome of a headless run.
type RunResponse struct {
	Sequence string   `json:"sequence"` // Exit colours as 'b'/'r'
	Exits    []Exit   `json:"exits"`
	Steps    int      `json:"steps"`
	Status   string   `json:"status"`
	Capped   bool     `json:"capped"` // Step limit hit while still rolling
	Code     string   `json:"code"`   // Board after the run; bits may have flipped
	Rows     []string `json:"rows"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
