package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
	"github.com/vovakirdan/tumble/internal/sim"
)

// Handler serves decoded boards and headless runs for share codes.
type Handler struct {
	topology board.Topology
	maxSteps int
}

// NewHandler creates a handler for boards of topology t. Runs never take
// more than maxSteps steps; a maxSteps <= 0 removes the limit.
func NewHandler(t board.Topology, maxSteps int) *Handler {
	return &Handler{topology: t, maxSteps: maxSteps}
}

// Health reports that the server is up.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Board decodes the code in the URL and describes the board.
func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	b, m := codec.DecodeURL(h.topology, code)

	writeJSON(w, http.StatusOK, BoardResponse{
		Code:   codec.EncodeURL(b, m),
		Width:  h.topology.W,
		Height: h.topology.H,
		Blue:   m.Blue,
		Red:    m.Red,
		Parts:  b.PartCount(),
		Rows:   rows(b),
	})
}

// Text writes the text layout of the code in the URL.
func (h *Handler) Text(w http.ResponseWriter, r *http.Request) {
	b, _ := codec.DecodeURL(h.topology, chi.URLParam(r, "code"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, codec.EncodeText(b))
}

// Run launches one marble on the posted board and runs it to completion.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	payload, err := decode[RunRequest](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	color := sim.Blue
	if payload.Color != "" {
		c, ok := sim.ParseColor(payload.Color)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown color %q", payload.Color))
			return
		}
		color = c
	}

	limit := h.maxSteps
	if payload.MaxSteps > 0 && (limit <= 0 || payload.MaxSteps < limit) {
		limit = payload.MaxSteps
	}

	b, m := codec.DecodeURL(h.topology, payload.Code)
	sess := sim.NewSession(b, sim.WithMarbles(m.Blue, m.Red))
	if !sess.Launch(color) {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("no %s marbles", strings.ToLower(color.String())))
		return
	}
	result := sess.Run(limit)

	exits := make([]Exit, len(result.Exits))
	for i, e := range result.Exits {
		exits[i] = Exit{Color: strings.ToLower(e.Color.String()), X: e.X}
	}

	writeJSON(w, http.StatusOK, RunResponse{
		Sequence: sim.Sequence(result.Exits),
		Exits:    exits,
		Steps:    result.Steps,
		Status:   result.Status.String(),
		Capped:   result.Capped,
		Code:     codec.EncodeURL(sess.Board(), m),
		Rows:     rows(sess.Board()),
	})
}

func rows(b *board.Board) []string {
	return strings.Split(strings.TrimSuffix(codec.EncodeText(b), "\n"), "\n")
}
