package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vovakirdan/tumble/internal/board"
	"github.com/vovakirdan/tumble/internal/codec"
)

func newTestServer(t *testing.T, maxSteps int) *httptest.Server {
	t.Helper()
	s := NewServer(Config{Topology: board.DefaultTopology(), MaxSteps: maxSteps}, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postRun(t *testing.T, ts *httptest.Server, body string) (*http.Response, RunResponse) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/run", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/run: %v", err)
	}
	defer resp.Body.Close()

	var out RunResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decoding run response: %v", err)
		}
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestBoard(t *testing.T) {
	b := board.NewDefault()
	b.Set(2, 1, board.BitRight)
	code := codec.EncodeURL(b, codec.Marbles{Blue: 3, Red: 2})

	ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/api/boards/" + code)
	if err != nil {
		t.Fatalf("GET board: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var out BoardResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Code != code {
		t.Errorf("code = %q, expected %q", out.Code, code)
	}
	if out.Width != 11 || out.Height != 11 {
		t.Errorf("size = %dx%d", out.Width, out.Height)
	}
	if out.Blue != 3 || out.Red != 2 {
		t.Errorf("marbles = %d/%d", out.Blue, out.Red)
	}
	if out.Parts != 1 {
		t.Errorf("parts = %d, expected 1", out.Parts)
	}
	if len(out.Rows) != 11 {
		t.Fatalf("rows = %d, expected 11", len(out.Rows))
	}
	if out.Rows[1][2] != '>' {
		t.Errorf("row 1 = %q, expected '>' at column 2", out.Rows[1])
	}
}

func TestText(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/b/_1_1")
	if err != nil {
		t.Fatalf("GET text: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if want := codec.EncodeText(board.NewDefault()); buf.String() != want {
		t.Errorf("body = %q, expected %q", buf.String(), want)
	}
}

func TestRun(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, out := postRun(t, ts, `{"code":"_1_1","color":"blue"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	// One blue marble falls straight through; the next blue is missing.
	if out.Sequence != "b" {
		t.Errorf("sequence = %q, expected b", out.Sequence)
	}
	if out.Steps != 14 {
		t.Errorf("steps = %d, expected 14", out.Steps)
	}
	if out.Status != "BlueEmpty" {
		t.Errorf("status = %q", out.Status)
	}
	if out.Capped {
		t.Error("run should not be capped")
	}
	if len(out.Exits) != 1 || out.Exits[0].Color != "blue" {
		t.Errorf("exits = %+v", out.Exits)
	}
}

func TestRunDefaultsToBlue(t *testing.T) {
	ts := newTestServer(t, 0)
	_, out := postRun(t, ts, `{"code":"_1_0"}`)
	if out.Sequence != "b" {
		t.Errorf("sequence = %q", out.Sequence)
	}
}

func TestRunStepLimit(t *testing.T) {
	tests := []struct {
		name      string
		serverMax int
		body      string
		want      int
	}{
		{"request limit", 0, `{"code":"","max_steps":5}`, 5},
		{"server limit", 10, `{"code":""}`, 10},
		{"request below server", 10, `{"code":"","max_steps":3}`, 3},
		{"request above server", 10, `{"code":"","max_steps":50}`, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, tt.serverMax)
			resp, out := postRun(t, ts, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			if out.Steps != tt.want || !out.Capped {
				t.Errorf("steps = %d capped = %v, expected %d capped", out.Steps, out.Capped, tt.want)
			}
			if out.Status != "Rolling" {
				t.Errorf("status = %q", out.Status)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{"code":`, http.StatusBadRequest},
		{"unknown field", `{"code":"","speed":3}`, http.StatusBadRequest},
		{"unknown color", `{"code":"","color":"green"}`, http.StatusBadRequest},
		{"empty reservoir", `{"code":"_0_4","color":"blue"}`, http.StatusUnprocessableEntity},
	}
	ts := newTestServer(t, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := postRun(t, ts, tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, expected %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, 0)
	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/run", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, 0)
	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
