package tui

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestHUDGameOver(t *testing.T) {
	h := newHUD(3)
	if h.overlay != overlayStart || h.lives != "3" || h.score != "0" {
		t.Fatalf("new hud = %+v", h)
	}

	h.HideOverlay()
	h.GameOver(20)
	h.GameOver(50)
	h.GameOver(10)

	if h.overlay != overlayGameOver || h.finalScore != 10 {
		t.Errorf("overlay=%v final=%d, want game over with 10", h.overlay, h.finalScore)
	}
	if h.best() != 50 {
		t.Errorf("best = %d, want 50", h.best())
	}
}

func TestSessionBoard(t *testing.T) {
	results := []int{10, 70, 30, 0, 20, 40, 50}
	rows := sessionBoard(results, 70).Rows()

	if len(rows) != maxBoardRows {
		t.Fatalf("got %d rows, want %d", len(rows), maxBoardRows)
	}
	if rows[0][0] != "#7" || rows[0][1] != "50" {
		t.Errorf("first row = %v, want the latest game", rows[0])
	}
	if rows[4][0] != "#3" || rows[4][2] != "" {
		t.Errorf("last row = %v", rows[4])
	}

	rows = sessionBoard([]int{10, 70}, 70).Rows()
	if rows[0][2] != "best" || rows[1][2] != "" {
		t.Errorf("best marker misplaced: %v", rows)
	}
}

func TestBellAudio(t *testing.T) {
	var buf bytes.Buffer
	a := &bellAudio{out: &buf, probe: func() bool { return true }, logger: log.New(io.Discard)}

	a.Success()
	if buf.Len() != 0 {
		t.Error("bell rang before Resume")
	}

	a.Resume()
	deadline := time.Now().Add(time.Second)
	for !a.ready.Load() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	a.Success()
	a.Failure()
	if got := buf.String(); got != "\a\a\a" {
		t.Errorf("bell output = %q, want three rings", got)
	}
}

func TestBellAudioWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	probed := make(chan struct{})
	a := &bellAudio{
		out:    &buf,
		probe:  func() bool { close(probed); return false },
		logger: log.New(io.Discard),
	}

	a.Resume()
	<-probed
	a.Success()

	if buf.Len() != 0 {
		t.Error("bell rang without a terminal")
	}
}
