package tui

import "strconv"

// overlay is the panel shown over the play area.
type overlay int

const (
	overlayStart overlay = iota
	overlayNone
	overlayGameOver
)

// hud implements balloons.Display and keeps what the View needs to draw
// the header and overlays.
type hud struct {
	score    string
	lives    string
	question string
	overlay  overlay

	finalScore int
	results    []int // Final scores of the games finished this session
}

func newHUD(lives int) *hud {
	return &hud{
		score:   "0",
		lives:   strconv.Itoa(lives),
		overlay: overlayStart,
	}
}

func (h *hud) Score(text string)    { h.score = text }
func (h *hud) Lives(text string)    { h.lives = text }
func (h *hud) Question(text string) { h.question = text }
func (h *hud) HideOverlay()         { h.overlay = overlayNone }

func (h *hud) GameOver(finalScore int) {
	h.overlay = overlayGameOver
	h.finalScore = finalScore
	h.results = append(h.results, finalScore)
}

// best returns the highest final score of the session.
func (h *hud) best() int {
	best := 0
	for _, s := range h.results {
		best = max(best, s)
	}
	return best
}
