package balloons

import "time"

// Surface is the play area the game runs on. A nil *Surface means the
// rendering surface is unavailable (e.g. the terminal is too small) and every
// operation that depends on it is a no-op.
type Surface struct {
	Width  float64
	Height float64
}

// Sprite is a balloon as it appears in a frame, with sway already applied to X.
type Sprite struct {
	X, Y    float64
	Value   int
	Variant int
}

// Frame is a read-only snapshot handed to the Renderer once per tick.
type Frame struct {
	Surface  Surface
	Player   Player
	Radius   float64
	Balloons []Sprite
}

// Renderer draws a frame. It must not keep references into the frame.
type Renderer interface {
	Draw(f Frame)
}

// Audio plays fire-and-forget feedback. Resume may complete asynchronously;
// the game never waits for it.
type Audio interface {
	Resume()
	Success()
	Failure()
}

// Display receives HUD updates. Score and lives arrive as stringified integers
// after every change; Question receives the text of each new question.
type Display interface {
	Score(text string)
	Lives(text string)
	Question(text string)
	GameOver(finalScore int)
	HideOverlay()
}

// Timer is a registered periodic callback.
type Timer interface {
	Stop()
}

// Scheduler registers periodic callbacks. Callbacks must be delivered on the
// same goroutine as every other game call, one at a time.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Timer
}

type nopRenderer struct{}

func (nopRenderer) Draw(Frame) {}

type nopAudio struct{}

func (nopAudio) Resume()  {}
func (nopAudio) Success() {}
func (nopAudio) Failure() {}

type nopDisplay struct{}

func (nopDisplay) Score(string)    {}
func (nopDisplay) Lives(string)    {}
func (nopDisplay) Question(string) {}
func (nopDisplay) GameOver(int)    {}
func (nopDisplay) HideOverlay()    {}

type nopTimer struct{}

func (nopTimer) Stop() {}

// nopScheduler never fires; the caller drives Tick and SpawnCheck manually.
type nopScheduler struct{}

func (nopScheduler) Every(time.Duration, func()) Timer { return nopTimer{} }
