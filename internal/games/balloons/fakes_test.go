package balloons

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/balloon-math/internal/config"
)

type fakeTimer struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) Timer {
	t := &fakeTimer{interval: interval, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) live() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

type recordingAudio struct {
	resumes, successes, failures int
}

func (a *recordingAudio) Resume()  { a.resumes++ }
func (a *recordingAudio) Success() { a.successes++ }
func (a *recordingAudio) Failure() { a.failures++ }

type recordingDisplay struct {
	score, lives, question string
	gameOvers              []int
	hides                  int
}

func (d *recordingDisplay) Score(s string)     { d.score = s }
func (d *recordingDisplay) Lives(s string)     { d.lives = s }
func (d *recordingDisplay) Question(s string)  { d.question = s }
func (d *recordingDisplay) GameOver(score int) { d.gameOvers = append(d.gameOvers, score) }
func (d *recordingDisplay) HideOverlay()       { d.hides++ }

type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Draw(f Frame) { r.frames = append(r.frames, f) }

type panickingRenderer struct{}

func (panickingRenderer) Draw(Frame) { panic("boom") }

type harness struct {
	game     *Game
	sched    *fakeScheduler
	audio    *recordingAudio
	display  *recordingDisplay
	renderer *recordingRenderer
}

// testConfig is the default config without sway, so collision boxes sit
// exactly where the balloons are placed.
func testConfig() config.BalloonConfig {
	cfg := config.DefaultBalloonConfig()
	cfg.Balloons.SwayAmplitude = 0
	return cfg
}

func newHarness(t *testing.T, cfg config.BalloonConfig) *harness {
	t.Helper()
	h := &harness{
		sched:    &fakeScheduler{},
		audio:    &recordingAudio{},
		display:  &recordingDisplay{},
		renderer: &recordingRenderer{},
	}
	h.game = New(cfg, Deps{
		Renderer:  h.renderer,
		Audio:     h.audio,
		Display:   h.display,
		Scheduler: h.sched,
		Rand:      rand.New(rand.NewSource(42)),
		Clock:     func() time.Time { return time.UnixMilli(0) },
	})
	h.game.AttachSurface(Surface{Width: cfg.PlayArea.Width, Height: cfg.PlayArea.Height})
	return h
}

// started returns a running harness with a known question and no balloons.
func started(t *testing.T, cfg config.BalloonConfig, answer int) *harness {
	t.Helper()
	h := newHarness(t, cfg)
	if !h.game.Start() {
		t.Fatal("Start() = false, want true")
	}
	h.game.state.Question = &Question{Left: answer, Right: 0, Op: OpAdd, Answer: answer}
	h.game.state.Balloons = nil
	return h
}

// onPlayer returns a balloon overlapping the catcher after one tick.
func (h *harness) onPlayer(value int) Balloon {
	p := h.game.state.Player
	return Balloon{X: p.X, Y: p.Y, Value: value}
}
