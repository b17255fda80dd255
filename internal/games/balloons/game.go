// Package balloons implements the balloon math catch game.
// Balloons labeled with candidate answers fall from the top of the play area;
// the player steers a catcher under the one carrying the answer to the current
// question and lets the wrong ones fall.
package balloons

import (
	"io"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
)

// Deps are the collaborators of a Game. Nil fields get no-op implementations.
type Deps struct {
	Renderer  Renderer
	Audio     Audio
	Display   Display
	Scheduler Scheduler
	Rand      *rand.Rand
	Clock     func() time.Time
	Logger    *log.Logger
}

// Game owns the game state and every transition of it. All methods must be
// called from a single goroutine; the scheduler delivers timer callbacks there.
type Game struct {
	cfg     config.BalloonConfig
	state   State
	surface *Surface
	round   int

	rng      *rand.Rand
	spawner  *Spawner
	clock    func() time.Time
	renderer Renderer
	audio    Audio
	display  Display
	sched    Scheduler
	logger   *log.Logger

	tickTimer  Timer
	spawnTimer Timer
}

// New creates a stopped game. Call AttachSurface and Start to play.
func New(cfg config.BalloonConfig, deps Deps) *Game {
	g := &Game{
		cfg:      cfg,
		rng:      deps.Rand,
		clock:    deps.Clock,
		renderer: deps.Renderer,
		audio:    deps.Audio,
		display:  deps.Display,
		sched:    deps.Scheduler,
		logger:   deps.Logger,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.audio == nil {
		g.audio = nopAudio{}
	}
	if g.display == nil {
		g.display = nopDisplay{}
	}
	if g.sched == nil {
		g.sched = nopScheduler{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.spawner = NewSpawner(g.rng, cfg, g.logger)
	g.state.Lives = cfg.Rules.Lives
	return g
}

// State returns a copy of the current game state.
func (g *Game) State() State {
	return g.state.clone()
}

// Running reports whether a game is in progress.
func (g *Game) Running() bool {
	return g.state.Running
}

// Round returns the number of rounds started since the last Start.
func (g *Game) Round() int {
	return g.round
}

// AttachSurface makes the play area available.
func (g *Game) AttachSurface(s Surface) {
	g.surface = &s
}

// DetachSurface marks the play area unavailable. Ticks, spawns and input
// become no-ops until a surface is attached again.
func (g *Game) DetachSurface() {
	g.surface = nil
}

// HasSurface reports whether a play area is attached.
func (g *Game) HasSurface() bool {
	return g.surface != nil
}

// Start begins a new game: fresh state, the first question and batch, and
// both timers armed. It does nothing while a game is running or without a
// surface, and reports whether a game was started.
func (g *Game) Start() bool {
	if g.state.Running {
		g.logger.Debug("start ignored: game already running")
		return false
	}
	if g.surface == nil {
		g.logger.Warn("start ignored: no play surface")
		return false
	}

	return safeExecute(g.logger, "game initialization", false, func() bool {
		g.reset()
		g.state.Player = newPlayer(*g.surface, g.cfg.Player)

		q := g.nextQuestion()
		g.state.Balloons = g.spawner.Spawn(&q, g.surface, nil)
		g.state.Running = true

		g.armTimers()
		g.audio.Resume()
		g.display.HideOverlay()
		g.pushInfo()

		g.logger.Info("game started", "question", q.Text, "lives", g.state.Lives)
		return true
	})
}

// Restart starts a new game after game over. It has the same effect and the
// same guards as Start.
func (g *Game) Restart() bool {
	return g.Start()
}

// Stop halts the game immediately and clears both timers.
func (g *Game) Stop() {
	g.stopTimers()
	g.state.Running = false
}

// Tick advances the world by one fixed step. Passes run in a fixed order:
// render, advance, off-screen misses, collisions, round transition.
// A balloon that is both off-screen and touching the catcher counts as a miss.
func (g *Game) Tick() {
	if !g.state.Running || g.surface == nil || g.state.Player == nil {
		return
	}

	clockMS := g.clockMS()
	g.render(clockMS)

	for i := range g.state.Balloons {
		g.state.Balloons[i].Y += g.state.Balloons[i].Speed
	}

	g.resolveMisses()
	if !g.state.Running {
		return
	}

	g.resolveCatches(clockMS)
	if !g.state.Running {
		return
	}

	g.advanceRound("cleared")
}

// SpawnCheck is the safety-net timer callback: it starts the next round if
// the balloon collection is empty and does nothing otherwise.
func (g *Game) SpawnCheck() {
	g.advanceRound("safety timer")
}

// render hands a snapshot of the current frame to the renderer.
func (g *Game) render(clockMS float64) {
	safeRun(g.logger, "drawing frame", func() {
		sprites := make([]Sprite, len(g.state.Balloons))
		for i, b := range g.state.Balloons {
			sprites[i] = Sprite{
				X:       g.swayX(b, clockMS),
				Y:       b.Y,
				Value:   b.Value,
				Variant: b.Variant,
			}
		}
		g.renderer.Draw(Frame{
			Surface:  *g.surface,
			Player:   *g.state.Player,
			Radius:   g.cfg.Balloons.Radius,
			Balloons: sprites,
		})
	})
}

// resolveMisses removes balloons that fell below the surface. Letting the
// correct answer fall costs a life; distractors fall for free.
func (g *Game) resolveMisses() {
	kept := make([]Balloon, 0, len(g.state.Balloons))
	var missed []Balloon
	for _, b := range g.state.Balloons {
		if b.Y > g.surface.Height {
			missed = append(missed, b)
			continue
		}
		kept = append(kept, b)
	}
	g.state.Balloons = kept

	for _, b := range missed {
		if !g.isCorrect(b) {
			continue
		}
		g.logger.Debug("correct balloon missed", "value", b.Value)
		g.loseLife()
		if !g.state.Running {
			return
		}
	}
}

// resolveCatches removes every balloon overlapping the catcher and scores it.
// Once a catch ends the game the remaining balloons are left untouched.
func (g *Game) resolveCatches(clockMS float64) {
	if g.state.Question == nil {
		return
	}

	catcher := g.state.Player.Box()
	diameter := g.cfg.Balloons.Radius * 2
	balloons := g.state.Balloons
	kept := make([]Balloon, 0, len(balloons))

	for i, b := range balloons {
		if !g.state.Running {
			kept = append(kept, balloons[i:]...)
			break
		}
		box := core.NewBox(g.swayX(b, clockMS), b.Y, diameter, diameter)
		if !catcher.Overlaps(box) {
			kept = append(kept, b)
			continue
		}
		g.catch(b)
	}
	g.state.Balloons = kept
}

// catch scores a caught balloon.
func (g *Game) catch(b Balloon) {
	if g.isCorrect(b) {
		g.state.Score += g.cfg.Rules.PointsPerCorrect
		g.logger.Debug("correct balloon caught", "value", b.Value, "score", g.state.Score)
		g.audio.Success()
	} else {
		g.logger.Debug("wrong balloon caught", "value", b.Value, "answer", g.state.Question.Answer)
		g.loseLife()
		g.audio.Failure()
	}
	g.pushInfo()
}

// loseLife removes one life and ends the game when none are left.
// It reports whether the game is over.
func (g *Game) loseLife() bool {
	g.state.Lives = max(0, g.state.Lives-1)
	g.pushInfo()
	if g.state.Lives == 0 && g.state.Running {
		g.gameOver()
	}
	return g.state.Lives == 0
}

// gameOver is terminal until the next Start.
func (g *Game) gameOver() {
	g.stopTimers()
	g.state.Running = false
	g.display.GameOver(g.state.Score)
	g.logger.Info("game over", "score", g.state.Score, "rounds", g.round)
}

// advanceRound generates the next question and batch, but only when no
// balloons are left. Both the tick and the safety timer call it.
func (g *Game) advanceRound(trigger string) bool {
	if !g.state.Running || len(g.state.Balloons) != 0 {
		return false
	}

	q := g.nextQuestion()
	g.state.Balloons = g.spawner.Spawn(&q, g.surface, nil)
	g.pushInfo()

	g.logger.Debug("next round", "trigger", trigger, "round", g.round, "question", q.Text)
	return true
}

// nextQuestion replaces the current question and publishes its text.
func (g *Game) nextQuestion() Question {
	q := NewQuestion(g.rng, g.cfg.Questions)
	g.state.Question = &q
	g.round++
	g.display.Question(q.Text)
	return q
}

func (g *Game) isCorrect(b Balloon) bool {
	return g.state.Question != nil && b.Value == g.state.Question.Answer
}

// swayX is the horizontal position of a balloon including sway. Rendering
// and collision share it so hits match what is on screen.
func (g *Game) swayX(b Balloon, clockMS float64) float64 {
	bc := g.cfg.Balloons
	return b.X + math.Sin(clockMS/bc.SwayPeriodMS+b.SwayPhase)*bc.SwayAmplitude
}

func (g *Game) clockMS() float64 {
	return float64(g.clock().UnixMilli())
}

func (g *Game) pushInfo() {
	g.display.Score(strconv.Itoa(g.state.Score))
	g.display.Lives(strconv.Itoa(g.state.Lives))
}

func (g *Game) reset() {
	g.stopTimers()
	g.state = State{Lives: g.cfg.Rules.Lives}
	g.round = 0
}

// armTimers replaces any registered timers with fresh ones.
func (g *Game) armTimers() {
	stopTimer(&g.tickTimer)
	g.tickTimer = g.sched.Every(g.cfg.Loop.TickInterval(), g.Tick)
	stopTimer(&g.spawnTimer)
	g.spawnTimer = g.sched.Every(g.cfg.Loop.SpawnCheckInterval(), g.SpawnCheck)
}

func (g *Game) stopTimers() {
	stopTimer(&g.tickTimer)
	stopTimer(&g.spawnTimer)
}

func stopTimer(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}
