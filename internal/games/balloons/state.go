package balloons

import (
	"slices"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
)

// Player is the catcher. Only X changes after creation.
type Player struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// newPlayer places the catcher centered near the bottom of the surface.
func newPlayer(s Surface, cfg config.PlayerConfig) *Player {
	return &Player{
		X:     s.Width/2 - cfg.OffsetX,
		Y:     s.Height - cfg.OffsetY,
		Size:  cfg.Size,
		Speed: cfg.Speed,
	}
}

// Box returns the catcher's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// State is the mutable game aggregate. Nil pointers mean "absent": no player
// before the first start, no question before the first round.
type State struct {
	Player   *Player
	Balloons []Balloon
	Question *Question
	Score    int
	Lives    int
	Running  bool
}

// clone returns a copy that shares nothing mutable with s.
func (s State) clone() State {
	out := s
	out.Balloons = slices.Clone(s.Balloons)
	if s.Player != nil {
		p := *s.Player
		out.Player = &p
	}
	if s.Question != nil {
		q := *s.Question
		out.Question = &q
	}
	return out
}
