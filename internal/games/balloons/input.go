package balloons

import (
	"github.com/vovakirdan/balloon-math/internal/core"
)

// MoveLeft moves the catcher one step left.
func (g *Game) MoveLeft() {
	if p := g.controllable(); p != nil {
		p.X = g.clampX(p.X - p.Speed)
	}
}

// MoveRight moves the catcher one step right.
func (g *Game) MoveRight() {
	if p := g.controllable(); p != nil {
		p.X = g.clampX(p.X + p.Speed)
	}
}

// PointerMove centers the catcher on a pointer position given in play area
// coordinates.
func (g *Game) PointerMove(x float64) {
	if p := g.controllable(); p != nil {
		p.X = g.clampX(x - p.Size/2)
	}
}

// controllable returns the player if input should be applied right now.
func (g *Game) controllable() *Player {
	if !g.state.Running || g.surface == nil {
		return nil
	}
	return g.state.Player
}

// clampX keeps the catcher fully inside the surface.
func (g *Game) clampX(x float64) float64 {
	return core.ClampF(x, 0, g.surface.Width-g.state.Player.Size)
}
