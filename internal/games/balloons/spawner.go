package balloons

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-math/internal/config"
)

// Balloon is a falling answer candidate.
type Balloon struct {
	X, Y      float64 // Top-left of the bounding box, before sway
	Value     int
	Speed     float64 // Distance fallen per tick
	SwayPhase float64 // In [0, 2π)
	Variant   int     // Skin index
}

// Spawner creates a batch of balloons for a question.
type Spawner struct {
	rng      *rand.Rand
	cfg      config.BalloonsConfig
	spread   int
	variants int
	logger   *log.Logger
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.BalloonConfig, logger *log.Logger) *Spawner {
	return &Spawner{
		rng:      rng,
		cfg:      cfg.Balloons,
		spread:   cfg.Questions.DistractorRange,
		variants: len(cfg.Skins),
		logger:   logger,
	}
}

// Spawn returns a fresh batch of balloons for q, one per choice value, evenly
// spaced across the surface and starting above its top edge.
// Without a question or a surface it returns existing unchanged.
func (s *Spawner) Spawn(q *Question, surface *Surface, existing []Balloon) []Balloon {
	return safeExecute(s.logger, "spawning balloons", existing, func() []Balloon {
		if q == nil || surface == nil {
			return existing
		}

		choices := BuildChoices(s.rng, q.Answer, s.cfg.Count, s.spread)
		slot := surface.Width / float64(len(choices))
		r := s.cfg.Radius

		batch := make([]Balloon, len(choices))
		for i, value := range choices {
			batch[i] = Balloon{
				X:         float64(i)*slot + slot/2 - r,
				Y:         -(r*2 + s.rng.Float64()*s.cfg.StartJitter),
				Value:     value,
				Speed:     s.cfg.SpeedMin + s.rng.Float64()*(s.cfg.SpeedMax-s.cfg.SpeedMin),
				SwayPhase: s.rng.Float64() * 2 * math.Pi,
				Variant:   s.variant(),
			}
		}
		return batch
	})
}

func (s *Spawner) variant() int {
	if s.variants <= 1 {
		return 0
	}
	return s.rng.Intn(s.variants)
}
