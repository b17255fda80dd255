// Package config provides YAML-based configuration loading for the balloon game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// BalloonConfig contains all tunable constants of the balloon math game.
type BalloonConfig struct {
	Loop      LoopConfig     `yaml:"loop"`
	Rules     RulesConfig    `yaml:"rules"`
	PlayArea  PlayAreaConfig `yaml:"play_area"`
	Player    PlayerConfig   `yaml:"player"`
	Balloons  BalloonsConfig `yaml:"balloons"`
	Questions QuestionConfig `yaml:"questions"`
	Skins     []SkinConfig   `yaml:"skins"`
	Audio     AudioConfig    `yaml:"audio"`
}

// LoopConfig defines the two periodic timers.
type LoopConfig struct {
	TickMS       int `yaml:"tick_ms"`        // Update/collision tick interval
	SpawnCheckMS int `yaml:"spawn_check_ms"` // Safety respawn check interval
}

// TickInterval returns the tick timer period.
func (l LoopConfig) TickInterval() time.Duration {
	return time.Duration(l.TickMS) * time.Millisecond
}

// SpawnCheckInterval returns the safety respawn timer period.
func (l LoopConfig) SpawnCheckInterval() time.Duration {
	return time.Duration(l.SpawnCheckMS) * time.Millisecond
}

// RulesConfig defines scoring and lives.
type RulesConfig struct {
	Lives            int `yaml:"lives"`
	PointsPerCorrect int `yaml:"points_per_correct"`
}

// PlayAreaConfig is the logical size of the play area.
// The terminal renderer scales it onto whatever grid is available.
type PlayAreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the catcher.
type PlayerConfig struct {
	Size    float64 `yaml:"size"`
	Speed   float64 `yaml:"speed"`    // Distance moved per key press
	OffsetX float64 `yaml:"offset_x"` // Start X = width/2 - offset_x
	OffsetY float64 `yaml:"offset_y"` // Y = height - offset_y
}

// BalloonsConfig defines falling balloon parameters.
type BalloonsConfig struct {
	Radius        float64 `yaml:"radius"`
	Count         int     `yaml:"count"`
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedMax      float64 `yaml:"speed_max"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwayPeriodMS  float64 `yaml:"sway_period_ms"`
	StartJitter   float64 `yaml:"start_jitter"` // Extra random height above the top edge
}

// QuestionConfig defines question generation.
type QuestionConfig struct {
	OperandMin      int      `yaml:"operand_min"`
	OperandMax      int      `yaml:"operand_max"`
	Operators       []string `yaml:"operators"`
	DistractorRange int      `yaml:"distractor_range"`
}

// SkinConfig is one balloon look. Frame holds exactly two runes drawn
// around the balloon's value, e.g. "()".
type SkinConfig struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Frame string `yaml:"frame"`
}

// AudioConfig toggles audio feedback.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// knownOperators lists operator symbols the question generator understands.
var knownOperators = map[string]bool{"+": true, "-": true, "*": true}

// Validate checks the configuration for values the game cannot run with.
// All problems are reported together.
func (c BalloonConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Loop.TickMS > 0, "loop.tick_ms must be positive, got %d", c.Loop.TickMS)
	check(c.Loop.SpawnCheckMS > 0, "loop.spawn_check_ms must be positive, got %d", c.Loop.SpawnCheckMS)
	check(c.Rules.Lives > 0, "rules.lives must be positive, got %d", c.Rules.Lives)
	check(c.Rules.PointsPerCorrect >= 0, "rules.points_per_correct must not be negative, got %d", c.Rules.PointsPerCorrect)
	check(c.PlayArea.Width > 0 && c.PlayArea.Height > 0,
		"play_area must have positive size, got %gx%g", c.PlayArea.Width, c.PlayArea.Height)
	check(c.Player.Size > 0, "player.size must be positive, got %g", c.Player.Size)
	check(c.Player.Size <= c.PlayArea.Width, "player.size %g exceeds play_area.width %g", c.Player.Size, c.PlayArea.Width)
	check(c.Player.Speed > 0, "player.speed must be positive, got %g", c.Player.Speed)
	check(c.Balloons.Radius > 0, "balloons.radius must be positive, got %g", c.Balloons.Radius)
	check(c.Balloons.Count > 0, "balloons.count must be positive, got %d", c.Balloons.Count)
	check(c.Balloons.SpeedMin > 0, "balloons.speed_min must be positive, got %g", c.Balloons.SpeedMin)
	check(c.Balloons.SpeedMax >= c.Balloons.SpeedMin,
		"balloons.speed_max %g is below speed_min %g", c.Balloons.SpeedMax, c.Balloons.SpeedMin)
	check(c.Balloons.SwayAmplitude >= 0, "balloons.sway_amplitude must not be negative, got %g", c.Balloons.SwayAmplitude)
	check(c.Balloons.SwayPeriodMS > 0, "balloons.sway_period_ms must be positive, got %g", c.Balloons.SwayPeriodMS)
	check(c.Balloons.StartJitter >= 0, "balloons.start_jitter must not be negative, got %g", c.Balloons.StartJitter)
	check(c.Questions.OperandMin <= c.Questions.OperandMax,
		"questions.operand_min %d is above operand_max %d", c.Questions.OperandMin, c.Questions.OperandMax)
	check(len(c.Questions.Operators) > 0, "questions.operators must not be empty")
	for _, op := range c.Questions.Operators {
		check(knownOperators[op], "questions.operators: unknown operator %q", op)
	}
	// Distractors come from a window of 2*range+1 values; the answer and the
	// negative side may be unusable, so the upper half alone must fit them.
	check(c.Questions.DistractorRange >= c.Balloons.Count-1,
		"questions.distractor_range %d cannot yield %d distinct distractors",
		c.Questions.DistractorRange, c.Balloons.Count-1)
	check(len(c.Skins) > 0, "skins must not be empty")

	return errors.Join(errs...)
}

// Usable reports whether a skin can be drawn as configured.
// Unusable skins fall back to the plain look at render time.
func (s SkinConfig) Usable() bool {
	return utf8.RuneCountInString(s.Frame) == 2
}
