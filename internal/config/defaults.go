package config

import (
	_ "embed"
)

//go:embed defaults/balloons.yaml
var defaultBalloonYAML []byte

// DefaultBalloonConfig returns the built-in configuration.
// It mirrors defaults/balloons.yaml and is used when the embedded file cannot be decoded.
func DefaultBalloonConfig() BalloonConfig {
	return BalloonConfig{
		Loop: LoopConfig{
			TickMS:       20,
			SpawnCheckMS: 3500,
		},
		Rules: RulesConfig{
			Lives:            3,
			PointsPerCorrect: 10,
		},
		PlayArea: PlayAreaConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:    40,
			Speed:   6,
			OffsetX: 20,
			OffsetY: 60,
		},
		Balloons: BalloonsConfig{
			Radius:        28,
			Count:         4,
			SpeedMin:      1,
			SpeedMax:      2.5,
			SwayAmplitude: 8,
			SwayPeriodMS:  500,
			StartJitter:   80,
		},
		Questions: QuestionConfig{
			OperandMin:      1,
			OperandMax:      9,
			Operators:       []string{"+", "-", "*"},
			DistractorRange: 4,
		},
		Skins: []SkinConfig{
			{Name: "rainbow", Color: "bright_magenta", Frame: "()"},
			{Name: "star", Color: "bright_yellow", Frame: "**"},
			{Name: "happy_face", Color: "bright_cyan", Frame: "<>"},
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBalloonYAML
}
