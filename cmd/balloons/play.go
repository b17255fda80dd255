package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/balloon-math/internal/config"
	"github.com/vovakirdan/balloon-math/internal/core"
	"github.com/vovakirdan/balloon-math/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Balloon Math.

Controls:
  Left/A, Right/D   - Move the catcher
  Mouse             - Move the catcher under the pointer
  Enter/Space/Click - Start
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  balloons play
  balloons play --seed 42
  balloons play --config ./my-balloons.yaml --log balloons.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size early so the first frame fits
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rc,
		Logger:  logger,
		Mute:    flagMute,
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
