// balloons is a terminal math game: catch the balloon carrying the answer.
//
// Usage:
//
//	balloons                 - Play
//	balloons play            - Play
//	balloons config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log <path>        - Write logs to a file (default: discarded)
//	--log-level <level> - debug, info, warn or error (default: info)
//	--mute              - Disable the terminal bell
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloons",
	Short: "Balloon Math - catch the right answer in your terminal",
	Long: `Balloon Math is a terminal arithmetic game. Balloons labeled with
candidate answers fall from the sky; steer the catcher under the one that
answers the question and let the wrong ones fall.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration

Examples:
  balloons
  balloons --seed 42
  balloons play --config ./my-balloons.yaml
  balloons config > ~/.balloons/config.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
