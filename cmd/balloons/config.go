package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/balloon-math/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is searched in this order:
  1. --config <path>
  2. ~/.balloons/config.yaml
  3. ./configs/balloons.yaml
  4. Built-in defaults

Fields missing from a file keep their default values.

Examples:
  balloons config
  balloons config --defaults > ~/.balloons/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented default file instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		writeOut(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Encode(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	writeOut(data)
}

func writeOut(data []byte) {
	if _, err := os.Stdout.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
