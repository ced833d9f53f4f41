// flappy is Flappy Dragon, a flap-through-the-gap arcade game for the terminal.
//
// Usage:
//
//	flappy play     - Play in this terminal
//	flappy serve    - Start SSH server for remote play
//	flappy config   - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible obstacles
//	--config <path>      - Load a custom config YAML
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Dragon - flap through the gaps in your terminal",
	Long: `Flappy Dragon is a terminal arcade game. Your dragon falls under
gravity; press space to flap and thread the gaps in the walls.

The field is 80x45 cells, so make the terminal at least that large.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy config > ~/.flappy/configs/flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
