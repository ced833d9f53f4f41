package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Flappy Dragon in this terminal.

Controls:
  P        - Play / play again
  Space    - Flap
  Q        - Quit (menu and death screen)
  Ctrl+C   - Quit at any time
  Ctrl+S   - Save a screenshot to ~/.flappy/screenshots

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to a file
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, io.Discard, "flappy")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	logger.Info("starting game", "fps", cfg.TickRate, "seed", cfg.Seed, "size", []int{cfg.ScreenW, cfg.ScreenH})

	return tui.Run(tui.Options{
		Game:          gameCfg,
		Runtime:       cfg,
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})
}
