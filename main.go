package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/piggy/config"
	"github.com/milk9111/piggy/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml or .toml); defaults are built in")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "draw collision boxes and log at debug level")
	flag.Parse()

	if err := start(*configPath, *levelName, *debug); err != nil {
		fault(err)
	}
}

func start(configPath, levelName string, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	if levelName == "" {
		levelName = cfg.Level
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logging.Sync(log)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(cfg, log, levelName, debug)
	if err != nil {
		log.Errorw("init failed", "error", err)
		return err
	}
	defer game.Close()

	if err := run(game); err != nil {
		log.Errorw("game stopped", "error", err)
		return err
	}
	log.Infow("bye")
	return nil
}

// fault reports an unrecoverable error and waits for Enter so a console
// window stays open long enough to read it.
func fault(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprint(os.Stderr, "Press Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	os.Exit(1)
}
