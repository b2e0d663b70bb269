// Command piggyterm runs Piggy Adventure in a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/milk9111/piggy/config"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/entity"
	"github.com/milk9111/piggy/levels"
	"github.com/milk9111/piggy/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (.yaml or .toml); defaults are built in")
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := start(*configPath, *levelName, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprint(os.Stderr, "Press Enter to exit...")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
		os.Exit(1)
	}
}

type game struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	lvl      *levels.Level
	world    *ecs.World
	sched    *ecs.Scheduler
	keys     *keyState
	backends entity.Backends
	paused   bool
}

func start(configPath, levelName string, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// stderr belongs to the terminal UI.
	cfg.Log.Console = false
	if mute {
		cfg.Audio.Enabled = false
	}
	if levelName == "" {
		levelName = cfg.Level
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logging.Sync(log)

	g := &game{cfg: cfg, log: log, keys: &keyState{}}
	g.backends.Input = g.keys
	if cfg.Audio.Enabled {
		if p, err := newBeepPlayer(); err != nil {
			log.Warnw("sound disabled", "error", err)
		} else {
			defer p.Stop()
			g.backends.Sound = p
			g.backends.Music = p
		}
	}

	if err := g.load(levelName); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	g.run(screen)
	log.Infow("bye")
	return nil
}

func (g *game) load(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}
	world, _, err := entity.BuildWorld(lvl, g.cfg)
	if err != nil {
		return err
	}
	sched, err := entity.NewScheduler(lvl, g.backends, g.log)
	if err != nil {
		return err
	}
	g.lvl, g.world, g.sched = lvl, world, sched
	g.log.Infow("level loaded", "name", lvl.Name)
	return nil
}

// run owns the screen until the player quits. Key events arrive on a
// goroutine; the world only changes on ticker ticks.
func (g *game) run(screen tcell.Screen) {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tps := g.cfg.Window.TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	viewW := float64(g.cfg.Window.Width)
	viewH := float64(g.cfg.Window.Height)
	for {
		select {
		case ev := <-events:
			if !g.handle(ev, screen) {
				return
			}
		case <-ticker.C:
			if !g.paused {
				g.sched.Update(g.world)
			}
			drawWorld(screen, g.world, viewW, viewH, g.lvl.GroundY, g.paused)
		}
	}
}

// handle applies one terminal event. It returns false when the game should
// exit.
func (g *game) handle(ev tcell.Event, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			g.paused = !g.paused
			g.keys.reset()
		case tcell.KeyLeft:
			g.keys.pressLeft()
		case tcell.KeyRight:
			g.keys.pressRight()
		case tcell.KeyUp:
			g.keys.pressJump()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'a', 'A':
				g.keys.pressLeft()
			case 'd', 'D':
				g.keys.pressRight()
			case ' ', 'w', 'W':
				g.keys.pressJump()
			}
		}
	}
	return true
}
