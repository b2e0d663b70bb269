package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/piggy/config"
	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/entity"
	"github.com/milk9111/piggy/ecs/render"
	"github.com/milk9111/piggy/levels"
	"github.com/milk9111/piggy/prefabs"
)

// errQuit ends the loop from the pause menu or the Q key.
var errQuit = errors.New("quit")

type Game struct {
	cfg       config.Config
	log       *zap.SugaredLogger
	levelName string
	debug     bool

	world    *ecs.World
	sched    *ecs.Scheduler
	renderer *render.Renderer
	backends entity.Backends
	mixer    *Mixer
	watcher  *levels.Watcher

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

func NewGame(cfg config.Config, log *zap.SugaredLogger, levelName string, debug bool) (*Game, error) {
	g := &Game{
		cfg:       cfg,
		log:       log,
		levelName: levelName,
		debug:     debug,
		backends:  entity.Backends{Input: KeyboardInput{}},
	}
	if cfg.Audio.Enabled {
		g.mixer = NewMixer()
		g.backends.Sound = g.mixer
		g.backends.Music = g.mixer
	}

	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	dirs := existingDirs(levels.Dir, filepath.Join(levels.Dir, "scripts"), prefabs.Dir)
	if len(dirs) == 0 {
		log.Infow("level hot reload off", "dir", levels.Dir)
		return g, nil
	}
	if w, err := levels.NewWatcher(dirs...); err != nil {
		log.Warnw("level hot reload off", "dirs", dirs, "error", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func existingDirs(dirs ...string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}

func (g *Game) load() error {
	lvl, err := levels.Load(g.levelName)
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

	g.world = world
	g.sched = sched
	g.renderer = render.NewRenderer(lvl.GroundY)
	g.renderer.Debug = g.debug
	g.log.Infow("level loaded", "name", lvl.Name, "obstacles", len(lvl.Obstacles), "collectibles", len(lvl.Collectibles))
	return nil
}

// reload rebuilds the world after a level or script changed on disk. A bad
// edit keeps the running world.
func (g *Game) reload(path string) {
	if err := g.load(); err != nil {
		g.log.Warnw("reload failed", "file", path, "error", err)
		return
	}
	g.log.Infow("reloaded", "file", path)
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if name, ok := g.watcher.Poll(); ok {
		g.reload(name)
	}

	g.sched.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.cfg.Window.Width), float64(g.cfg.Window.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warnw("close watcher", "error", err)
		}
	}
	if g.mixer != nil {
		g.mixer.Stop()
	}
}

// run drives the window until the player quits. Quitting is not an error.
func run(g *Game) error {
	err := ebiten.RunGame(g)
	if errors.Is(err, errQuit) || errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}
