package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
)

// defaultPoints is awarded per item when no script is loaded or it fails.
const defaultPoints = 1

// ScoreSystem turns CollectEvents into points. The award for each item comes
// from a tengo script that sees `kind`, `collected` and `total` and sets
// `points`.
type ScoreSystem struct {
	compiled *tengo.Compiled
	log      *zap.SugaredLogger
}

// NewScoreSystem compiles script. A nil or empty script awards defaultPoints
// per item.
func NewScoreSystem(script []byte, log *zap.SugaredLogger) (*ScoreSystem, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &ScoreSystem{log: log}
	if len(script) == 0 {
		return s, nil
	}

	sc := tengo.NewScript(script)
	_ = sc.Add("kind", "")
	_ = sc.Add("collected", 0)
	_ = sc.Add("total", 0)
	sc.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("score: compile script: %w", err)
	}
	s.compiled = compiled
	return s, nil
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ent, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	score, _ := ecs.Get(w, ent, component.ScoreComponent.Kind())

	w.Events().Each(ecs.EventCollected, func(evt ecs.Event) {
		ce, ok := evt.Data.(ecs.CollectEvent)
		if !ok {
			return
		}
		score.Collected++
		pts := s.points(ce.Kind, score.Collected, score.Total)
		score.Points += pts
		s.log.Debugw("score", "kind", ce.Kind, "points", pts, "total_points", score.Points)
		if score.Complete() {
			s.log.Infow("all items collected", "points", score.Points)
		}
	})
}

func (s *ScoreSystem) points(kind string, collected, total int) int {
	if s.compiled == nil {
		return defaultPoints
	}
	if err := s.run(kind, collected, total); err != nil {
		s.log.Warnw("score script failed", "kind", kind, "error", err)
		return defaultPoints
	}
	if !s.compiled.IsDefined("points") {
		return defaultPoints
	}
	return s.compiled.Get("points").Int()
}

func (s *ScoreSystem) run(kind string, collected, total int) error {
	if err := s.compiled.Set("kind", kind); err != nil {
		return err
	}
	if err := s.compiled.Set("collected", collected); err != nil {
		return err
	}
	if err := s.compiled.Set("total", total); err != nil {
		return err
	}
	return s.compiled.Run()
}
