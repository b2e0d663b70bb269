// Command spritepreview shows every sprite kind the game draws, animated the
// way the game animates them. Useful when tweaking the procedural painters.
package main

import (
	"flag"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/ecs/render"
	"github.com/milk9111/piggy/ecs/system"
	"github.com/milk9111/piggy/prefabs"
)

const (
	screenWidth  = 640
	screenHeight = 360
	cellWidth    = 120
	margin       = 20
)

type previewGame struct {
	world *ecs.World
	anim  *system.AnimationSystem
	tick  int
}

func (g *previewGame) Update() error {
	g.tick++
	g.anim.Update(g.world)

	// flip the pigs and cycle their pose once a second
	if g.tick%60 == 0 {
		ecs.ForEach(g.world, component.SpriteComponent.Kind(), func(_ ecs.Entity, s *component.Sprite) {
			if s.Kind != "pig" {
				return
			}
			s.FacingLeft = !s.FacingLeft
			s.Pose = (s.Pose + 1) % (component.PoseFall + 1)
		})
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)
	ecs.ForEach2(g.world, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		paint, ok := render.GetPainter(s.Kind)
		if !ok {
			return
		}
		frame := 0
		if a, ok := ecs.Get(g.world, e, component.AnimationComponent.Kind()); ok {
			frame = a.Frame
		}
		paint(screen, t.X, t.Y, s, frame)
	})
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func newPreview(items map[string]prefabs.ItemSpec, pigSize float64) (*previewGame, error) {
	w := ecs.NewWorld()
	add := func(x, y float64, sprite component.Sprite, anim *component.Animation) error {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite); err != nil {
			return err
		}
		if anim != nil {
			return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
		}
		return nil
	}

	kinds := make([]string, 0, len(items))
	for k := range items {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for i, kind := range kinds {
		spec := items[kind]
		var anim *component.Animation
		if spec.Frames > 1 {
			anim = &component.Animation{FrameCount: spec.Frames, FPS: spec.FPS, Loop: true, Playing: true}
		}
		x := margin + float64(i%5)*cellWidth
		sprite := component.Sprite{Kind: kind, Width: spec.Width, Height: spec.Height}
		if err := add(x, margin, sprite, anim); err != nil {
			return nil, err
		}
	}

	for i := 0; i < 2; i++ {
		sprite := component.Sprite{Kind: "pig", Width: pigSize, Height: pigSize, FacingLeft: i == 1}
		if err := add(margin+float64(i)*cellWidth, 160, sprite, nil); err != nil {
			return nil, err
		}
	}

	return &previewGame{world: w, anim: system.NewAnimationSystem()}, nil
}

func main() {
	pigSize := flag.Float64("pig", 80, "pig size in pixels")
	flag.Parse()

	items, err := prefabs.LoadItems()
	if err != nil {
		log.Fatal(err)
	}
	g, err := newPreview(items, *pigSize)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("Piggy sprite preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
