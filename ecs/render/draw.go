package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/ecs/system"
)

var (
	skyColor    = colornames.Lightskyblue
	groundColor = color.RGBA{R: 0x6b, G: 0x8e, B: 0x23, A: 0xff}
	hudFace     ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
)

// Renderer draws the world through the camera, then the HUD.
type Renderer struct {
	// GroundY is the world y of the ground line.
	GroundY float64
	Debug   bool
}

func NewRenderer(groundY float64) *Renderer {
	return &Renderer{GroundY: groundY}
}

type drawItem struct {
	e ecs.Entity
	t *component.Transform
	s *component.Sprite
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX := 0.0
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
		camX = cam.X
	}

	bounds := screen.Bounds()
	screen.Fill(skyColor)
	vector.DrawFilledRect(screen, 0, float32(r.GroundY), float32(bounds.Dx()), float32(float64(bounds.Dy())-r.GroundY), groundColor, false)

	var items []drawItem
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Hidden {
			return
		}
		items = append(items, drawItem{e: e, t: t, s: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].s.Layer < items[j].s.Layer
	})

	for _, it := range items {
		paint, ok := GetPainter(it.s.Kind)
		if !ok {
			continue
		}
		x := it.t.X - camX
		if x+it.s.Width < 0 || x > float64(bounds.Dx()) {
			continue
		}
		frame := 0
		if anim, ok := ecs.Get(w, it.e, component.AnimationComponent.Kind()); ok {
			frame = anim.Frame
		}
		paint(screen, x, it.t.Y+it.s.OffsetY, it.s, frame)
		if r.Debug {
			vector.StrokeRect(screen, float32(x), float32(it.t.Y), float32(it.s.Width), float32(it.s.Height), 1, colornames.Red, false)
		}
	}

	r.drawHUD(w, screen)
}

func (r *Renderer) drawHUD(w *ecs.World, screen *ebiten.Image) {
	ent, ok := ecs.First(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}
	score, _ := ecs.Get(w, ent, component.ScoreComponent.Kind())

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(colornames.Black)
	ebtext.Draw(screen, system.HUDText(score), hudFace, op)

	if score.Complete() {
		width, _ := ebtext.Measure(system.CompleteText, hudFace, 0)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(float64(screen.Bounds().Dx())/2-width/2, 40)
		op.ColorScale.ScaleWithColor(colornames.Darkgreen)
		ebtext.Draw(screen, system.CompleteText, hudFace, op)
	}
}
