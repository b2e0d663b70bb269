package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/piggy/ecs"
	"github.com/milk9111/piggy/ecs/component"
	"github.com/milk9111/piggy/ecs/system"
)

var (
	skyStyle      = tcell.StyleDefault.Background(tcell.ColorLightSkyBlue)
	groundStyle   = tcell.StyleDefault.Background(tcell.ColorOliveDrab).Foreground(tcell.ColorDarkGreen)
	platformStyle = tcell.StyleDefault.Background(tcell.ColorSaddleBrown).Foreground(tcell.ColorForestGreen)
	pigStyle      = tcell.StyleDefault.Background(tcell.ColorPink).Foreground(tcell.ColorBlack)
	hudStyle      = tcell.StyleDefault.Background(tcell.ColorLightSkyBlue).Foreground(tcell.ColorBlack)
)

var itemGlyphs = map[string]rune{
	component.KindFlower: '*',
	component.KindBush:   '&',
	component.KindRock:   'o',
	component.KindBird:   'v',
}

var itemStyles = map[string]tcell.Style{
	component.KindFlower:      skyStyle.Foreground(tcell.ColorHotPink),
	component.KindVideoFlower: skyStyle.Foreground(tcell.ColorFuchsia),
	component.KindBush:        skyStyle.Foreground(tcell.ColorForestGreen),
	component.KindRock:        skyStyle.Foreground(tcell.ColorSlateGray),
	component.KindBird:        skyStyle.Foreground(tcell.ColorRoyalBlue),
}

var videoFlowerGlyphs = []rune("*+x+")

// view projects a world-space rectangle onto terminal cells.
type view struct {
	cols, rows   int
	viewW, viewH float64
	camX         float64
}

func (v view) cellX(x float64) int {
	return int(math.Floor((x - v.camX) * float64(v.cols) / v.viewW))
}

func (v view) cellY(y float64) int {
	return int(math.Floor(y * float64(v.rows) / v.viewH))
}

// span returns the cells a world box covers, at least one in each axis.
func (v view) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.cellX(x), v.cellY(y)
	x1, y1 = v.cellX(x+w)-1, v.cellY(y+h)-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func fill(s tcell.Screen, v view, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for cy := y0; cy <= y1; cy++ {
		if cy < 0 || cy >= v.rows {
			continue
		}
		for cx := x0; cx <= x1; cx++ {
			if cx < 0 || cx >= v.cols {
				continue
			}
			s.SetContent(cx, cy, r, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// drawWorld renders one frame. viewW and viewH are the world-space size of
// the visible area.
func drawWorld(s tcell.Screen, w *ecs.World, viewW, viewH, groundY float64, paused bool) {
	cols, rows := s.Size()
	v := view{cols: cols, rows: rows, viewW: viewW, viewH: viewH}
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
		v.camX = cam.X
	}

	s.Clear()
	fill(s, v, 0, 0, cols-1, rows-1, ' ', skyStyle)
	fill(s, v, 0, v.cellY(groundY), cols-1, rows-1, '"', groundStyle)

	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		x0, y0, x1, y1 := v.span(o.Rect.X, o.Rect.Y, o.Rect.Width, o.Rect.Height)
		fill(s, v, x0, y0, x1, y1, '#', platformStyle)
	})

	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(e ecs.Entity, c *component.Collectible) {
		if c.Collected {
			return
		}
		glyph, ok := itemGlyphs[c.Kind]
		if c.Kind == component.KindVideoFlower {
			frame := 0
			if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
				frame = anim.Frame
			}
			glyph, ok = videoFlowerGlyphs[frame%len(videoFlowerGlyphs)], true
		}
		if !ok {
			glyph = '?'
		}
		x0, y0, x1, y1 := v.span(c.X, c.Y, c.Width, c.Height)
		fill(s, v, x0, y0, x1, y1, glyph, itemStyles[c.Kind])
	})

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		body, _ := ecs.Get(w, player, component.BodyComponent.Kind())
		offset := 0.0
		if sprite, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
			offset = sprite.OffsetY
		}
		x0, y0, x1, y1 := v.span(body.X, body.Y+offset, body.Width, body.Height)
		fill(s, v, x0, y0, x1, y1, ' ', pigStyle)
		snout, eye := x1, x1-1
		if sprite, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok && sprite.FacingLeft {
			snout, eye = x0, x0+1
		}
		fill(s, v, snout, (y0+y1)/2+1, snout, (y0+y1)/2+1, 'o', pigStyle)
		fill(s, v, eye, y0, eye, y0, '.', pigStyle)
	}

	if scoreEnt, ok := ecs.First(w, component.ScoreComponent.Kind()); ok {
		score, _ := ecs.Get(w, scoreEnt, component.ScoreComponent.Kind())
		drawText(s, 1, 0, system.HUDText(score), hudStyle)
		if score.Complete() {
			drawText(s, cols/2-len(system.CompleteText)/2, 1, system.CompleteText, hudStyle.Foreground(tcell.ColorDarkGreen))
		}
	}
	if paused {
		msg := "Paused - Esc to resume, Q to quit"
		drawText(s, cols/2-len(msg)/2, rows/2, msg, hudStyle.Reverse(true))
	}

	s.Show()
}
