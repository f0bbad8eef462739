package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/invaders/internal/game"
)

var (
	colBackground = color.RGBA{R: 4, G: 4, B: 10, A: 255}
	colCrater     = color.RGBA{R: 18, G: 34, B: 18, A: 255}
	colBorder     = color.RGBA{R: 40, G: 40, B: 70, A: 255}
	colOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	colText       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	colCursor     = color.RGBA{R: 90, G: 230, B: 90, A: 255}
)

// tagColor gives every texture tag a flat colour.
func tagColor(t game.TextureTag) color.RGBA {
	switch t {
	case game.TagPlayer:
		return color.RGBA{R: 70, G: 230, B: 110, A: 255}
	case game.TagShot:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case game.TagInvaderShot:
		return color.RGBA{R: 250, G: 200, B: 60, A: 255}
	case game.TagInvader1:
		return color.RGBA{R: 120, G: 210, B: 250, A: 255}
	case game.TagInvader2:
		return color.RGBA{R: 170, G: 130, B: 250, A: 255}
	case game.TagInvader3:
		return color.RGBA{R: 250, G: 120, B: 170, A: 255}
	case game.TagBarrier:
		return color.RGBA{R: 60, G: 200, B: 60, A: 255}
	case game.TagUFO:
		return color.RGBA{R: 240, G: 60, B: 60, A: 255}
	case game.TagExplosion:
		return color.RGBA{R: 255, G: 150, B: 40, A: 255}
	default:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
}

func fillObject(dst *ebiten.Image, o *game.GameObject) {
	vector.FillRect(dst, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), tagColor(o.Tag), false)
}

// drawWorld renders every entity at canvas scale.
func drawWorld(dst *ebiten.Image, g *game.Game) {
	c := g.Tuning().Canvas
	dst.Fill(colBackground)
	vector.StrokeLine(dst, float32(c.LeftEdge), 0, float32(c.LeftEdge), float32(c.Height), 1, colBorder, false)
	vector.StrokeLine(dst, float32(c.RightEdge), 0, float32(c.RightEdge), float32(c.Height), 1, colBorder, false)

	barrierCol := tagColor(game.TagBarrier)
	for _, b := range g.Barriers() {
		for _, cl := range b.Colliders {
			col := barrierCol
			if cl.Destroyed {
				col = colCrater
			}
			vector.FillRect(dst, float32(cl.X), float32(cl.Y), float32(cl.W), float32(cl.H), col, false)
		}
	}

	for _, inv := range g.Invaders() {
		fillObject(dst, &inv.GameObject)
	}
	if u := g.UFO(); u.Active {
		fillObject(dst, &u.GameObject)
	}
	for _, s := range g.Shots() {
		fillObject(dst, &s.GameObject)
	}
	p := g.Player()
	for _, b := range p.Bullets() {
		fillObject(dst, &b.GameObject)
	}
	if !p.IsDestroyed() {
		fillObject(dst, &p.GameObject)
	}
	for _, e := range g.Explosions() {
		col := tagColor(game.TagExplosion)
		vector.StrokeRect(dst, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), 4, col, false)
	}
}

// drawText draws s with its top-left at (x, y), scaled up from the 7x13 face.
func drawText(dst *ebiten.Image, face text.Face, s string, x, y, scale float64, align text.Align, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.LineSpacing = 16
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// drawHUD shows score, best score and the tick counter along the top.
func drawHUD(dst *ebiten.Image, face text.Face, g *game.Game, best int) {
	c := g.Tuning().Canvas
	drawText(dst, face, fmt.Sprintf("SCORE %05d", g.Score()), c.LeftEdge, 8, 3, text.AlignStart, colText)
	drawText(dst, face, fmt.Sprintf("HI %05d", max(best, g.Score())), c.Width/2, 8, 3, text.AlignCenter, colText)
	drawText(dst, face, fmt.Sprintf("T %d  x%d", g.Tick(), g.MoveInterval()), c.RightEdge, 8, 2, text.AlignEnd, colBorder)
}

// drawMenu renders the overlay for the current menu state.
func drawMenu(dst *ebiten.Image, face text.Face, m menuView, c canvasSize) {
	mw, mh := c.w/2, c.h/2
	mx, my := (c.w-mw)/2, (c.h-mh)/2
	vector.FillRect(dst, float32(mx), float32(my), float32(mw), float32(mh), colOverlay, false)
	vector.StrokeRect(dst, float32(mx), float32(my), float32(mw), float32(mh), 4, colText, false)

	cx := mx + mw/2
	drawText(dst, face, m.title, cx, my+40, 8, text.AlignCenter, colText)
	for i, opt := range m.options {
		y := my + 200 + float64(i)*130
		col := colText
		if i == m.cursor {
			col = colCursor
			drawText(dst, face, ">", cx-260, y, 6, text.AlignCenter, colCursor)
		}
		drawText(dst, face, opt, cx, y, 6, text.AlignCenter, col)
	}
	if m.footer != "" {
		drawText(dst, face, m.footer, cx, my+mh-40, 2, text.AlignCenter, colBorder)
	}
}

type canvasSize struct{ w, h float64 }

// menuView is the plain data a menu overlay needs.
type menuView struct {
	title   string
	options []string
	cursor  int
	footer  string
}
