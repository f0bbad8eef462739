package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/invaders/internal/config"
	"github.com/Garsondee/invaders/internal/game"
)

// hudRows is the number of terminal rows reserved above the playfield.
const hudRows = 1

// viewport maps canvas coordinates onto terminal cells.
type viewport struct {
	cols, rows int // playfield size in cells
	top        int // first playfield row
	sx, sy     float64
}

// fitViewport stretches the canvas over the terminal below the HUD.
func fitViewport(c config.CanvasConfig, cols, rows int) viewport {
	rows -= hudRows
	cols = max(cols, 1)
	rows = max(rows, 1)
	return viewport{
		cols: cols,
		rows: rows,
		top:  hudRows,
		sx:   c.Width / float64(cols),
		sy:   c.Height / float64(rows),
	}
}

// cell returns the terminal cell covering the canvas point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x / v.sx))
	cy := int(math.Floor(y / v.sy))
	return clampInt(cx, 0, v.cols-1), clampInt(cy, 0, v.rows-1) + v.top
}

// span returns the inclusive cell range covered by r. Objects smaller than a
// cell still occupy one.
func (v viewport) span(r game.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(r.X, r.Y)
	x1, y1 = v.cell(r.MaxX()-v.sx/2, r.MaxY()-v.sy/2)
	return x0, y0, max(x0, x1), max(y0, y1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// glyph picks the rune and style used for a texture tag.
func glyph(t game.TextureTag) (rune, tcell.Style) {
	switch t {
	case game.TagPlayer:
		return '▲', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case game.TagShot:
		return '|', tcell.StyleDefault.Foreground(tcell.ColorWhite)
	case game.TagInvaderShot:
		return '!', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case game.TagInvader1:
		return 'M', tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 210, 250))
	case game.TagInvader2:
		return 'W', tcell.StyleDefault.Foreground(tcell.NewRGBColor(170, 130, 250))
	case game.TagInvader3:
		return 'X', tcell.StyleDefault.Foreground(tcell.NewRGBColor(250, 120, 170))
	case game.TagBarrier:
		return '█', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case game.TagUFO:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorRed)
	case game.TagExplosion:
		return '*', tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 150, 40))
	default:
		return '?', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
}

func fillRect(s tcell.Screen, v viewport, r game.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := v.span(r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func fillObject(s tcell.Screen, v viewport, o *game.GameObject) {
	ch, style := glyph(o.Tag)
	fillRect(s, v, o.Bounds(), ch, style)
}

// drawWorld renders every entity. Later layers overwrite earlier ones where
// they share a cell.
func drawWorld(s tcell.Screen, v viewport, g *game.Game) {
	barrierCh, barrierStyle := glyph(game.TagBarrier)
	for _, b := range g.Barriers() {
		for _, cl := range b.Colliders {
			if cl.Destroyed {
				continue
			}
			fillRect(s, v, cl.Rect, barrierCh, barrierStyle)
		}
	}
	for _, inv := range g.Invaders() {
		fillObject(s, v, &inv.GameObject)
	}
	if u := g.UFO(); u.Active {
		fillObject(s, v, &u.GameObject)
	}
	for _, sh := range g.Shots() {
		fillObject(s, v, &sh.GameObject)
	}
	p := g.Player()
	for _, b := range p.Bullets() {
		fillObject(s, v, &b.GameObject)
	}
	if !p.IsDestroyed() {
		fillObject(s, v, &p.GameObject)
	}
	for i := range g.Explosions() {
		fillObject(s, v, &g.Explosions()[i].GameObject)
	}
}

// drawString writes s from (x, y), clipped at the right edge.
func drawString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range str {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawHUD writes score, best and tick along the top row.
func drawHUD(s tcell.Screen, g *game.Game, best int, status string) {
	w, _ := s.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	drawString(s, 0, 0, fmt.Sprintf("SCORE %05d", g.Score()), style)
	hi := fmt.Sprintf("HI %05d", max(best, g.Score()))
	drawString(s, (w-len(hi))/2, 0, hi, style)
	right := fmt.Sprintf("T %d x%d", g.Tick(), g.MoveInterval())
	if status != "" {
		right = status
	}
	drawString(s, max(0, w-len(right)), 0, right, tcell.StyleDefault.Foreground(tcell.ColorLightGray))
}

// drawMenu renders a centred box with the title and options.
func drawMenu(s tcell.Screen, title string, options []string, cursor int) {
	w, h := s.Size()
	boxW := len(title) + 8
	for _, o := range options {
		boxW = max(boxW, len(o)+8)
	}
	boxH := len(options) + 4
	x0, y0 := max(0, (w-boxW)/2), max(0, (h-boxH)/2)

	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			if y == y0 || y == y0+boxH-1 {
				ch = '─'
			} else if x == x0 || x == x0+boxW-1 {
				ch = '│'
			}
			s.SetContent(x, y, ch, nil, border)
		}
	}
	drawString(s, x0+(boxW-len(title))/2, y0+1, title, border.Bold(true))
	for i, opt := range options {
		style := border
		label := "  " + opt
		if i == cursor {
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
			label = "> " + opt
		}
		drawString(s, x0+3, y0+2+i, label, style)
	}
}
