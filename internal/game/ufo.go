package game

import (
	"math/rand"

	"github.com/Garsondee/invaders/internal/config"
)

const (
	ufoCellsW = 16
	ufoCellsH = 7
)

// UFO is the bonus saucer. At most one exists; it is reused across spawns.
type UFO struct {
	GameObject
	Dir    Direction
	Active bool
}

// ufoController owns the spawn cadence and the entry-side alternation.
type ufoController struct {
	timer  int // ticks until the next spawn attempt
	spawns int
}

// nextUFOTime draws a spawn delay in [base-jitter, base+jitter].
func nextUFOTime(rng *rand.Rand, u config.UFOConfig) int {
	if u.Jitter <= 0 {
		return u.BaseInterval
	}
	return u.BaseInterval - u.Jitter + rng.Intn(2*u.Jitter+1)
}

// spawn activates the saucer just outside the edge it enters from. Even spawn
// counts enter from the left, odd ones from the right.
func (u *UFO) spawn(spawnCount int, c config.CanvasConfig) {
	w := ufoCellsW * c.PixelSize
	h := ufoCellsH * c.PixelSize
	x, dir := c.LeftEdge-w, DirRight
	if spawnCount%2 != 0 {
		x, dir = c.RightEdge, DirLeft
	}
	u.GameObject = NewGameObject(x, h, w, h, TagUFO)
	u.Dir = dir
	u.Active = true
}

// advance moves an active saucer and reports whether it left the far edge,
// in which case it is deactivated without an explosion.
func (u *UFO) advance(speed float64, c config.CanvasConfig) bool {
	if !u.Active {
		return false
	}
	u.X += u.Dir.Sign() * speed
	escaped := (u.Dir == DirRight && u.X >= c.RightEdge) ||
		(u.Dir == DirLeft && u.X+u.W <= c.LeftEdge)
	if escaped {
		u.Active = false
	}
	return escaped
}
