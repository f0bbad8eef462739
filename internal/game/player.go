package game

import "github.com/Garsondee/invaders/internal/config"

// Player sprite and bullet dimensions in cells.
const (
	playerCellsW = 15
	playerCellsH = 8
	bulletCellsW = 1
	bulletCellsH = 4
)

// Player is the ship plus its bullets in flight.
type Player struct {
	GameObject
	bullets []*Shot

	movingLeft  bool
	movingRight bool
	cooldown    int // ticks until the next shot is allowed

	speed       float64
	bulletSpeed float64
	cooldownMax int
	cell        float64
	leftEdge    float64
	rightEdge   float64
}

// NewPlayer places the ship at the bottom centre of the canvas.
func NewPlayer(t config.Tuning) *Player {
	c := t.Canvas
	cell := c.PixelSize
	return &Player{
		GameObject:  NewGameObject(c.Width/2, c.Height-c.Height/18, playerCellsW*cell, playerCellsH*cell, TagPlayer),
		speed:       t.Player.Speed,
		bulletSpeed: t.Player.BulletSpeed,
		cooldownMax: t.Player.CooldownTicks,
		cell:        cell,
		leftEdge:    c.LeftEdge,
		rightEdge:   c.RightEdge,
	}
}

// Bullets returns the bullets in flight.
func (p *Player) Bullets() []*Shot { return p.bullets }

// IsDestroyed reports whether the ship has been hit.
func (p *Player) IsDestroyed() bool { return p.Destroyed }

// Cooldown returns the ticks remaining before the next shot is allowed.
func (p *Player) Cooldown() int { return p.cooldown }

// Update applies one tick of input edges, moves the ship and its bullets.
// held is the current snapshot; it lets a release of one direction resume the
// other if that key is still down.
func (p *Player) Update(edges KeyEdges, held Input) {
	if p.cooldown > 0 {
		p.cooldown--
	}

	if !p.Destroyed {
		p.applyEdges(edges, held)

		if p.movingLeft {
			p.X -= p.speed
		}
		if p.movingRight {
			p.X += p.speed
		}
		if p.X < p.leftEdge {
			p.X = p.leftEdge
		}
		if p.X+p.W > p.rightEdge {
			p.X = p.rightEdge - p.W
		}

		if edges.Down(KeyFire) && p.cooldown == 0 {
			p.Shoot()
		}
	}

	for _, b := range p.bullets {
		b.Advance()
	}
}

func (p *Player) applyEdges(edges KeyEdges, held Input) {
	if edges.Down(KeyLeft) {
		p.movingLeft, p.movingRight = true, false
	}
	if edges.Down(KeyRight) {
		p.movingRight, p.movingLeft = true, false
	}
	if edges.Up(KeyLeft) {
		p.movingLeft = false
		p.movingRight = held.Held(KeyRight)
	}
	if edges.Up(KeyRight) {
		p.movingRight = false
		p.movingLeft = held.Held(KeyLeft)
	}
}

// Shoot fires a bullet from the nose of the ship and restarts the cooldown.
// A destroyed ship cannot shoot.
func (p *Player) Shoot() {
	if p.Destroyed {
		return
	}
	w := bulletCellsW * p.cell
	h := bulletCellsH * p.cell
	p.bullets = append(p.bullets, &Shot{
		GameObject: NewGameObject(p.X+p.W/2-w/2, p.Y-h, w, h, TagShot),
		VY:         -p.bulletSpeed,
	})
	p.cooldown = p.cooldownMax
}

// sweepBullets drops destroyed bullets and those that left the top of the
// canvas. Destroyed ones are returned so the caller can spawn explosions.
func (p *Player) sweepBullets() (destroyed []*Shot) {
	kept := p.bullets[:0]
	for _, b := range p.bullets {
		switch {
		case b.Destroyed:
			destroyed = append(destroyed, b)
		case b.Y+b.H <= 0:
		default:
			kept = append(kept, b)
		}
	}
	p.bullets = kept
	return destroyed
}
