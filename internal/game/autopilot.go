package game

import "math"

// Autopilot is a simple bot used by headless runs. It steers under the
// nearest frontline invader and taps fire whenever the cannon is ready.
type Autopilot struct {
	// Dodge makes the bot sidestep enemy shots falling towards the ship.
	Dodge bool

	fireHeld bool
}

// Next implements InputSource.
func (a *Autopilot) Next(g *Game) Input {
	var in Input
	p := g.Player()
	if p.Destroyed || g.State() != StatePlaying {
		a.fireHeld = false
		return in
	}

	centre := p.X + p.W/2
	target, ok := a.target(g, centre)
	if a.Dodge {
		if threat, found := incomingShot(g, p); found {
			// Step away from the shot instead of chasing a target.
			if threat.CenterX() >= centre {
				target = p.X - p.W
			} else {
				target = p.X + 2*p.W
			}
			ok = true
		}
	}

	if ok {
		dx := target - centre
		switch {
		case dx < -p.speed:
			in = in.With(KeyLeft)
		case dx > p.speed:
			in = in.With(KeyRight)
		}
	}

	// Fire is edge triggered, so release for a tick after every press.
	if !a.fireHeld && p.Cooldown() <= 1 && ok {
		in = in.With(KeyFire)
		a.fireHeld = true
	} else {
		a.fireHeld = false
	}
	return in
}

// target picks the centre x of the closest frontline invader, preferring the
// UFO while it is overhead.
func (a *Autopilot) target(g *Game, from float64) (float64, bool) {
	if u := g.UFO(); u.Active && !u.Destroyed {
		return u.Bounds().CenterX(), true
	}
	best, bestDist := 0.0, math.Inf(1)
	for _, inv := range frontline(g.Invaders()) {
		x := inv.Bounds().CenterX()
		if d := math.Abs(x - from); d < bestDist {
			best, bestDist = x, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// incomingShot returns the bounds of the nearest enemy shot that will land on
// the ship's current column.
func incomingShot(g *Game, p *Player) (Rect, bool) {
	pb := p.Bounds()
	lane := Rect{X: pb.X - p.W/2, Y: 0, W: pb.W * 2, H: pb.Y}
	var best Rect
	found := false
	for _, s := range g.Shots() {
		sb := s.Bounds()
		if !Overlaps(lane, sb) {
			continue
		}
		if !found || sb.Y > best.Y {
			best, found = sb, true
		}
	}
	return best, found
}
