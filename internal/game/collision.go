package game

// CollisionReport tallies what one resolution pass destroyed.
type CollisionReport struct {
	InvadersHit    int  // invaders killed by player bullets
	PlayerHit      bool // ship destroyed by an invader body or an enemy shot
	PlayerHitBy    string
	BarrierHits    int // colliders destroyed by projectiles
	BarrierEroded  int // colliders crushed by invader bodies
	UFOHit         bool
	ShotsCancelled int // bullet/enemy-shot pairs that destroyed each other
}

// ResolveCollisions cross-checks every entity class once. Positions are not
// touched; only Destroyed flags change. Anything destroyed earlier in the pass
// is skipped by later checks, except that invader bodies hit the player
// independently of whether a bullet killed them this tick.
func ResolveCollisions(p *Player, invaders []*Invader, shots []*Shot, barriers []*Barrier, ufo *UFO) CollisionReport {
	var rep CollisionReport

	// Bullets against invaders: first match wins.
	for _, b := range p.bullets {
		if b.Destroyed {
			continue
		}
		for _, inv := range invaders {
			if inv.Destroyed {
				continue
			}
			if Overlaps(inv.Bounds(), b.Bounds()) {
				inv.Destroy()
				b.Destroy()
				rep.InvadersHit++
				break
			}
		}
	}

	// Invader bodies against the ship.
	if !p.Destroyed {
		for _, inv := range invaders {
			if Overlaps(inv.Bounds(), p.Bounds()) {
				p.Destroy()
				rep.PlayerHit = true
				rep.PlayerHitBy = "invader"
				break
			}
		}
	}

	// Bullets against barriers, then the UFO.
	for _, b := range p.bullets {
		if b.Destroyed {
			continue
		}
		if hitBarriers(barriers, b.Bounds()) {
			b.Destroy()
			rep.BarrierHits++
			continue
		}
		if ufo != nil && ufo.Active && !ufo.Destroyed && Overlaps(ufo.Bounds(), b.Bounds()) {
			ufo.Destroy()
			b.Destroy()
			rep.UFOHit = true
		}
	}

	// Enemy shots against the ship, bullets and barriers.
	for _, s := range shots {
		if s.Destroyed {
			continue
		}
		if !p.Destroyed && Overlaps(s.Bounds(), p.Bounds()) {
			p.Destroy()
			rep.PlayerHit = true
			rep.PlayerHitBy = "shot"
			continue
		}
		if cancelAgainstBullets(s, p.bullets) {
			rep.ShotsCancelled++
			continue
		}
		if hitBarriers(barriers, s.Bounds()) {
			s.Destroy()
			rep.BarrierHits++
		}
	}

	// Invaders marching through cover crush it.
	for _, inv := range invaders {
		if inv.Destroyed {
			continue
		}
		for _, bar := range barriers {
			rep.BarrierEroded += bar.erode(inv.Bounds())
		}
	}

	return rep
}

func hitBarriers(barriers []*Barrier, r Rect) bool {
	for _, bar := range barriers {
		if bar.hit(r) {
			return true
		}
	}
	return false
}

func cancelAgainstBullets(s *Shot, bullets []*Shot) bool {
	for _, b := range bullets {
		if b.Destroyed {
			continue
		}
		if Overlaps(s.Bounds(), b.Bounds()) {
			s.Destroy()
			b.Destroy()
			return true
		}
	}
	return false
}
