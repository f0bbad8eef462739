package game

import (
	"fmt"
	"strings"
)

type Outcome int

const (
	OutcomeInconclusive Outcome = iota
	OutcomeWin
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// OutcomeReport summarises a finished or abandoned run.
type OutcomeReport struct {
	Outcome        Outcome
	Ticks          int
	Score          int
	InvadersKilled int
	InvadersLeft   int
	UFOsSpawned    int
	UFOsDestroyed  int
	ShotsFired     int // player bullets
	EnemyShots     int
	LowestRowY     float64 // bottom edge of the deepest live invader
	Description    string
}

// Outcome classifies the current state of the run.
func (g *Game) Outcome() OutcomeReport {
	r := OutcomeReport{
		Ticks:          g.tick,
		Score:          g.score,
		InvadersKilled: g.killedTotal,
		InvadersLeft:   len(g.invaders),
		UFOsSpawned:    g.ufoCtl.spawns,
	}
	for _, inv := range g.invaders {
		if y := inv.Y + inv.H; y > r.LowestRowY {
			r.LowestRowY = y
		}
	}
	if g.log != nil {
		r.UFOsDestroyed = g.log.CountCategory("ufo", "destroyed")
		r.ShotsFired = g.log.CountCategory("player", "shot")
		r.EnemyShots = g.log.CountCategory("fire", "shot")
	}

	switch g.state {
	case StateWin:
		r.Outcome = OutcomeWin
		r.Description = "formation_destroyed"
	case StateGameOver:
		r.Outcome = OutcomeGameOver
		r.Description = "player_destroyed"
		if g.log != nil {
			if e, ok := g.log.LastOf("collision", "player_killed"); ok {
				r.Description = "player_destroyed_" + strings.TrimPrefix(e.Value, "by ")
			}
		}
	default:
		r.Outcome = OutcomeInconclusive
		total := g.cfg.Formation.Rows * g.cfg.Formation.Columns
		r.Description = fmt.Sprintf("inconclusive_%d_of_%d_destroyed", g.killedTotal, total)
	}
	return r
}
