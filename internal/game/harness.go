package game

// InputSource produces the input snapshot for the next tick. Headless runs and
// tests use it in place of a keyboard.
type InputSource interface {
	Next(g *Game) Input
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func(g *Game) Input

// Next implements InputSource.
func (f InputFunc) Next(g *Game) Input { return f(g) }

// IdleInput never presses anything.
var IdleInput InputSource = InputFunc(func(*Game) Input { return Input{} })

// Script replays a fixed sequence of snapshots, then idles.
type Script struct {
	Frames []Input
	pos    int
}

// Next implements InputSource.
func (s *Script) Next(*Game) Input {
	if s.pos >= len(s.Frames) {
		return Input{}
	}
	in := s.Frames[s.pos]
	s.pos++
	return in
}

// RunTicks advances the game n single ticks. A nil source idles.
func (g *Game) RunTicks(n int, src InputSource) {
	if src == nil {
		src = IdleInput
	}
	for i := 0; i < n; i++ {
		g.Update(src.Next(g), 1)
	}
}

// RunUntil advances the game up to maxTicks, stopping early once predicate
// holds. Returns the game tick at which it held, or -1.
func (g *Game) RunUntil(predicate func(*Game) bool, maxTicks int, src InputSource) int {
	if src == nil {
		src = IdleInput
	}
	for i := 0; i < maxTicks; i++ {
		g.Update(src.Next(g), 1)
		if predicate(g) {
			return g.tick
		}
	}
	return -1
}

// Snapshot is a lightweight summary of the game at one tick.
type Snapshot struct {
	Tick         int
	State        State
	Score        int
	Invaders     int
	Shots        int
	Bullets      int
	Explosions   int
	LiveCells    int
	UFOActive    bool
	PlayerX      float64
	PlayerDown   bool
	MoveInterval int
	PendingRows  []int
	ArmedShots   int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	cells := 0
	for _, b := range g.barriers {
		cells += b.LiveColliders()
	}
	return Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Score:        g.score,
		Invaders:     len(g.invaders),
		Shots:        len(g.shots),
		Bullets:      len(g.player.bullets),
		Explosions:   len(g.explosions),
		LiveCells:    cells,
		UFOActive:    g.ufo.Active,
		PlayerX:      g.player.X,
		PlayerDown:   g.player.Destroyed,
		MoveInterval: g.moveInterval,
		PendingRows:  g.formation.Pending(),
		ArmedShots:   g.fire.Armed(),
	}
}
