package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/invaders/internal/config"
)

// barrierCount is the number of cover sprites placed across the canvas.
const barrierCount = 4

// Explosion sprite dimensions in cells.
const (
	explosionCellsW = 12
	explosionCellsH = 10
)

// --- State ---

// State is the top-level game mode.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateWin
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only leaves through a reset.
func (s State) Terminal() bool {
	return s == StateGameOver || s == StateWin
}

// Command is an action sent to the core by the menu layer.
type Command int

const (
	CommandRetry    Command = iota // rebuild the game from scratch
	CommandContinue                // resume from pause
	CommandPause                   // pause a running game
)

func (c Command) String() string {
	switch c {
	case CommandRetry:
		return "retry"
	case CommandContinue:
		return "continue"
	case CommandPause:
		return "pause"
	default:
		return "unknown"
	}
}

// --- Game ---

// Game is the simulation aggregate. It exclusively owns every entity list and
// timer; a single goroutine drives it through Update.
type Game struct {
	cfg config.Tuning
	rng *rand.Rand
	log *SimLog

	player     *Player
	invaders   []*Invader
	barriers   []*Barrier
	shots      []*Shot // enemy projectiles
	explosions []Explosion
	ufo        UFO

	formation    *Formation
	fire         *FireScheduler
	ufoCtl       ufoController
	moveTimer    int
	moveInterval int

	state       State
	tick        int
	prevInput   Input
	playerDown  int // consecutive ticks the ship has been destroyed
	score       int
	killedTotal int
}

// Option configures a Game at construction.
type Option func(*Game)

// WithTuning replaces the default tuning.
func WithTuning(t config.Tuning) Option {
	return func(g *Game) { g.cfg = t }
}

// WithSeed makes every random draw reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	}
}

// WithRand injects a generator directly.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSimLog records events into l.
func WithSimLog(l *SimLog) Option {
	return func(g *Game) { g.log = l }
}

// New builds a game ready to play.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.Default()}
	for _, o := range opts {
		o(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	g.build()
	return g
}

// Reset discards all state and rebuilds the game and player, drawing fresh
// random timers from the same generator.
func (g *Game) Reset() {
	if g.log != nil {
		g.log.Clear()
	}
	g.build()
	g.logEvent("--", "state", "reset", "new game", 0)
}

func (g *Game) build() {
	c := g.cfg.Canvas

	g.player = NewPlayer(g.cfg)
	g.invaders = buildFormation(g.cfg)
	g.barriers = g.barriers[:0]
	x := c.Width / 24 * 2
	for i := 0; i < barrierCount; i++ {
		g.barriers = append(g.barriers, NewBarrier(x, c.Height-c.Height/4, c.PixelSize))
		x += c.Width / 4
	}
	g.shots = nil
	g.explosions = nil
	g.ufo = UFO{}

	g.formation = NewFormation(g.cfg)
	g.fire = &FireScheduler{Delay: g.cfg.Fire.ShotDelay, MaxVolley: g.cfg.Fire.MaxVolley}
	g.ufoCtl = ufoController{timer: nextUFOTime(g.rng, g.cfg.UFO)}
	g.moveTimer = 0
	g.moveInterval = moveInterval(g.cfg.Formation, len(g.invaders))

	g.state = StatePlaying
	g.tick = 0
	g.prevInput = Input{}
	g.playerDown = 0
	g.score = 0
	g.killedTotal = 0
}

// --- Accessors ---

func (g *Game) Invaders() []*Invader       { return g.invaders }
func (g *Game) Barriers() []*Barrier       { return g.barriers }
func (g *Game) Shots() []*Shot             { return g.shots }
func (g *Game) Explosions() []Explosion    { return g.explosions }
func (g *Game) UFO() *UFO                  { return &g.ufo }
func (g *Game) Player() *Player            { return g.player }
func (g *Game) State() State               { return g.state }
func (g *Game) Score() int                 { return g.score }
func (g *Game) Tick() int                  { return g.tick }
func (g *Game) MoveInterval() int          { return g.moveInterval }
func (g *Game) Formation() *Formation      { return g.formation }
func (g *Game) Fire() *FireScheduler       { return g.fire }
func (g *Game) Log() *SimLog               { return g.log }
func (g *Game) Tuning() config.Tuning      { return g.cfg }
func (g *Game) UFOSpawns() int             { return g.ufoCtl.spawns }
func (g *Game) InvadersKilled() int        { return g.killedTotal }
func (g *Game) invaderByID(id int) *Invader { return findInvader(g.invaders, id) }

func findInvader(invaders []*Invader, id int) *Invader {
	for _, inv := range invaders {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

// --- Commands ---

// Apply executes a menu command. Commands that do not fit the current state
// are ignored.
func (g *Game) Apply(cmd Command) {
	switch cmd {
	case CommandRetry:
		g.Reset()
	case CommandContinue:
		if g.state == StatePaused {
			g.setState(StatePlaying)
		}
	case CommandPause:
		if g.state == StatePlaying {
			g.setState(StatePaused)
		}
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	g.logEvent("--", "state", "change", fmt.Sprintf("%s → %s", g.state, s), 0)
	g.state = s
}

// --- Tick ---

// Update advances the game by elapsed ticks (at least one) using the input
// snapshot. Key edges are derived against the previous snapshot, so presses
// only register on the first of several catch-up ticks. While paused only the
// pause key is tracked; the other keys keep their pre-pause state so a
// release during the pause registers on resume.
func (g *Game) Update(in Input, elapsed int) {
	if elapsed < 1 {
		elapsed = 1
	}
	for i := 0; i < elapsed; i++ {
		edges := Edges(g.prevInput, in)
		if g.state == StatePaused {
			g.prevInput = g.prevInput.withKey(KeyPause, in.Held(KeyPause))
		} else {
			g.prevInput = in
		}
		g.step(in, edges)
	}
}

func (g *Game) step(in Input, edges KeyEdges) {
	switch g.state {
	case StatePaused:
		if edges.Down(KeyPause) {
			g.setState(StatePlaying)
		}
		return
	case StateGameOver, StateWin:
		return
	}
	if edges.Down(KeyPause) {
		g.setState(StatePaused)
		return
	}

	g.tick++

	if len(g.invaders) == 0 {
		g.setState(StateWin)
		return
	}

	// 1. PLAYER: edges → movement and firing; bullets advance.
	shotsBefore := len(g.player.bullets)
	g.player.Update(edges, in)
	if len(g.player.bullets) > shotsBefore {
		g.logEvent("P", "player", "shot", fmt.Sprintf("x=%.0f", g.player.X), 0)
	}

	// 2. ENEMY SHOTS advance.
	for _, s := range g.shots {
		s.Advance()
	}

	// 3. COLLISIONS.
	wasDown := g.player.Destroyed
	rep := ResolveCollisions(g.player, g.invaders, g.shots, g.barriers, &g.ufo)
	if rep.BarrierEroded > 0 {
		g.logEvent("--", "collision", "barrier_eroded", fmt.Sprintf("%d colliders", rep.BarrierEroded), float64(rep.BarrierEroded))
	}
	if rep.ShotsCancelled > 0 {
		g.logEvent("--", "collision", "shots_cancelled", fmt.Sprintf("%d pairs", rep.ShotsCancelled), float64(rep.ShotsCancelled))
	}
	if rep.BarrierHits > 0 {
		g.logEvent("--", "collision", "barrier_hit", fmt.Sprintf("%d colliders", rep.BarrierHits), float64(rep.BarrierHits))
	}
	g.checkInvasion()
	if rep.PlayerHit && !wasDown {
		g.logEvent("P", "collision", "player_killed", "by "+rep.PlayerHitBy, 0)
	}

	// 4. SWEEP destroyed entities into explosions.
	g.sweep(wasDown)

	// 5. EXPLOSIONS age out.
	g.ageExplosions()

	// 6. UFO spawn and flight.
	g.updateUFO()

	// 7. FORMATION + FIRE on the move cadence.
	g.moveTimer++
	if g.moveTimer >= g.moveInterval {
		g.moveTimer = 0
		g.formationTick()
	}
	g.releaseArmedShots()

	// 8. PLAYER-DOWN / GAME-OVER timers.
	if g.player.Destroyed {
		g.playerDown++
		if g.playerDown > g.cfg.Player.GameOverDelay {
			g.setState(StateGameOver)
		}
	}
}

// checkInvasion destroys the ship once any invader's feet reach its deck.
func (g *Game) checkInvasion() {
	if g.player.Destroyed {
		return
	}
	for _, inv := range g.invaders {
		if !inv.Destroyed && inv.Y+inv.H >= g.player.Y {
			g.player.Destroy()
			g.logEvent("P", "collision", "player_killed", "by invasion", 0)
			return
		}
	}
}

func (g *Game) explode(on Rect) {
	cell := g.cfg.Canvas.PixelSize
	g.explosions = append(g.explosions,
		newExplosion(on, explosionCellsW*cell, explosionCellsH*cell, g.tick+g.cfg.Effects.ExplosionTicks))
}

// sweep retires every entity destroyed this tick. Afterwards all lists hold
// only live entities again; barrier colliders are left in place.
func (g *Game) sweep(playerWasDown bool) {
	killed := 0
	live := g.invaders[:0]
	for _, inv := range g.invaders {
		if !inv.Destroyed {
			live = append(live, inv)
			continue
		}
		killed++
		g.explode(inv.Bounds())
		pts := g.rowPoints(inv.Row)
		g.score += pts
		g.logEvent(invaderLabel(inv), "collision", "invader_killed",
			fmt.Sprintf("row=%d col=%d", inv.Row, inv.Column), float64(inv.ID))
		g.logEvent(invaderLabel(inv), "score", "add", fmt.Sprintf("+%d", pts), float64(pts))
	}
	// Clear the tail so dropped invaders can be collected.
	for i := len(live); i < len(g.invaders); i++ {
		g.invaders[i] = nil
	}
	g.invaders = live
	if killed > 0 {
		g.killedTotal += killed
		if next := moveInterval(g.cfg.Formation, len(g.invaders)); next != g.moveInterval {
			g.logEvent("--", "formation", "ramp",
				fmt.Sprintf("interval %d → %d (remaining=%d)", g.moveInterval, next, len(g.invaders)), float64(next))
			g.moveInterval = next
		}
	}

	if g.ufo.Active && g.ufo.Destroyed {
		g.explode(g.ufo.Bounds())
		g.ufo.Active = false
		pts := g.ufoBonus()
		g.score += pts
		g.logEvent("UFO", "ufo", "destroyed", fmt.Sprintf("x=%.0f", g.ufo.X), 0)
		g.logEvent("UFO", "score", "add", fmt.Sprintf("+%d", pts), float64(pts))
	}

	for _, b := range g.player.sweepBullets() {
		g.explode(b.Bounds())
	}

	bottom := g.cfg.Canvas.Height
	kept := g.shots[:0]
	for _, s := range g.shots {
		switch {
		case s.Destroyed:
			g.explode(s.Bounds())
		case s.Y >= bottom:
		default:
			kept = append(kept, s)
		}
	}
	g.shots = kept

	if g.player.Destroyed && !playerWasDown {
		g.explode(g.player.Bounds())
	}
}

func (g *Game) rowPoints(row int) int {
	pts := g.cfg.Scoring.RowPoints
	if row < 0 || row >= len(pts) {
		return 0
	}
	return pts[row]
}

// ufoBonus draws the saucer's points. An empty table scores nothing.
func (g *Game) ufoBonus() int {
	pts := g.cfg.Scoring.UFOPoints
	if len(pts) == 0 {
		return 0
	}
	return pts[g.rng.Intn(len(pts))]
}

func (g *Game) ageExplosions() {
	kept := g.explosions[:0]
	for _, e := range g.explosions {
		if e.ExpiresAt > g.tick {
			kept = append(kept, e)
		}
	}
	g.explosions = kept
}

func (g *Game) updateUFO() {
	if g.ufo.advance(g.cfg.UFO.Speed, g.cfg.Canvas) {
		g.logEvent("UFO", "ufo", "escaped", g.ufo.Dir.String(), 0)
	}

	if g.ufoCtl.timer > 0 {
		g.ufoCtl.timer--
		return
	}
	g.ufoCtl.timer = nextUFOTime(g.rng, g.cfg.UFO)
	if g.ufo.Active {
		return
	}
	g.ufo.spawn(g.ufoCtl.spawns, g.cfg.Canvas)
	g.ufoCtl.spawns++
	g.logEvent("UFO", "ufo", "spawn", "heading "+g.ufo.Dir.String(), float64(g.ufoCtl.spawns))
}

func (g *Game) formationTick() {
	step := g.formation.Step(g.invaders)
	if step.Triggered {
		g.logEvent("--", "formation", "edge", fmt.Sprintf("queued rows %v", g.formation.Pending()), 0)
	}
	if step.DescendedRow >= 0 {
		g.logEvent("--", "formation", "descent", fmt.Sprintf("row=%d", step.DescendedRow), float64(step.DescendedRow))
	}
	if g.log != nil && step.Moved {
		g.log.AddVerbose(g.tick, "--", "formation", "move", "", 0)
	}

	if n := g.fire.Advance(g.rng, g.invaders, g.tick, g.moveInterval); n > 0 {
		g.logEvent("--", "fire", "volley", fmt.Sprintf("%d shots armed", n), float64(n))
	}
}

// releaseArmedShots turns due scheduled shots into projectiles below their
// shooters.
func (g *Game) releaseArmedShots() {
	shooters, dropped := g.fire.Due(g.tick, g.invaderByID)
	if dropped > 0 {
		g.logEvent("--", "fire", "dropped", fmt.Sprintf("%d stale", dropped), float64(dropped))
	}
	cell := g.cfg.Canvas.PixelSize
	w := g.cfg.Fire.ShotWidth * cell
	h := g.cfg.Fire.ShotHeight * cell
	for _, inv := range shooters {
		g.shots = append(g.shots, &Shot{
			GameObject: NewGameObject(inv.X+inv.W/2-w/2, inv.Y+inv.H, w, h, TagInvaderShot),
			VY:         g.cfg.Fire.ShotSpeed,
		})
		g.logEvent(invaderLabel(inv), "fire", "shot", fmt.Sprintf("col=%d", inv.Column), 0)
	}
}

func (g *Game) logEvent(subject, category, key, value string, num float64) {
	if g.log == nil {
		return
	}
	g.log.Add(g.tick, subject, category, key, value, num)
}

func invaderLabel(inv *Invader) string {
	return fmt.Sprintf("I%d", inv.ID)
}
