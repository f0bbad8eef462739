package game

import (
	"fmt"
	"slices"
	"strings"
)

// DebugReport renders a plain-text snapshot of the game plus the last
// lastTicks ticks of events, suitable for pasting into a bug report.
func (g *Game) DebugReport(lastTicks int) string {
	if lastTicks <= 0 {
		lastTicks = 120
	}
	toTick := g.tick
	fromTick := toTick - lastTicks + 1
	if fromTick < 0 {
		fromTick = 0
	}

	snap := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "--- Invaders debug report ---\n")
	fmt.Fprintf(&b, "tick=%d state=%s score=%d tick_range=[%d..%d]\n", snap.Tick, snap.State, snap.Score, fromTick, toTick)
	fmt.Fprintf(&b, "invaders=%d killed=%d interval=%d move_timer=%d pending_rows=%v\n",
		snap.Invaders, g.killedTotal, snap.MoveInterval, g.moveTimer, snap.PendingRows)
	fmt.Fprintf(&b, "enemy_shots=%d armed=%d bullets=%d explosions=%d barrier_cells=%d\n",
		snap.Shots, snap.ArmedShots, snap.Bullets, snap.Explosions, snap.LiveCells)
	fmt.Fprintf(&b, "player x=%.0f down=%t cooldown=%d down_ticks=%d\n",
		snap.PlayerX, snap.PlayerDown, g.player.Cooldown(), g.playerDown)
	fmt.Fprintf(&b, "ufo active=%t spawns=%d next_spawn_in=%d\n\n", snap.UFOActive, g.ufoCtl.spawns, g.ufoCtl.timer)

	b.WriteString("rows:\n")
	for _, rs := range rowStats(g.invaders) {
		fmt.Fprintf(&b, "  row %d: live=%d dir=%s y=%.0f x=[%.0f..%.0f]\n",
			rs.row, rs.live, rs.dir, rs.y, rs.minX, rs.maxX)
	}

	b.WriteString("\nbarriers:\n")
	for i, bar := range g.barriers {
		fmt.Fprintf(&b, "  %d: %d/%d cells\n", i, bar.LiveColliders(), len(bar.Colliders))
	}

	if g.log == nil {
		b.WriteString("\n(event log disabled)\n")
		return b.String()
	}
	entries := g.log.FilterTickRange(fromTick, toTick)
	fmt.Fprintf(&b, "\nevents (%d):\n", len(entries))
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

type rowStat struct {
	row        int
	live       int
	dir        Direction
	y          float64
	minX, maxX float64
}

// rowStats groups live invaders by row, ordered top to bottom.
func rowStats(invaders []*Invader) []rowStat {
	byRow := map[int]*rowStat{}
	var order []int
	for _, inv := range invaders {
		rs, ok := byRow[inv.Row]
		if !ok {
			rs = &rowStat{row: inv.Row, dir: inv.Dir, y: inv.Y, minX: inv.X, maxX: inv.X + inv.W}
			byRow[inv.Row] = rs
			order = append(order, inv.Row)
		}
		rs.live++
		rs.minX = min(rs.minX, inv.X)
		rs.maxX = max(rs.maxX, inv.X+inv.W)
	}
	slices.Sort(order)
	out := make([]rowStat, 0, len(order))
	for _, r := range order {
		out = append(out, *byRow[r])
	}
	return out
}
