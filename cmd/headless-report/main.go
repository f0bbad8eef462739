package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/invaders/internal/config"
	"github.com/Garsondee/invaders/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstKillTick    int
	firstVolleyTick  int
	firstDescentTick int
	firstUFOTick     int
	playerDeathTick  int

	volleys     int
	descents    int
	barrierHits int
	cellsLost   int
	totalCells  int

	report game.OutcomeReport
	debug  string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configPath string
	var dodge bool
	var debugTicks int

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "maximum ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "", "YAML tuning file (defaults built in)")
	flag.BoolVar(&dodge, "dodge", true, "let the autopilot sidestep enemy shots")
	flag.IntVar(&debugTicks, "debug", 0, "print a debug report covering the last N ticks of each run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Invaders Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d dodge=%t\n\n", runs, ticks, seedBase, seedStep, dodge)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, seed, ticks, cfg, dodge, debugTicks)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runAutopilot plays one game with the bot until it ends or ticks run out.
func runAutopilot(runIndex int, seed int64, ticks int, cfg config.Tuning, dodge bool, debugTicks int) runStats {
	sl := game.NewSimLog(false)
	g := game.New(game.WithTuning(cfg), game.WithSeed(seed), game.WithSimLog(sl))
	bot := &game.Autopilot{Dodge: dodge}
	g.RunUntil(func(g *game.Game) bool { return g.State().Terminal() }, ticks, bot)

	entries := sl.Entries()
	cellsLost := 0
	for _, e := range entries {
		if e.Category == "collision" && (e.Key == "barrier_eroded" || e.Key == "barrier_hit") {
			cellsLost += int(e.NumVal)
		}
	}
	totalCells := 0
	for _, b := range g.Barriers() {
		totalCells += len(b.Colliders)
	}

	rs := runStats{
		runIndex:         runIndex,
		seed:             seed,
		firstKillTick:    firstTick(entries, "collision", "invader_killed", ""),
		firstVolleyTick:  firstTick(entries, "fire", "volley", ""),
		firstDescentTick: firstTick(entries, "formation", "descent", ""),
		firstUFOTick:     firstTick(entries, "ufo", "spawn", ""),
		playerDeathTick:  firstTick(entries, "collision", "player_killed", ""),
		volleys:          sl.CountCategory("fire", "volley"),
		descents:         sl.CountCategory("formation", "descent"),
		barrierHits:      sl.CountCategory("collision", "barrier_hit"),
		cellsLost:        cellsLost,
		totalCells:       totalCells,
		report:           g.Outcome(),
	}
	if debugTicks > 0 {
		rs.debug = g.DebugReport(debugTicks)
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

// pacing labels how a run went.
func pacing(rs runStats) string {
	r := rs.report
	switch r.Outcome {
	case game.OutcomeWin:
		return "cleared"
	case game.OutcomeGameOver:
		if strings.HasSuffix(r.Description, "invasion") {
			return "overrun"
		}
		return "shot_down"
	}
	total := r.InvadersKilled + r.InvadersLeft
	if total == 0 || float64(r.InvadersKilled)/float64(total) < 0.5 {
		return "stalled"
	}
	return "unfinished"
}

func printRun(rs runStats) {
	r := rs.report
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s description=%s pacing=%s ticks=%d score=%d\n",
		r.Outcome, r.Description, pacing(rs), r.Ticks, r.Score)
	fmt.Printf("phase_markers: first_kill=%d first_volley=%d first_descent=%d first_ufo=%d player_death=%d\n",
		rs.firstKillTick, rs.firstVolleyTick, rs.firstDescentTick, rs.firstUFOTick, rs.playerDeathTick)
	fmt.Printf("invaders: killed=%d left=%d lowest_row_y=%.0f\n", r.InvadersKilled, r.InvadersLeft, r.LowestRowY)
	fmt.Printf("event_totals: shots_fired=%d enemy_shots=%d volleys=%d descents=%d ufo_spawned=%d ufo_destroyed=%d\n",
		r.ShotsFired, r.EnemyShots, rs.volleys, rs.descents, r.UFOsSpawned, r.UFOsDestroyed)
	fmt.Printf("barriers: hits=%d cells_lost=%d/%d\n", rs.barrierHits, rs.cellsLost, rs.totalCells)
	if rs.debug != "" {
		fmt.Print(rs.debug)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalKilled := 0
	totalShots := 0
	totalEnemyShots := 0
	totalUFO := 0
	totalUFOKilled := 0
	outcomes := map[string]int{}
	paces := map[string]int{}

	killTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))
	endTicks := make([]int, 0, len(all))
	best := 0

	for _, rs := range all {
		r := rs.report
		totalScore += r.Score
		totalKilled += r.InvadersKilled
		totalShots += r.ShotsFired
		totalEnemyShots += r.EnemyShots
		totalUFO += r.UFOsSpawned
		totalUFOKilled += r.UFOsDestroyed
		outcomes[r.Outcome.String()]++
		paces[pacing(rs)]++
		best = max(best, r.Score)
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.playerDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.playerDeathTick)
		}
		if r.Outcome != game.OutcomeInconclusive {
			endTicks = append(endTicks, r.Ticks)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d outcomes=[%s] pacing=[%s]\n", len(all), joinCounts(outcomes), joinCounts(paces))
	fmt.Printf("score: avg=%.1f best=%d\n", avg(totalScore, len(all)), best)
	fmt.Printf("avg_per_run: killed=%.1f shots_fired=%.1f enemy_shots=%.1f ufo_spawned=%.1f ufo_destroyed=%.1f\n",
		avg(totalKilled, len(all)), avg(totalShots, len(all)), avg(totalEnemyShots, len(all)), avg(totalUFO, len(all)), avg(totalUFOKilled, len(all)))
	fmt.Printf("accuracy=%s\n", ratioString(totalKilled+totalUFOKilled, totalShots))
	fmt.Printf("phase_marker_avg_ticks: first_kill=%s player_death=%s game_end=%s\n",
		avgTickString(killTicks), avgTickString(deathTicks), avgTickString(endTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func ratioString(hits, total int) string {
	if total <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(hits)/float64(total)*100)
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, ",")
}
