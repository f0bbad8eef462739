package game

import (
	"sort"

	"github.com/Garsondee/invaders/internal/config"
)

// invaderCellsH is the sprite height of every invader, in cells.
const invaderCellsH = 8

// rowLayout describes one formation row: sprite width in cells, tag, the x of
// the first invader and the gap to the next, both in canvas units.
type rowLayout struct {
	cellsW float64
	tag    TextureTag
	startX float64
	stepX  float64
}

// formationLayout returns the per-row layouts for the classic five-row grid.
// Narrower sprites sit further in so every column shares roughly the same
// centre line.
func formationLayout(canvasW, cell float64) []rowLayout {
	w80 := canvasW / 80
	w160 := canvasW / 160
	w320 := canvasW / 320
	return []rowLayout{
		{cellsW: 8, tag: TagInvader1, startX: w80, stepX: 8*cell + 2*w80},
		{cellsW: 11, tag: TagInvader2, startX: w160 + w320, stepX: 11*cell + w80 + w320},
		{cellsW: 11, tag: TagInvader2, startX: w160 + w320, stepX: 11*cell + w80 + w320},
		{cellsW: 12, tag: TagInvader3, startX: w160 + w320, stepX: 12*cell + w80},
		{cellsW: 12, tag: TagInvader3, startX: w160, stepX: 12*cell + w80},
	}
}

// buildFormation lays out a fresh rows×columns grid, all moving right. IDs are
// assigned from 1 in row-major order.
func buildFormation(t config.Tuning) []*Invader {
	cell := t.Canvas.PixelSize
	layout := formationLayout(t.Canvas.Width, cell)
	invaders := make([]*Invader, 0, t.Formation.Rows*t.Formation.Columns)

	nextID := 1
	for row := 0; row < t.Formation.Rows; row++ {
		rl := layout[min(row, len(layout)-1)]
		y := t.Formation.OriginY + float64(row)*t.Formation.RowSpacing
		x := rl.startX
		for col := 0; col < t.Formation.Columns; col++ {
			invaders = append(invaders, &Invader{
				GameObject: NewGameObject(x, y, rl.cellsW*cell, invaderCellsH*cell, rl.tag),
				ID:         nextID,
				Row:        row,
				Column:     col,
				Dir:        DirRight,
			})
			nextID++
			x += rl.stepX
		}
	}
	return invaders
}

// --- Lockstep movement ---

// FormationStep reports what one interval tick of formation movement did.
type FormationStep struct {
	Triggered    bool // an edge was reached and descents were queued this tick
	DescendedRow int  // row that stepped down this tick, or -1
	Moved        bool // the formation stepped horizontally
}

// Formation advances the invader grid. Reaching an edge queues every row for
// a one-row-per-tick descent; the grid only moves sideways while nothing is
// queued.
type Formation struct {
	HorizontalStep float64
	DescentStep    float64
	LeftEdge       float64
	RightEdge      float64

	queue []int // rows still owing a descent step, front first
}

// NewFormation returns a Formation configured from the tuning.
func NewFormation(t config.Tuning) *Formation {
	return &Formation{
		HorizontalStep: t.Formation.HorizontalStep,
		DescentStep:    t.Formation.DescentStep,
		LeftEdge:       t.Canvas.LeftEdge,
		RightEdge:      t.Canvas.RightEdge,
	}
}

// Pending returns a copy of the rows still queued for descent.
func (f *Formation) Pending() []int {
	return append([]int(nil), f.queue...)
}

// atEdge reports whether an invader has reached the boundary it is heading for.
func (f *Formation) atEdge(inv *Invader) bool {
	if inv.Dir == DirRight {
		return inv.X+inv.W >= f.RightEdge
	}
	return inv.X <= f.LeftEdge
}

// Step performs one interval tick over the live invaders.
func (f *Formation) Step(invaders []*Invader) FormationStep {
	step := FormationStep{DescendedRow: -1}

	if len(f.queue) == 0 {
		triggering := map[int]bool{}
		for _, inv := range invaders {
			if !inv.Destroyed && f.atEdge(inv) {
				triggering[inv.Row] = true
			}
		}
		if len(triggering) > 0 {
			step.Triggered = true
			f.queue = descentOrder(invaders, triggering)
		}
	}

	if len(f.queue) > 0 {
		row := f.queue[0]
		f.queue = f.queue[1:]
		for _, inv := range invaders {
			if inv.Destroyed || inv.Row != row {
				continue
			}
			inv.Y += f.DescentStep
			inv.Dir = inv.Dir.Flip()
		}
		step.DescendedRow = row
		return step
	}

	for _, inv := range invaders {
		if inv.Destroyed {
			continue
		}
		inv.X += inv.Dir.Sign() * f.HorizontalStep
	}
	step.Moved = len(invaders) > 0
	return step
}

// descentOrder lists every row present among live invaders once: rows that
// hit the edge first, then the rest, each group ascending.
func descentOrder(invaders []*Invader, first map[int]bool) []int {
	present := map[int]bool{}
	for _, inv := range invaders {
		if !inv.Destroyed {
			present[inv.Row] = true
		}
	}
	rows := make([]int, 0, len(present))
	for r := range present {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if first[rows[i]] != first[rows[j]] {
			return first[rows[i]]
		}
		return rows[i] < rows[j]
	})
	return rows
}

// --- Difficulty ramp ---

// moveInterval returns the formation cadence for the given number of live
// invaders. Each ramp step whose threshold has been reached can only lower the
// interval, and the result never drops below the configured floor.
func moveInterval(f config.FormationConfig, remaining int) int {
	interval := f.InitialInterval
	for _, step := range f.Ramp {
		if remaining <= step.Remaining && step.Interval < interval {
			interval = step.Interval
		}
	}
	if interval < f.MinInterval {
		interval = f.MinInterval
	}
	return interval
}
