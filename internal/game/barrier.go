package game

// Barrier sprite dimensions in cells.
const (
	barrierCellsW = 24
	barrierCellsH = 18
)

// barrierProfile lists, for each column of the left half of the barrier, the
// heights (in cells) of up to three stacked colliders. 0 means no material.
// The right half uses the same table reversed.
var barrierProfile = [barrierCellsW / 2][3]int{
	{5, 5, 5},
	{5, 5, 6},
	{5, 6, 6},
	{6, 6, 6},
	{6, 6, 6},
	{6, 6, 6},
	{6, 6, 0},
	{6, 5, 0},
	{5, 5, 0},
	{4, 5, 0},
	{4, 4, 0},
	{4, 4, 0},
}

// Collider is an independently destructible block of a barrier.
type Collider struct {
	Rect
	Destroyed bool
}

// Barrier is a fixed cover sprite plus the colliders that approximate its
// silhouette. Colliders are never removed; destroyed ones render as craters.
type Barrier struct {
	GameObject
	Colliders []Collider
}

// NewBarrier builds a barrier with its top-left corner at (x, y).
func NewBarrier(x, y, cell float64) *Barrier {
	b := &Barrier{
		GameObject: NewGameObject(x, y, barrierCellsW*cell, barrierCellsH*cell, TagBarrier),
	}
	b.Colliders = barrierColliders(x, y, cell)
	return b
}

// barrierColliders tiles the barrier silhouette column by column. The three
// outermost columns on each side start lower to round the top corners.
func barrierColliders(x, y, cell float64) []Collider {
	var out []Collider
	for i := 0; i < barrierCellsW; i++ {
		nextY := y + float64(columnInset(i))*cell
		nextX := x + float64(i)*cell
		for _, h := range columnHeights(i) {
			if h == 0 {
				continue
			}
			out = append(out, Collider{Rect: Rect{X: nextX, Y: nextY, W: cell, H: float64(h) * cell}})
			nextY += float64(h) * cell
		}
	}
	return out
}

func columnInset(i int) int {
	switch i {
	case 0, barrierCellsW - 1:
		return 3
	case 1, barrierCellsW - 2:
		return 2
	case 2, barrierCellsW - 3:
		return 1
	default:
		return 0
	}
}

func columnHeights(i int) [3]int {
	half := barrierCellsW / 2
	if i < half {
		return barrierProfile[i]
	}
	return barrierProfile[barrierCellsW-1-i]
}

// LiveColliders counts colliders not yet destroyed.
func (b *Barrier) LiveColliders() int {
	n := 0
	for i := range b.Colliders {
		if !b.Colliders[i].Destroyed {
			n++
		}
	}
	return n
}

// hit destroys the first live collider overlapping r and reports whether one
// was found.
func (b *Barrier) hit(r Rect) bool {
	if !Overlaps(b.Bounds(), r) {
		return false
	}
	for i := range b.Colliders {
		c := &b.Colliders[i]
		if !c.Destroyed && Overlaps(c.Rect, r) {
			c.Destroyed = true
			return true
		}
	}
	return false
}

// erode destroys every live collider overlapping r and returns how many fell.
func (b *Barrier) erode(r Rect) int {
	if !Overlaps(b.Bounds(), r) {
		return 0
	}
	n := 0
	for i := range b.Colliders {
		c := &b.Colliders[i]
		if !c.Destroyed && Overlaps(c.Rect, r) {
			c.Destroyed = true
			n++
		}
	}
	return n
}
