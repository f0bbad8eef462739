package game

// Key is an abstract game control. Hosts map their own key codes onto these.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyFire
	KeyPause
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Input is an immutable snapshot of which controls are held this tick.
type Input struct {
	held [keyCount]bool
}

// NewInput returns a snapshot with the given keys held.
func NewInput(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			in.held[k] = true
		}
	}
	return in
}

// With returns a copy of the snapshot with k held.
func (in Input) With(k Key) Input {
	if k >= 0 && k < keyCount {
		in.held[k] = true
	}
	return in
}

// Without returns a copy of the snapshot with k released.
func (in Input) Without(k Key) Input { return in.withKey(k, false) }

// withKey returns a copy with k set to held.
func (in Input) withKey(k Key, held bool) Input {
	if k >= 0 && k < keyCount {
		in.held[k] = held
	}
	return in
}

// Held reports whether k is pressed in this snapshot.
func (in Input) Held(k Key) bool {
	return k >= 0 && k < keyCount && in.held[k]
}

// KeyEdges holds the transitions between two consecutive snapshots.
type KeyEdges struct {
	down [keyCount]bool
	up   [keyCount]bool
}

// Edges compares the previous and current snapshots.
func Edges(prev, cur Input) KeyEdges {
	var e KeyEdges
	for k := Key(0); k < keyCount; k++ {
		e.down[k] = cur.held[k] && !prev.held[k]
		e.up[k] = !cur.held[k] && prev.held[k]
	}
	return e
}

// Down reports a press transition.
func (e KeyEdges) Down(k Key) bool { return k >= 0 && k < keyCount && e.down[k] }

// Up reports a release transition.
func (e KeyEdges) Up(k Key) bool { return k >= 0 && k < keyCount && e.up[k] }
