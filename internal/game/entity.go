package game

// --- Texture tags ---

// TextureTag identifies which sprite a renderer should draw for an object.
type TextureTag int

const (
	TagNone TextureTag = iota
	TagPlayer
	TagShot        // player bullet
	TagInvaderShot // enemy projectile
	TagInvader1    // back row
	TagInvader2    // middle rows
	TagInvader3    // front rows
	TagBarrier
	TagBarrierMask // crater drawn over a destroyed collider
	TagUFO
	TagExplosion
)

// String returns the texture key used by renderers.
func (t TextureTag) String() string {
	switch t {
	case TagPlayer:
		return "player_texture"
	case TagShot:
		return "shot_texture"
	case TagInvaderShot:
		return "invader_shot_texture"
	case TagInvader1:
		return "invader_texture1"
	case TagInvader2:
		return "invader_texture2"
	case TagInvader3:
		return "invader_texture3"
	case TagBarrier:
		return "barrier_texture"
	case TagBarrierMask:
		return "barrier_mask_texture"
	case TagUFO:
		return "ufo_texture"
	case TagExplosion:
		return "explosion_texture"
	default:
		return "missing_texture"
	}
}

// --- GameObject ---

// GameObject is the positioned, sized, destroyable primitive every entity embeds.
type GameObject struct {
	X, Y      float64
	W, H      float64
	Tag       TextureTag
	Destroyed bool
}

// NewGameObject returns a live object.
func NewGameObject(x, y, w, h float64, tag TextureTag) GameObject {
	return GameObject{X: x, Y: y, W: w, H: h, Tag: tag}
}

// Bounds returns the object's rectangle.
func (o *GameObject) Bounds() Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Destroy flags the object. Idempotent.
func (o *GameObject) Destroy() { o.Destroyed = true }

// --- Direction ---

// Direction is the horizontal heading of an invader or the UFO.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Sign returns +1 for Right and -1 for Left.
func (d Direction) Sign() float64 {
	if d == DirLeft {
		return -1
	}
	return 1
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// --- Invader ---

// Invader is one member of the formation. ID is stable for the lifetime of a
// game and is how scheduled shots find their shooter.
type Invader struct {
	GameObject
	ID     int
	Row    int // 0 = back row
	Column int
	Dir    Direction
}

// --- Shot ---

// Shot is a vertically moving projectile. VY is negative for player bullets.
type Shot struct {
	GameObject
	VY float64
}

// Advance moves the shot one tick.
func (s *Shot) Advance() { s.Y += s.VY }

// --- Explosion ---

// Explosion is a transient effect that disappears once the game tick reaches
// ExpiresAt.
type Explosion struct {
	GameObject
	ExpiresAt int
}

// newExplosion centres an explosion sprite of w×h on the given bounds.
func newExplosion(on Rect, w, h float64, expiresAt int) Explosion {
	return Explosion{
		GameObject: NewGameObject(on.CenterX()-w/2, on.Y+on.H/2-h/2, w, h, TagExplosion),
		ExpiresAt:  expiresAt,
	}
}
