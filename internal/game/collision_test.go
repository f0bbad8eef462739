package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/invaders/internal/config"
)

func testPlayer() *Player {
	return NewPlayer(config.Default())
}

func bulletAt(x, y float64) *Shot {
	return &Shot{GameObject: NewGameObject(x, y, 6, 24, TagShot), VY: -10}
}

func enemyShotAt(x, y float64) *Shot {
	return &Shot{GameObject: NewGameObject(x, y, 6, 24, TagInvaderShot), VY: 6}
}

func invaderAt(id int, x, y float64) *Invader {
	return &Invader{GameObject: NewGameObject(x, y, 48, 48, TagInvader1), ID: id}
}

func TestCollision_BulletOnInvaderDestroysBoth(t *testing.T) {
	p := testPlayer()
	inv := invaderAt(1, 300, 300)
	b := &Shot{GameObject: NewGameObject(inv.X, inv.Y, inv.W, inv.H, TagShot)}
	p.bullets = []*Shot{b}

	rep := ResolveCollisions(p, []*Invader{inv}, nil, nil, &UFO{})
	assert.True(t, inv.Destroyed)
	assert.True(t, b.Destroyed)
	assert.Equal(t, 1, rep.InvadersHit)
}

func TestCollision_BulletBelowInvaderMisses(t *testing.T) {
	p := testPlayer()
	inv := invaderAt(1, 300, 300)
	p.bullets = []*Shot{bulletAt(310, inv.Y+inv.H+1)}

	rep := ResolveCollisions(p, []*Invader{inv}, nil, nil, &UFO{})
	assert.False(t, inv.Destroyed)
	assert.False(t, p.bullets[0].Destroyed)
	assert.Zero(t, rep.InvadersHit)
}

func TestCollision_BulletKillsOnlyOneInvader(t *testing.T) {
	p := testPlayer()
	a := invaderAt(1, 300, 300)
	b := invaderAt(2, 320, 300)
	p.bullets = []*Shot{bulletAt(330, 310)}

	rep := ResolveCollisions(p, []*Invader{a, b}, nil, nil, &UFO{})
	assert.Equal(t, 1, rep.InvadersHit)
	assert.True(t, a.Destroyed)
	assert.False(t, b.Destroyed)
}

func TestCollision_BulletCancelsEnemyShot(t *testing.T) {
	p := testPlayer()
	b := bulletAt(400, 400)
	s := enemyShotAt(400, 400)
	p.bullets = []*Shot{b}

	rep := ResolveCollisions(p, nil, []*Shot{s}, nil, &UFO{})
	assert.True(t, b.Destroyed)
	assert.True(t, s.Destroyed)
	assert.Equal(t, 1, rep.ShotsCancelled)
	assert.False(t, p.Destroyed)
}

func TestCollision_EnemyShotDestroysPlayer(t *testing.T) {
	p := testPlayer()
	s := enemyShotAt(p.X+10, p.Y+5)

	rep := ResolveCollisions(p, nil, []*Shot{s}, nil, &UFO{})
	require.True(t, rep.PlayerHit)
	assert.Equal(t, "shot", rep.PlayerHitBy)
	assert.True(t, p.IsDestroyed())
}

func TestCollision_InvaderBodyAndBulletKillAreIndependent(t *testing.T) {
	p := testPlayer()
	inv := invaderAt(1, p.X, p.Y-10)
	p.bullets = []*Shot{bulletAt(p.X+5, p.Y-10)}

	rep := ResolveCollisions(p, []*Invader{inv}, nil, nil, &UFO{})
	assert.True(t, inv.Destroyed, "bullet still kills the invader")
	assert.True(t, p.Destroyed, "invader body still kills the ship")
	assert.Equal(t, "invader", rep.PlayerHitBy)
}

func TestCollision_BulletChipsBarrier(t *testing.T) {
	p := testPlayer()
	bar := NewBarrier(600, 600, 6)
	p.bullets = []*Shot{bulletAt(600+12*6, 600)}

	rep := ResolveCollisions(p, nil, nil, []*Barrier{bar}, &UFO{})
	assert.Equal(t, 1, rep.BarrierHits)
	assert.Equal(t, 59, bar.LiveColliders())
	assert.True(t, p.bullets[0].Destroyed)
}

func TestCollision_EnemyShotChipsBarrier(t *testing.T) {
	p := testPlayer()
	bar := NewBarrier(600, 600, 6)
	s := enemyShotAt(600+12*6, 590)

	ResolveCollisions(p, nil, []*Shot{s}, []*Barrier{bar}, &UFO{})
	assert.True(t, s.Destroyed)
	assert.Equal(t, 59, bar.LiveColliders())
}

func TestCollision_UFOOnlyWhenActive(t *testing.T) {
	p := testPlayer()
	u := &UFO{GameObject: NewGameObject(500, 42, 96, 42, TagUFO)}
	p.bullets = []*Shot{bulletAt(520, 50)}

	rep := ResolveCollisions(p, nil, nil, nil, u)
	assert.False(t, rep.UFOHit)
	assert.False(t, u.Destroyed)

	u.Active = true
	rep = ResolveCollisions(p, nil, nil, nil, u)
	assert.True(t, rep.UFOHit)
	assert.True(t, u.Destroyed)
	assert.True(t, p.bullets[0].Destroyed)
}

func TestCollision_InvaderErodesBarrier(t *testing.T) {
	p := testPlayer()
	bar := NewBarrier(600, 600, 6)
	inv := invaderAt(1, 600, 600)

	rep := ResolveCollisions(p, []*Invader{inv}, nil, []*Barrier{bar}, &UFO{})
	assert.Positive(t, rep.BarrierEroded)
	assert.False(t, inv.Destroyed, "invaders survive crushing cover")
	assert.Equal(t, 60-rep.BarrierEroded, bar.LiveColliders())
}
