package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBarrier_Deterministic(t *testing.T) {
	a := NewBarrier(160, 810, 6)
	b := NewBarrier(160, 810, 6)
	require.Equal(t, a.Colliders, b.Colliders)
	assert.Equal(t, 60, len(a.Colliders))
}

func TestNewBarrier_CollidersInsideSprite(t *testing.T) {
	b := NewBarrier(100, 200, 6)
	for i, c := range b.Colliders {
		assert.Equal(t, 6.0, c.W, "collider %d width", i)
		assert.GreaterOrEqual(t, c.X, b.X, "collider %d left", i)
		assert.LessOrEqual(t, c.MaxX(), b.X+b.W, "collider %d right", i)
		assert.GreaterOrEqual(t, c.Y, b.Y, "collider %d top", i)
		assert.LessOrEqual(t, c.MaxY(), b.Y+b.H, "collider %d bottom", i)
	}
}

func TestNewBarrier_MirroredSilhouette(t *testing.T) {
	b := NewBarrier(0, 0, 1)
	type slot struct{ y, h float64 }
	cols := map[float64][]slot{}
	for _, c := range b.Colliders {
		cols[c.X] = append(cols[c.X], slot{c.Y, c.H})
	}
	for i := 0; i < barrierCellsW/2; i++ {
		left := cols[float64(i)]
		right := cols[float64(barrierCellsW-1-i)]
		assert.Equal(t, left, right, "column %d should mirror column %d", i, barrierCellsW-1-i)
	}
	// Outer columns start lower than the middle.
	assert.Equal(t, 3.0, cols[0][0].y)
	assert.Equal(t, 0.0, cols[12][0].y)
}

func TestBarrierHit_DestroysOneCollider(t *testing.T) {
	b := NewBarrier(0, 0, 6)
	live := b.LiveColliders()
	probe := Rect{X: 12*6 + 1, Y: 0, W: 4, H: 200}
	require.True(t, b.hit(probe))
	assert.Equal(t, live-1, b.LiveColliders())
	assert.Len(t, b.Colliders, live, "colliders are flagged, never removed")
}

func TestBarrierHit_MissOutsideBounds(t *testing.T) {
	b := NewBarrier(0, 0, 6)
	assert.False(t, b.hit(Rect{X: 500, Y: 500, W: 5, H: 5}))
	assert.Equal(t, 60, b.LiveColliders())
}

func TestBarrierHit_DestroyedCellsAreSkipped(t *testing.T) {
	b := NewBarrier(0, 0, 6)
	probe := Rect{X: 12*6 + 1, Y: 0, W: 4, H: 200}
	hits := 0
	for b.hit(probe) {
		hits++
	}
	// One column of the middle section holds two colliders.
	assert.Equal(t, 2, hits)
}

func TestBarrierErode_DestroysEverythingUnderneath(t *testing.T) {
	b := NewBarrier(0, 0, 6)
	n := b.erode(b.Bounds())
	assert.Equal(t, 60, n)
	assert.Zero(t, b.LiveColliders())
	assert.Zero(t, b.erode(b.Bounds()))
}
