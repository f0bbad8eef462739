package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/invaders/internal/config"
)

func TestUFO_AlternatesEntrySide(t *testing.T) {
	c := config.Default().Canvas
	var u UFO
	for i := 0; i < 4; i++ {
		u.spawn(i, c)
		require.True(t, u.Active)
		if i%2 == 0 {
			assert.Equal(t, DirRight, u.Dir, "spawn %d", i)
			assert.Equal(t, c.LeftEdge-u.W, u.X, "spawn %d", i)
		} else {
			assert.Equal(t, DirLeft, u.Dir, "spawn %d", i)
			assert.Equal(t, c.RightEdge, u.X, "spawn %d", i)
		}
	}
}

func TestUFO_EscapesWithoutExplosion(t *testing.T) {
	c := config.Default().Canvas
	var u UFO
	u.spawn(0, c)
	ticks := 0
	for u.Active {
		escaped := u.advance(10, c)
		ticks++
		if escaped {
			break
		}
		require.Less(t, ticks, 1000)
	}
	assert.False(t, u.Active)
	assert.False(t, u.Destroyed)
	assert.GreaterOrEqual(t, u.X, c.RightEdge)
}

func TestUFO_InactiveDoesNotMove(t *testing.T) {
	u := UFO{GameObject: NewGameObject(10, 10, 5, 5, TagUFO)}
	assert.False(t, u.advance(10, config.Default().Canvas))
	assert.Equal(t, 10.0, u.X)
}

func TestNextUFOTime_WithinJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(11)) // #nosec G404 -- test
	cfg := config.Default().UFO
	for i := 0; i < 500; i++ {
		n := nextUFOTime(rng, cfg)
		require.GreaterOrEqual(t, n, cfg.BaseInterval-cfg.Jitter)
		require.LessOrEqual(t, n, cfg.BaseInterval+cfg.Jitter)
	}
	cfg.Jitter = 0
	assert.Equal(t, cfg.BaseInterval, nextUFOTime(rng, cfg))
}
