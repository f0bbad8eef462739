package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimLog_FilterAndCounts(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "I1", "collision", "invader_killed", "row=0 col=0", 1)
	sl.Add(2, "UFO", "ufo", "spawn", "heading right", 1)
	sl.Add(5, "I7", "collision", "invader_killed", "row=0 col=6", 7)
	sl.AddVerbose(5, "--", "formation", "move", "", 0)

	assert.Equal(t, 3, sl.Len(), "verbose entries are dropped when verbose is off")
	assert.Equal(t, 2, sl.CountCategory("collision", "invader_killed"))
	assert.Len(t, sl.Filter("", "spawn"), 1)
	assert.Len(t, sl.FilterTickRange(2, 5), 2)
	assert.Equal(t, 2, sl.FirstTick("ufo", "spawn"))
	assert.Equal(t, -1, sl.FirstTick("ufo", "escaped"))
	assert.True(t, sl.HasEntry("collision", "", "col=6"))
	assert.False(t, sl.HasEntry("collision", "", "col=9"))

	last, ok := sl.LastOf("collision", "invader_killed")
	require.True(t, ok)
	assert.Equal(t, "I7", last.Subject)
}

func TestSimLog_SinceAndClear(t *testing.T) {
	sl := NewSimLog(true)
	sl.Add(1, "P", "player", "shot", "x=10", 0)
	cursor := sl.Len()
	sl.Add(2, "P", "player", "shot", "x=20", 0)
	require.Len(t, sl.Since(cursor), 1)
	assert.Equal(t, 2, sl.Since(cursor)[0].Tick)

	sl.Clear()
	sl.Add(3, "P", "player", "shot", "x=30", 0)
	// A stale cursor past the end yields everything recorded since the clear.
	got := sl.Since(5)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Tick)
}

func TestSimLog_Format(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(42, "I23", "collision", "invader_killed", "row=2 col=4", 23)
	out := sl.Format()
	assert.True(t, strings.HasPrefix(out, "[T=0042] I23"))
	assert.Contains(t, out, "invader_killed")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestScript_ReplaysThenIdles(t *testing.T) {
	g := New(WithSeed(1), WithSimLog(NewSimLog(false)))
	src := &Script{Frames: []Input{NewInput(KeyFire), {}, NewInput(KeyFire)}}
	g.RunTicks(5, src)
	assert.Equal(t, 5, g.Tick())
	assert.Equal(t, 1, g.Log().CountCategory("player", "shot"), "second press lands inside the cooldown")
	assert.Equal(t, Input{}, src.Next(g))
}
