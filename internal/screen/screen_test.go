package screen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/invaders/internal/game"
	"github.com/Garsondee/invaders/internal/store"
	"github.com/Garsondee/invaders/internal/ui"
)

func TestEventFeed_RingKeepsNewest(t *testing.T) {
	f := NewEventFeed()
	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(game.SimLogEntry{Tick: i, Category: "collision", Key: "invader_killed"})
	}
	got := f.Recent()
	require.Len(t, got, feedMaxEntries)
	assert.Equal(t, 5, got[0].Tick)
	assert.Equal(t, feedMaxEntries+4, got[len(got)-1].Tick)

	f.Reset()
	assert.Empty(t, f.Recent())
}

func TestEventFeed_FiltersNoise(t *testing.T) {
	f := NewEventFeed()
	f.Add(game.SimLogEntry{Category: "player", Key: "shot"})
	f.Add(game.SimLogEntry{Category: "fire", Key: "shot"})
	f.Add(game.SimLogEntry{Category: "fire", Key: "volley"})
	got := f.Recent()
	require.Len(t, got, 1)
	assert.Equal(t, "volley", got[0].Key)
}

func TestSampleInput_MapsBindings(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeySpace: true}
	in := sampleInput(func(k ebiten.Key) bool { return down[k] })
	assert.True(t, in.Held(game.KeyLeft))
	assert.True(t, in.Held(game.KeyFire))
	assert.False(t, in.Held(game.KeyRight))
	assert.False(t, in.Held(game.KeyPause))
}

func TestSampleMenuKeys(t *testing.T) {
	k := sampleMenuKeys(func(k ebiten.Key) bool { return k == ebiten.KeyS || k == ebiten.KeyEnter })
	assert.True(t, k.down)
	assert.True(t, k.selectKey)
	assert.False(t, k.up)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	g := game.New(game.WithSeed(5), game.WithSimLog(game.NewSimLog(false)))
	return NewApp(g, store.NewHighScores(nil), 5)
}

func TestApp_SubmitsFinishedRunOnce(t *testing.T) {
	a := newTestApp(t)
	a.game.Player().Destroy()
	a.game.RunTicks(3, nil)
	require.Equal(t, game.StateGameOver, a.game.State())

	a.submitScore()
	a.submitScore()
	top := a.scores.Top()
	require.Len(t, top, 1)
	assert.Equal(t, "game_over", top[0].Outcome)
	assert.Equal(t, int64(5), top[0].Seed)
}

func TestApp_DrainLogFillsFeed(t *testing.T) {
	a := newTestApp(t)
	a.game.Player().Destroy()
	a.game.RunTicks(3, nil)
	a.drainLog()
	assert.NotEmpty(t, a.feed.Recent())
	n := len(a.feed.Recent())
	a.drainLog()
	assert.Len(t, a.feed.Recent(), n, "already drained entries are not repeated")
}

func TestApp_RetryResetsHostState(t *testing.T) {
	a := newTestApp(t)
	a.game.Player().Destroy()
	a.game.RunTicks(3, nil)
	a.drainLog()
	a.submitScore()

	a.menu.Sync(a.game.State())
	require.Equal(t, ui.ActionRetry, a.menu.Select())
	assert.True(t, a.handleMenu(menuKeys{selectKey: true}))
	assert.Equal(t, game.StatePlaying, a.game.State())
	assert.False(t, a.submitted)
	assert.Zero(t, a.logCursor)
	assert.Empty(t, a.feed.Recent())
}

func TestApp_SelectKeyDoesNotFireAfterResume(t *testing.T) {
	a := newTestApp(t)
	a.game.Apply(game.CommandPause)
	a.menu.Sync(a.game.State())
	require.Equal(t, ui.ActionContinue, a.menu.Select())
	require.True(t, a.handleMenu(menuKeys{selectKey: true}))
	require.Equal(t, game.StatePlaying, a.game.State())

	fire := game.NewInput(game.KeyFire)
	a.stepGame(fire)
	a.stepGame(fire)
	assert.Empty(t, a.game.Player().Bullets(), "space still held from the menu must not fire")

	a.stepGame(game.Input{})
	a.stepGame(fire)
	assert.Len(t, a.game.Player().Bullets(), 1, "a fresh press fires again")
}

func TestApp_QuitTerminates(t *testing.T) {
	a := newTestApp(t)
	a.game.Apply(game.CommandPause)
	a.menu.Sync(a.game.State())
	assert.False(t, a.handleMenu(menuKeys{down: true}))
	assert.False(t, a.handleMenu(menuKeys{down: true}))
	require.Equal(t, ui.ActionQuit, a.menu.Select())
	a.handleMenu(menuKeys{selectKey: true})
	assert.ErrorIs(t, a.Update(), ebiten.Termination)
}

func TestApp_LayoutAddsFeedPanel(t *testing.T) {
	a := newTestApp(t)
	w, h := a.Layout(0, 0)
	c := a.game.Tuning().Canvas
	assert.Equal(t, int(c.Width)+feedPanelWidth, w)
	assert.Equal(t, int(c.Height), h)
}
