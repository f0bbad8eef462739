package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/invaders/internal/game"
)

func TestMenu_HiddenWhilePlaying(t *testing.T) {
	var m Menu
	m.Sync(game.StatePlaying)
	assert.False(t, m.Visible())
	assert.Equal(t, ActionNone, m.Select())
	m.Move(1)
	assert.Zero(t, m.Cursor())
}

func TestMenu_OptionsPerState(t *testing.T) {
	var m Menu
	m.Sync(game.StatePaused)
	assert.Equal(t, []Action{ActionContinue, ActionRetry, ActionQuit}, m.Options())
	assert.Equal(t, "Paused", m.Title())

	m.Sync(game.StateGameOver)
	assert.Equal(t, []Action{ActionRetry, ActionQuit}, m.Options())
	assert.Equal(t, "Game Over!", m.Title())

	m.Sync(game.StateWin)
	assert.Equal(t, []Action{ActionRetry, ActionQuit}, m.Options())
	assert.Equal(t, "You Win!", m.Title())
}

func TestMenu_CursorWraps(t *testing.T) {
	var m Menu
	m.Sync(game.StateGameOver)
	m.Move(1)
	assert.Equal(t, ActionQuit, m.Select())
	m.Move(1)
	assert.Equal(t, ActionRetry, m.Select())
	m.Move(-1)
	assert.Equal(t, ActionQuit, m.Select())
}

func TestMenu_StateChangeResetsCursor(t *testing.T) {
	var m Menu
	m.Sync(game.StatePaused)
	m.Move(2)
	assert.Equal(t, ActionQuit, m.Select())
	m.Sync(game.StatePaused)
	assert.Equal(t, 2, m.Cursor(), "same state keeps the cursor")
	m.Sync(game.StateGameOver)
	assert.Zero(t, m.Cursor())
}

func TestAction_Command(t *testing.T) {
	cmd, ok := ActionRetry.Command()
	assert.True(t, ok)
	assert.Equal(t, game.CommandRetry, cmd)

	cmd, ok = ActionContinue.Command()
	assert.True(t, ok)
	assert.Equal(t, game.CommandContinue, cmd)

	_, ok = ActionQuit.Command()
	assert.False(t, ok)
}

func TestMenu_DrivesGame(t *testing.T) {
	g := game.New(game.WithSeed(1))
	var m Menu

	g.Apply(game.CommandPause)
	m.Sync(g.State())
	if cmd, ok := m.Select().Command(); ok {
		g.Apply(cmd)
	}
	assert.Equal(t, game.StatePlaying, g.State())
}
