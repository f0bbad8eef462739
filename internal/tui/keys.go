package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/invaders/internal/game"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held for a few ticks after its most recent event.
const (
	moveHoldTicks = 10 // bridges the initial auto-repeat delay
	tapHoldTicks  = 1
)

// holdTracker turns a stream of key events into per-tick input snapshots.
type holdTracker struct {
	remaining map[game.Key]int
}

func newHoldTracker() *holdTracker {
	return &holdTracker{remaining: make(map[game.Key]int)}
}

// press refreshes the hold window for k.
func (h *holdTracker) press(k game.Key) {
	window := moveHoldTicks
	if k == game.KeyFire || k == game.KeyPause {
		// Fire and pause are edge triggered; a short window lets auto-repeat
		// register as fresh presses.
		window = tapHoldTicks
	}
	if h.remaining[k] < window {
		h.remaining[k] = window
	}
}

// snapshot returns the keys held this tick and ages every hold by one tick.
func (h *holdTracker) snapshot() game.Input {
	var in game.Input
	for k, n := range h.remaining {
		if n <= 0 {
			continue
		}
		in = in.With(k)
		h.remaining[k] = n - 1
	}
	return in
}

// release drops every hold, used when the game is rebuilt.
func (h *holdTracker) release() {
	clear(h.remaining)
}

// gameKey maps a terminal key event to a game control.
func gameKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyEscape:
		return game.KeyPause, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return game.KeyLeft, true
		case 'd', 'l':
			return game.KeyRight, true
		case ' ':
			return game.KeyFire, true
		case 'p':
			return game.KeyPause, true
		}
	}
	return 0, false
}

// menuMove maps a key event to a cursor movement, or 0.
func menuMove(ev *tcell.EventKey) int {
	switch ev.Key() {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return -1
		case 's', 'j':
			return 1
		}
	}
	return 0
}

// menuSelect reports whether the key confirms the highlighted option.
func menuSelect(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

// isQuit reports whether the key closes the program outright.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
