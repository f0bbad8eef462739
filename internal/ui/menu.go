package ui

import "github.com/Garsondee/invaders/internal/game"

// Action is what the host does when a menu option is chosen.
type Action int

const (
	ActionNone Action = iota
	ActionContinue
	ActionRetry
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "Continue"
	case ActionRetry:
		return "Retry"
	case ActionQuit:
		return "Quit"
	default:
		return ""
	}
}

// Command maps an action onto a game command. Quit and None have no game
// command and report false.
func (a Action) Command() (game.Command, bool) {
	switch a {
	case ActionContinue:
		return game.CommandContinue, true
	case ActionRetry:
		return game.CommandRetry, true
	default:
		return 0, false
	}
}

// Menu is the overlay shown over a paused or finished game. It holds only a
// cursor; the options are derived from the game state on every call.
type Menu struct {
	state  game.State
	cursor int
}

// Sync adopts the game state, resetting the cursor when the overlay changes.
func (m *Menu) Sync(s game.State) {
	if s != m.state {
		m.state = s
		m.cursor = 0
	}
}

// Visible reports whether an overlay should be drawn.
func (m *Menu) Visible() bool { return len(m.Options()) > 0 }

// Title is the overlay heading.
func (m *Menu) Title() string {
	switch m.state {
	case game.StatePaused:
		return "Paused"
	case game.StateGameOver:
		return "Game Over!"
	case game.StateWin:
		return "You Win!"
	default:
		return ""
	}
}

// Options lists the choices for the current overlay.
func (m *Menu) Options() []Action {
	switch m.state {
	case game.StatePaused:
		return []Action{ActionContinue, ActionRetry, ActionQuit}
	case game.StateGameOver, game.StateWin:
		return []Action{ActionRetry, ActionQuit}
	default:
		return nil
	}
}

// Cursor returns the highlighted option index.
func (m *Menu) Cursor() int { return m.cursor }

// Move shifts the cursor by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Options())
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

// Select returns the highlighted action.
func (m *Menu) Select() Action {
	opts := m.Options()
	if len(opts) == 0 {
		return ActionNone
	}
	return opts[m.cursor]
}
