package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/invaders/internal/game"
	"github.com/Garsondee/invaders/internal/store"
	"github.com/Garsondee/invaders/internal/ui"
)

// frameInterval is one simulation tick at 60 Hz.
const frameInterval = 16 * time.Millisecond

const debugReportTicks = 600

// App is the terminal host. Key events are collected between frames and the
// game advances one tick per frame.
type App struct {
	screen tcell.Screen
	game   *game.Game
	menu   ui.Menu
	scores *store.HighScores
	sound  *Sound
	keys   *holdTracker
	seed   int64

	logCursor int
	submitted bool
	status    string
	quit      bool
}

// NewApp wires a game to an initialised screen. scores and sound may be nil.
func NewApp(s tcell.Screen, g *game.Game, scores *store.HighScores, sound *Sound, seed int64) *App {
	if scores == nil {
		scores = store.NewHighScores(nil)
	}
	if sound == nil {
		sound = NewSound(0)
	}
	return &App{
		screen: s,
		game:   g,
		scores: scores,
		sound:  sound,
		keys:   newHoldTracker(),
		seed:   seed,
	}
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool { return a.quit }

// Run drives the frame loop until the user quits.
func (a *App) Run() error {
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(a.screen, eventChan, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw()
	for !a.quit {
		select {
		case ev := <-eventChan:
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
	return nil
}

// pumpEvents forwards screen events until the screen is finalised or done is
// closed.
func pumpEvents(s tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := s.PollEvent()
		if ev == nil {
			return // screen finalised
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent routes one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if isQuit(ev) {
		a.quit = true
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'c' {
		a.copyDebugReport()
		return
	}

	a.menu.Sync(a.game.State())
	if a.menu.Visible() {
		if d := menuMove(ev); d != 0 {
			a.menu.Move(d)
			return
		}
		if menuSelect(ev) {
			a.apply(a.menu.Select())
			return
		}
	}
	if k, ok := gameKey(ev); ok {
		a.keys.press(k)
	}
}

func (a *App) copyDebugReport() {
	if err := clipboard.WriteAll(a.game.DebugReport(debugReportTicks)); err != nil {
		log.Printf("[TUI] Failed to copy debug report: %v", err)
		a.status = "clipboard unavailable"
		return
	}
	a.status = "debug report copied"
}

func (a *App) apply(act ui.Action) {
	if act == ui.ActionQuit {
		a.quit = true
		return
	}
	cmd, ok := act.Command()
	if !ok {
		return
	}
	a.game.Apply(cmd)
	a.keys.release()
	if cmd == game.CommandRetry {
		a.logCursor = 0
		a.submitted = false
		a.status = ""
	}
}

// Step advances the game one tick with the keys currently held.
func (a *App) Step() {
	a.game.Update(a.keys.snapshot(), 1)
	a.drainLog()
	a.submitScore()
}

// drainLog turns new events into sound cues.
func (a *App) drainLog() {
	l := a.game.Log()
	if l == nil {
		return
	}
	a.sound.PlayEntries(l.Since(a.logCursor))
	a.logCursor = l.Len()
}

func (a *App) submitScore() {
	s := a.game.State()
	if a.submitted || !s.Terminal() {
		return
	}
	a.submitted = true
	rank, err := a.scores.Submit(store.Entry{
		Score:   a.game.Score(),
		Outcome: s.String(),
		Ticks:   a.game.Tick(),
		Seed:    a.seed,
	})
	if err != nil {
		log.Printf("[TUI] Failed to save high score: %v", err)
	}
	if rank > 0 {
		a.status = fmt.Sprintf("new high score #%d", rank)
	}
}

// Draw renders the current frame.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	v := fitViewport(a.game.Tuning().Canvas, w, h)
	drawWorld(a.screen, v, a.game)
	drawHUD(a.screen, a.game, a.scores.Best(), a.status)

	a.menu.Sync(a.game.State())
	if a.menu.Visible() {
		opts := a.menu.Options()
		names := make([]string, len(opts))
		for i, o := range opts {
			names[i] = o.String()
		}
		drawMenu(a.screen, a.menu.Title(), names, a.menu.Cursor())
	}
	a.screen.Show()
}
