package screen

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/invaders/internal/game"
	"github.com/Garsondee/invaders/internal/store"
	"github.com/Garsondee/invaders/internal/ui"
)

// debugReportTicks is how much event history the clipboard report carries.
const debugReportTicks = 600

// App is the windowed host. It samples the keyboard once per frame, feeds the
// snapshot to the game and draws whatever the game exposes.
type App struct {
	game   *game.Game
	menu   ui.Menu
	scores *store.HighScores
	feed   *EventFeed
	face   text.Face
	seed   int64

	logCursor int
	submitted bool
	showFeed  bool
	status    string // transient footer message
	holdFire  bool   // fire stays masked until released after a menu selection
	prevKeys  map[ebiten.Key]bool
	quit      bool
}

// NewApp wires a game to the window. scores may be nil.
func NewApp(g *game.Game, scores *store.HighScores, seed int64) *App {
	if g.Log() == nil {
		log.Printf("[Screen] Warning: game has no event log; feed and sound cues disabled")
	}
	if scores == nil {
		scores = store.NewHighScores(nil)
	}
	return &App{
		game:     g,
		scores:   scores,
		feed:     NewEventFeed(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		seed:     seed,
		showFeed: true,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}
	a.handleHostKeys()

	a.menu.Sync(a.game.State())
	if a.menu.Visible() && a.handleMenu(sampleMenuKeys(inpututil.IsKeyJustPressed)) {
		// The selection key must not also reach the rebuilt game this frame.
		return nil
	}
	// The game sees the keyboard even while paused so the pause key can
	// resume it.
	a.stepGame(sampleInput(ebiten.IsKeyPressed))
	return nil
}

// stepGame advances the game one tick. Space both selects menu options and
// fires, so after a selection fire is ignored until the key comes up.
func (a *App) stepGame(in game.Input) {
	if a.holdFire {
		if in.Held(game.KeyFire) {
			in = in.Without(game.KeyFire)
		} else {
			a.holdFire = false
		}
	}
	a.game.Update(in, 1)

	a.drainLog()
	a.submitScore()
}

// handleHostKeys processes keys that belong to the window rather than the
// game (edge-triggered).
func (a *App) handleHostKeys() {
	currentKeys := map[ebiten.Key]bool{}

	currentKeys[ebiten.KeyF] = ebiten.IsKeyPressed(ebiten.KeyF)
	if currentKeys[ebiten.KeyF] && !a.prevKeys[ebiten.KeyF] {
		a.showFeed = !a.showFeed
	}

	currentKeys[ebiten.KeyC] = ebiten.IsKeyPressed(ebiten.KeyC)
	if currentKeys[ebiten.KeyC] && !a.prevKeys[ebiten.KeyC] {
		a.copyDebugReport()
	}

	a.prevKeys = currentKeys
}

func (a *App) copyDebugReport() {
	report := a.game.DebugReport(debugReportTicks)
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("[Screen] Failed to copy debug report: %v", err)
		a.status = "clipboard unavailable"
		return
	}
	a.status = "debug report copied"
}

// handleMenu moves the cursor or applies the selection, reporting whether an
// action was taken.
func (a *App) handleMenu(k menuKeys) bool {
	switch {
	case k.up:
		a.menu.Move(-1)
	case k.down:
		a.menu.Move(1)
	case k.selectKey:
		a.apply(a.menu.Select())
		a.holdFire = true
		return true
	}
	return false
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
	if cmd == game.CommandRetry {
		a.logCursor = 0
		a.submitted = false
		a.feed.Reset()
		a.status = ""
	}
}

// drainLog moves new events into the feed.
func (a *App) drainLog() {
	l := a.game.Log()
	if l == nil {
		return
	}
	for _, e := range l.Since(a.logCursor) {
		a.feed.Add(e)
	}
	a.logCursor = l.Len()
}

// submitScore records a finished run once.
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
		log.Printf("[Screen] Failed to save high score: %v", err)
	}
	if rank > 0 {
		a.status = fmt.Sprintf("new high score #%d", rank)
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	c := a.game.Tuning().Canvas
	drawWorld(screen, a.game)
	drawHUD(screen, a.face, a.game, a.scores.Best())

	if a.menu.Visible() {
		opts := a.menu.Options()
		names := make([]string, len(opts))
		for i, o := range opts {
			names[i] = o.String()
		}
		footer := a.status
		if footer == "" {
			footer = "arrows: move  enter: select  C: copy report"
		}
		drawMenu(screen, a.face, menuView{
			title:   a.menu.Title(),
			options: names,
			cursor:  a.menu.Cursor(),
			footer:  footer,
		}, canvasSize{w: c.Width, h: c.Height})
	}

	if a.showFeed {
		a.feed.Draw(screen, int(c.Width), int(c.Height))
	}
}

// Layout implements ebiten.Game. The feed panel sits to the right of the
// canvas.
func (a *App) Layout(_, _ int) (int, int) {
	c := a.game.Tuning().Canvas
	return int(c.Width) + feedPanelWidth, int(c.Height)
}
