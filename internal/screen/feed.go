package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/invaders/internal/game"
)

const (
	feedPanelWidth = 360
	feedMaxEntries = 80
	feedLineHeight = 14
)

// feedCategories are the SimLog categories worth showing to a player.
var feedCategories = map[string]bool{
	"state":     true,
	"collision": true,
	"ufo":       true,
	"fire":      true,
	"formation": true,
	"score":     true,
}

// EventFeed is a ring buffer of recent game events rendered beside the
// playfield.
type EventFeed struct {
	entries []game.SimLogEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{entries: make([]game.SimLogEntry, feedMaxEntries)}
}

// Add appends an entry if its category is shown. Per-shot fire entries are
// skipped; volleys are enough.
func (f *EventFeed) Add(e game.SimLogEntry) {
	if !feedCategories[e.Category] || (e.Category == "fire" && e.Key == "shot") {
		return
	}
	f.entries[f.head] = e
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Reset empties the feed.
func (f *EventFeed) Reset() {
	f.head, f.count = 0, 0
}

// Recent returns entries oldest first.
func (f *EventFeed) Recent() []game.SimLogEntry {
	out := make([]game.SimLogEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		out[i] = f.entries[idx]
	}
	return out
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case "collision":
		return color.RGBA{R: 220, G: 90, B: 70, A: 255}
	case "ufo":
		return color.RGBA{R: 220, G: 80, B: 220, A: 255}
	case "fire":
		return color.RGBA{R: 230, G: 200, B: 70, A: 255}
	case "score":
		return color.RGBA{R: 90, G: 210, B: 90, A: 255}
	case "state":
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	default:
		return color.RGBA{R: 90, G: 130, B: 220, A: 255}
	}
}

// Draw renders the feed panel at panelX.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 8, G: 8, B: 14, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 50, G: 50, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 18, color.RGBA{R: 20, G: 20, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+feedPanelWidth), 18, 1.0, color.RGBA{R: 50, G: 50, B: 90, A: 200}, false)

	entries := f.Recent()
	maxVisible := (panelH - 26) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const recent = 3
	y := 22
	for i, e := range entries {
		if i >= len(entries)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 28, G: 28, B: 48, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		line := fmt.Sprintf("%5d %-4s %s %s", e.Tick, e.Subject, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += feedLineHeight
	}
}
