package store

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxEntries is the size of the high-score table.
const MaxEntries = 10

// Storage keys inside the gdata app directory.
const (
	scoresObject   = "highscores"
	scoresProperty = "table"
)

// Entry is one finished run.
type Entry struct {
	Score   int       `yaml:"score"`
	Outcome string    `yaml:"outcome"` // "win" or "game_over"
	Ticks   int       `yaml:"ticks"`
	Seed    int64     `yaml:"seed,omitempty"`
	When    time.Time `yaml:"when"`
}

type table struct {
	Entries []Entry `yaml:"entries"`
}

// HighScores keeps the best runs. With a nil gdata manager it works purely in
// memory and Save is a no-op.
type HighScores struct {
	gdataManager *gdata.Manager
	entries      []Entry
}

// Open creates a gdata manager for appName and loads the table from it. If
// storage is unavailable the table falls back to memory only; the error is
// logged, not returned.
func Open(appName string) *HighScores {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[HighScores] Warning: storage unavailable: %v (scores will not persist)", err)
		m = nil
	}
	hs := NewHighScores(m)
	if err := hs.Load(); err != nil {
		log.Printf("[HighScores] Warning: failed to load scores: %v (starting empty)", err)
	}
	return hs
}

// NewHighScores wraps an existing manager, which may be nil. It does not load.
func NewHighScores(m *gdata.Manager) *HighScores {
	return &HighScores{gdataManager: m}
}

// Persistent reports whether scores are written to disk.
func (hs *HighScores) Persistent() bool { return hs.gdataManager != nil }

// Load replaces the in-memory table with the stored one. A missing table is
// not an error.
func (hs *HighScores) Load() error {
	if hs.gdataManager == nil {
		return nil
	}
	if !hs.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		hs.entries = nil
		return nil
	}
	data, err := hs.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("failed to load high scores: %w", err)
	}
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}
	hs.entries = normalize(t.Entries)
	return nil
}

// Save writes the table. In memory mode it does nothing.
func (hs *HighScores) Save() error {
	if hs.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(table{Entries: hs.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}
	if err := hs.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Submit inserts e if it makes the table and returns its 1-based rank, or 0 if
// it did not qualify. The table is saved when it changes.
func (hs *HighScores) Submit(e Entry) (int, error) {
	if e.When.IsZero() {
		e.When = time.Now()
	}
	rank := 0
	for i, cur := range hs.entries {
		if e.Score > cur.Score {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		if len(hs.entries) >= MaxEntries {
			return 0, nil
		}
		rank = len(hs.entries) + 1
	}

	hs.entries = append(hs.entries, Entry{})
	copy(hs.entries[rank:], hs.entries[rank-1:])
	hs.entries[rank-1] = e
	if len(hs.entries) > MaxEntries {
		hs.entries = hs.entries[:MaxEntries]
	}
	if err := hs.Save(); err != nil {
		return rank, err
	}
	log.Printf("[HighScores] New entry at #%d: %d (%s)", rank, e.Score, e.Outcome)
	return rank, nil
}

// Top returns a copy of the table, best first.
func (hs *HighScores) Top() []Entry {
	return append([]Entry(nil), hs.entries...)
}

// Best returns the highest score, or 0 for an empty table.
func (hs *HighScores) Best() int {
	if len(hs.entries) == 0 {
		return 0
	}
	return hs.entries[0].Score
}

// normalize sorts a loaded table and trims it, so hand-edited files cannot
// break the ordering.
func normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}
