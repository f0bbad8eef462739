package tui

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/invaders/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short synthesized sound tied to a game event.
type Cue int

const (
	CueNone Cue = iota
	CueShot
	CueInvaderKilled
	CueDescent
	CueUFO
	CueUFODestroyed
	CuePlayerKilled
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueInvaderKilled:
		return "invader_killed"
	case CueDescent:
		return "descent"
	case CueUFO:
		return "ufo"
	case CueUFODestroyed:
		return "ufo_destroyed"
	case CuePlayerKilled:
		return "player_killed"
	default:
		return "none"
	}
}

type tone struct {
	freq float64
	dur  time.Duration
}

var cueTones = map[Cue]tone{
	CueShot:          {freq: 880, dur: 40 * time.Millisecond},
	CueInvaderKilled: {freq: 220, dur: 80 * time.Millisecond},
	CueDescent:       {freq: 110, dur: 30 * time.Millisecond},
	CueUFO:           {freq: 660, dur: 200 * time.Millisecond},
	CueUFODestroyed:  {freq: 1320, dur: 150 * time.Millisecond},
	CuePlayerKilled:  {freq: 90, dur: 400 * time.Millisecond},
}

// cueFor maps a log entry to the sound it should make.
func cueFor(e game.SimLogEntry) Cue {
	switch e.Category + "/" + e.Key {
	case "player/shot":
		return CueShot
	case "collision/invader_killed":
		return CueInvaderKilled
	case "formation/descent":
		return CueDescent
	case "ufo/spawn":
		return CueUFO
	case "ufo/destroyed":
		return CueUFODestroyed
	case "collision/player_killed":
		return CuePlayerKilled
	}
	return CueNone
}

// cueStreamer builds the finite streamer for a cue at the given volume
// (0 = unity gain, negative is quieter).
func cueStreamer(c Cue, volume float64) (beep.Streamer, error) {
	t, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", c)
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", t.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.dur), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Sound plays cues through the speaker. It is safe to use without a working
// audio device: until Init succeeds every Play is a no-op.
type Sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSound creates a silent sound manager.
func NewSound(volume float64) *Sound {
	return &Sound{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker and starts the mixer.
func (s *Sound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker.
func (s *Sound) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Play queues a cue on the mixer.
func (s *Sound) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || c == CueNone {
		return
	}
	st, err := cueStreamer(c, s.volume)
	if err != nil {
		log.Printf("[TUI] Failed to build %s cue: %v", c, err)
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// PlayEntries plays the cue of every entry, once per distinct cue.
func (s *Sound) PlayEntries(entries []game.SimLogEntry) {
	played := map[Cue]bool{}
	for _, e := range entries {
		c := cueFor(e)
		if c == CueNone || played[c] {
			continue
		}
		played[c] = true
		s.Play(c)
	}
}

// Close silences the mixer.
func (s *Sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
