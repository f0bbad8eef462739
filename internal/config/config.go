// Package config holds the gameplay tuning for the simulation core.
//
// Every value has a built-in default matching the classic 1920x1080 layout; a
// YAML file can override any subset of them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the full set of gameplay parameters consumed by internal/game.
type Tuning struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Formation FormationConfig `yaml:"formation"`
	Fire      FireConfig      `yaml:"fire"`
	Player    PlayerConfig    `yaml:"player"`
	UFO       UFOConfig       `yaml:"ufo"`
	Effects   EffectsConfig   `yaml:"effects"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// CanvasConfig describes the logical playfield. All other distances are in
// the same units.
type CanvasConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	PixelSize float64 `yaml:"pixelSize"` // size of one sprite cell
	LeftEdge  float64 `yaml:"leftEdge"`  // left movement boundary
	RightEdge float64 `yaml:"rightEdge"` // right movement boundary
}

// RampStep lowers the invader move interval once the live count drops to
// Remaining or below.
type RampStep struct {
	Remaining int `yaml:"remaining"`
	Interval  int `yaml:"interval"`
}

// FormationConfig controls the invader grid and its lockstep movement.
type FormationConfig struct {
	Rows            int        `yaml:"rows"`
	Columns         int        `yaml:"columns"`
	OriginY         float64    `yaml:"originY"`
	RowSpacing      float64    `yaml:"rowSpacing"`
	HorizontalStep  float64    `yaml:"horizontalStep"`
	DescentStep     float64    `yaml:"descentStep"`
	InitialInterval int        `yaml:"initialInterval"` // ticks between movement steps
	MinInterval     int        `yaml:"minInterval"`
	Ramp            []RampStep `yaml:"ramp"`
}

// FireConfig controls the enemy volley scheduler.
type FireConfig struct {
	ShotDelay  int     `yaml:"shotDelay"` // movement ticks between volleys
	MaxVolley  int     `yaml:"maxVolley"`
	ShotSpeed  float64 `yaml:"shotSpeed"`
	ShotWidth  float64 `yaml:"shotWidth"`  // in cells
	ShotHeight float64 `yaml:"shotHeight"` // in cells
}

// PlayerConfig controls the player ship and its bullets.
type PlayerConfig struct {
	Speed         float64 `yaml:"speed"`
	BulletSpeed   float64 `yaml:"bulletSpeed"`
	CooldownTicks int     `yaml:"cooldownTicks"`
	GameOverDelay int     `yaml:"gameOverDelay"` // destroyed ticks tolerated before game over
}

// UFOConfig controls the bonus saucer.
type UFOConfig struct {
	BaseInterval int     `yaml:"baseInterval"`
	Jitter       int     `yaml:"jitter"`
	Speed        float64 `yaml:"speed"`
}

// EffectsConfig controls transient visual records.
type EffectsConfig struct {
	ExplosionTicks int `yaml:"explosionTicks"`
}

// ScoringConfig maps kills to points.
type ScoringConfig struct {
	RowPoints []int `yaml:"rowPoints"` // indexed by formation row, 0 = back row
	UFOPoints []int `yaml:"ufoPoints"` // one is drawn at random per UFO kill
}

// Default returns the built-in tuning.
func Default() Tuning {
	const (
		width  = 1920.0
		height = 1080.0
		cell   = 6.0
	)
	return Tuning{
		Canvas: CanvasConfig{
			Width:     width,
			Height:    height,
			PixelSize: cell,
			LeftEdge:  width / 80,
			RightEdge: width - width/80,
		},
		Formation: FormationConfig{
			Rows:            5,
			Columns:         11,
			OriginY:         height / 6,
			RowSpacing:      width / 20,
			HorizontalStep:  2 * cell,
			DescentStep:     8 * cell,
			InitialInterval: 20,
			MinInterval:     2,
			Ramp: []RampStep{
				{Remaining: 44, Interval: 16},
				{Remaining: 33, Interval: 12},
				{Remaining: 22, Interval: 9},
				{Remaining: 11, Interval: 6},
				{Remaining: 5, Interval: 4},
				{Remaining: 1, Interval: 2},
			},
		},
		Fire: FireConfig{
			ShotDelay:  3,
			MaxVolley:  4,
			ShotSpeed:  6,
			ShotWidth:  1,
			ShotHeight: 4,
		},
		Player: PlayerConfig{
			Speed:         10,
			BulletSpeed:   10,
			CooldownTicks: 20,
			GameOverDelay: 1,
		},
		UFO: UFOConfig{
			BaseInterval: 1500,
			Jitter:       300,
			Speed:        10,
		},
		Effects: EffectsConfig{
			ExplosionTicks: 10,
		},
		Scoring: ScoringConfig{
			RowPoints: []int{30, 20, 20, 10, 10},
			UFOPoints: []int{50, 100, 150, 300},
		},
	}
}

// Load reads a YAML tuning file and overlays it onto Default. Keys missing
// from the file keep their default values. An empty path returns Default.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning file %s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes the tuning as YAML, e.g. to dump the defaults as a template.
func (t Tuning) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tuning: %w", err)
	}
	return data, nil
}

// Validate reports the first field that would break the simulation.
func (t Tuning) Validate() error {
	c := t.Canvas
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %.0fx%.0f", c.Width, c.Height)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("canvas.pixelSize must be > 0, got %.2f", c.PixelSize)
	}
	if c.LeftEdge < 0 || c.RightEdge > c.Width || c.LeftEdge >= c.RightEdge {
		return fmt.Errorf("canvas edges out of range: left=%.1f right=%.1f width=%.1f", c.LeftEdge, c.RightEdge, c.Width)
	}

	f := t.Formation
	if f.Rows <= 0 || f.Columns <= 0 {
		return fmt.Errorf("formation must have rows and columns, got %dx%d", f.Rows, f.Columns)
	}
	if f.InitialInterval <= 0 || f.MinInterval <= 0 {
		return fmt.Errorf("formation intervals must be > 0, got initial=%d min=%d", f.InitialInterval, f.MinInterval)
	}
	if f.MinInterval > f.InitialInterval {
		return fmt.Errorf("formation.minInterval %d exceeds initialInterval %d", f.MinInterval, f.InitialInterval)
	}
	for i, step := range f.Ramp {
		if step.Interval <= 0 {
			return fmt.Errorf("formation.ramp[%d].interval must be > 0, got %d", i, step.Interval)
		}
	}
	if len(t.Scoring.RowPoints) < f.Rows {
		return fmt.Errorf("scoring.rowPoints needs %d entries, got %d", f.Rows, len(t.Scoring.RowPoints))
	}

	if t.Fire.ShotDelay <= 0 {
		return fmt.Errorf("fire.shotDelay must be > 0, got %d", t.Fire.ShotDelay)
	}
	if t.Fire.MaxVolley < 2 {
		return fmt.Errorf("fire.maxVolley must be >= 2, got %d", t.Fire.MaxVolley)
	}
	if t.Player.CooldownTicks < 0 || t.Player.GameOverDelay < 0 {
		return fmt.Errorf("player timers must be >= 0, got cooldown=%d gameOverDelay=%d",
			t.Player.CooldownTicks, t.Player.GameOverDelay)
	}
	if t.UFO.BaseInterval <= 0 || t.UFO.Jitter < 0 || t.UFO.Jitter >= t.UFO.BaseInterval {
		return fmt.Errorf("ufo spawn window invalid: base=%d jitter=%d", t.UFO.BaseInterval, t.UFO.Jitter)
	}
	if len(t.Scoring.UFOPoints) == 0 {
		return fmt.Errorf("scoring.ufoPoints must not be empty")
	}
	return nil
}
