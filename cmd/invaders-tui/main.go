package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/invaders/internal/config"
	"github.com/Garsondee/invaders/internal/game"
	"github.com/Garsondee/invaders/internal/store"
	"github.com/Garsondee/invaders/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults built in)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	// The terminal is owned by the screen; diagnostics go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sound := tui.NewSound(-1)
	if !*mute {
		if err := sound.Init(); err != nil {
			log.Printf("[TUI] Warning: audio disabled: %v", err)
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g := game.New(game.WithTuning(cfg), game.WithSeed(*seed), game.WithSimLog(game.NewSimLog(false)))
	app := tui.NewApp(screen, g, store.Open("invaders"), sound, *seed)
	if err := app.Run(); err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
