package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/invaders/internal/config"
	"github.com/Garsondee/invaders/internal/game"
	"github.com/Garsondee/invaders/internal/screen"
	"github.com/Garsondee/invaders/internal/store"
)

func main() {
	configPath := flag.String("config", "", "YAML tuning file (defaults built in)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := game.New(game.WithTuning(cfg), game.WithSeed(*seed), game.WithSimLog(game.NewSimLog(false)))
	app := screen.NewApp(g, store.Open("invaders"), *seed)

	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowSize(int(cfg.Canvas.Width+360)/2, int(cfg.Canvas.Height)/2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
