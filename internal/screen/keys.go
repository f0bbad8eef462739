package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/invaders/internal/game"
)

// keyBindings maps each game control to the physical keys that drive it.
var keyBindings = map[game.Key][]ebiten.Key{
	game.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	game.KeyFire:  {ebiten.KeySpace},
	game.KeyPause: {ebiten.KeyEscape, ebiten.KeyP},
}

// sampleInput builds the per-tick snapshot from a key query.
func sampleInput(pressed func(ebiten.Key) bool) game.Input {
	var in game.Input
	for k, keys := range keyBindings {
		for _, key := range keys {
			if pressed(key) {
				in = in.With(k)
				break
			}
		}
	}
	return in
}

// menuKeys are the keys that drive an open overlay.
type menuKeys struct {
	up, down, selectKey bool
}

// sampleMenuKeys reads edge-triggered menu navigation.
func sampleMenuKeys(justPressed func(ebiten.Key) bool) menuKeys {
	return menuKeys{
		up:        justPressed(ebiten.KeyArrowUp) || justPressed(ebiten.KeyW),
		down:      justPressed(ebiten.KeyArrowDown) || justPressed(ebiten.KeyS),
		selectKey: justPressed(ebiten.KeyEnter) || justPressed(ebiten.KeySpace),
	}
}
