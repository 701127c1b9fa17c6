package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CaptureKeyboard writes the currently-held keyboard state into each
// human player's input snapshot. Called by the scene before the tick
// runs; the registered systems themselves never touch the keyboard, so
// the whole simulation runs headless under test.
func CaptureKeyboard(e *ecs.ECS) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Bot) {
			return
		}
		in := components.PlayerInput.Get(entry)
		if in.PlayerIndex < 0 || in.PlayerIndex >= len(cfg.Input.PlayerBindings) {
			return
		}
		bindings := cfg.Input.PlayerBindings[in.PlayerIndex]
		for action, keys := range bindings {
			held := false
			for _, k := range keys {
				if ebiten.IsKeyPressed(k) {
					held = true
					break
				}
			}
			in.Current[action] = held
		}
	})
}

// RollInput copies each snapshot's Current frame into Previous. Runs as
// the last system of the tick so JustPressed edges survive the whole
// pass.
func RollInput(e *ecs.ECS) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.PlayerInput.Get(entry)
		in.Previous = in.Current
	})
}
