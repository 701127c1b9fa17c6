package components

import (
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// PlayerInputData is the per-tick input snapshot for one player. The
// capture layer (keyboard or bot) writes Current before the tick; the
// roll system copies Current into Previous after the tick so edge
// detection works across frames.
type PlayerInputData struct {
	PlayerIndex int
	Current     [cfg.ActionCount]bool
	Previous    [cfg.ActionCount]bool
}

// Held reports whether the action is held this tick.
func (in *PlayerInputData) Held(id cfg.ActionID) bool {
	return in.Current[id]
}

// Action returns the full temporal state of an action.
func (in *PlayerInputData) Action(id cfg.ActionID) ActionState {
	curr := in.Current[id]
	prev := in.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
