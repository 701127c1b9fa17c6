package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionBlock
	ActionSpecial
	ActionPause
	ActionStart
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds keyboard bindings per player slot. Both players
// share one keyboard, so the key sets must not overlap.
type InputConfig struct {
	PlayerBindings [2]map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		PlayerBindings: [2]map[ActionID][]ebiten.Key{
			{
				ActionMoveLeft:  {ebiten.KeyA},
				ActionMoveRight: {ebiten.KeyD},
				ActionJump:      {ebiten.KeyW},
				ActionAttack:    {ebiten.KeyF},
				ActionBlock:     {ebiten.KeyG},
				ActionSpecial:   {ebiten.KeyH},
				ActionPause:     {ebiten.KeyEscape, ebiten.KeyP},
				ActionStart:     {ebiten.KeyEnter},
			},
			{
				ActionMoveLeft:  {ebiten.KeyLeft},
				ActionMoveRight: {ebiten.KeyRight},
				ActionJump:      {ebiten.KeyUp},
				ActionAttack:    {ebiten.KeyK},
				ActionBlock:     {ebiten.KeyL},
				ActionSpecial:   {ebiten.KeySemicolon},
				ActionPause:     {ebiten.KeyEscape},
				ActionStart:     {ebiten.KeyEnter},
			},
		},
	}
}
