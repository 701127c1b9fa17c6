package components

import "github.com/yohamta/donburi"

// BotData marks a fighter as AI-controlled and holds its decision
// state. The bot only ever writes into the fighter's input snapshot;
// the simulation cannot tell bot input from keyboard input.
type BotData struct {
	DecisionTimer int
	MoveDir       float64 // -1, 0, +1
	WantAttack    bool
	WantBlock     bool
	WantJump      bool
	WantSpecial   bool
}

var Bot = donburi.NewComponentType[BotData]()
