package components

import "github.com/yohamta/donburi"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	Velocity Vector

	Gravity        float64
	MoveSpeed      float64
	JumpImpulse    float64
	FrictionFactor float64

	OnGround bool

	// Set by the state machine on ticks where a horizontal move key is
	// held; suppresses friction decay for that tick.
	MoveHeld bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
