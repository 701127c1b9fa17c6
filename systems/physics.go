package systems

import (
	"math"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates fighter motion: gravity, position, ground
// clamp, horizontal arena bounds, and friction decay on ticks with no
// horizontal movement input. Purely deterministic; no errors.
func UpdatePhysics(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		state := components.State.Get(entry)
		obj := components.Object.Get(entry)

		if !physics.OnGround {
			physics.Velocity.Y += physics.Gravity
		}

		obj.X += physics.Velocity.X
		obj.Y += physics.Velocity.Y

		// Ground clamp: feet never sink below the ground line
		if obj.Y+obj.H >= cfg.Arena.GroundY {
			obj.Y = cfg.Arena.GroundY - obj.H
			physics.Velocity.Y = 0
			physics.OnGround = true
			if state.CurrentState == cfg.StateJumping {
				state.Enter(cfg.StateIdle)
			}
		}

		// Horizontal bounds, grounded or not
		if obj.X < 0 {
			obj.X = 0
		}
		if limit := cfg.Arena.Width - obj.W; obj.X > limit {
			obj.X = limit
		}

		// Friction decay while no move key was held this tick
		if !physics.MoveHeld {
			physics.Velocity.X *= physics.FrictionFactor
			if math.Abs(physics.Velocity.X) < cfg.Fighter.StopThreshold {
				physics.Velocity.X = 0
				if state.CurrentState == cfg.StateWalking {
					state.Enter(cfg.StateIdle)
				}
			}
		}

		obj.Update()
	})
}
