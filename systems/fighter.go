package systems

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters runs the per-fighter state machine: animation and
// timer upkeep, energy regeneration, then the input rules in fixed
// priority order. Stunned fighters skip the input rules entirely.
func UpdateFighters(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		updateFighter(e, entry)
	})
}

func updateFighter(e *ecs.ECS, entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	physics := components.Physics.Get(entry)
	state := components.State.Get(entry)
	combat := components.Combat.Get(entry)
	energy := components.Energy.Get(entry)
	input := components.PlayerInput.Get(entry)

	// Animation counters
	fighter.AnimTimer++
	if fighter.AnimTimer >= cfg.Fighter.AnimTickRate {
		fighter.AnimTimer = 0
		fighter.AnimFrame++
	}
	state.StateTimer++

	tickTimers(combat)

	// Energy regenerates toward max regardless of state
	if energy.Current < energy.Max {
		energy.Current += cfg.Fighter.EnergyRegen
		if energy.Current > energy.Max {
			energy.Current = energy.Max
		}
	}

	physics.MoveHeld = false

	// Stun gates all input this tick; only timer decay above and the
	// physics pass apply.
	if combat.Stunned() {
		return
	}

	// Hit state clears only once both stun timers have drained.
	if state.CurrentState == cfg.StateHit {
		state.Enter(cfg.StateIdle)
	}

	// Recovery out of committed states
	if state.CurrentState == cfg.StateAttacking && state.StateTimer >= cfg.Combat.AttackRecovery {
		state.Enter(cfg.StateIdle)
	}
	if state.CurrentState == cfg.StateSpecial && state.StateTimer >= cfg.Projectile.Recovery {
		state.Enter(cfg.StateIdle)
	}
	if state.CurrentState == cfg.StateBlocking && !input.Held(cfg.ActionBlock) {
		state.Enter(cfg.StateIdle)
	}

	// 1. Horizontal movement. When both keys are held, left wins: the
	// first-checked branch runs and the other is ignored this tick.
	if input.Held(cfg.ActionMoveLeft) {
		physics.Velocity.X = -physics.MoveSpeed
		fighter.Facing = cfg.DirectionLeft
		state.Enter(cfg.StateWalking)
		physics.MoveHeld = true
	} else if input.Held(cfg.ActionMoveRight) {
		physics.Velocity.X = physics.MoveSpeed
		fighter.Facing = cfg.DirectionRight
		state.Enter(cfg.StateWalking)
		physics.MoveHeld = true
	}

	// 2. Jump, grounded only
	if input.Held(cfg.ActionJump) && physics.OnGround {
		physics.Velocity.Y = -physics.JumpImpulse
		physics.OnGround = false
		state.Enter(cfg.StateJumping)
	}

	// 3. Attack, gated by its cooldown. The hit itself lands one tick
	// later via the armed PendingHit flag.
	if input.Held(cfg.ActionAttack) && combat.AttackCooldown == 0 {
		state.Enter(cfg.StateAttacking)
		combat.AttackCooldown = cfg.Combat.AttackCooldown
		combat.PendingHit = true
		combat.HitDelay = 1
	}

	// 4. Special, gated by energy and its cooldown
	if input.Held(cfg.ActionSpecial) &&
		energy.Current >= cfg.Projectile.EnergyCost &&
		combat.SpecialCooldown == 0 {
		state.Enter(cfg.StateSpecial)
		energy.Current -= cfg.Projectile.EnergyCost
		combat.SpecialCooldown = cfg.Projectile.Cooldown
		factory.SpawnProjectile(e, entry)
	}

	// 5. Block, checked last so it wins same-tick conflicts by write
	// order
	if input.Held(cfg.ActionBlock) {
		state.Enter(cfg.StateBlocking)
	}
}

// tickTimers decrements every positive countdown by one. Timers never
// go negative.
func tickTimers(combat *components.CombatData) {
	if combat.AttackCooldown > 0 {
		combat.AttackCooldown--
	}
	if combat.SpecialCooldown > 0 {
		combat.SpecialCooldown--
	}
	if combat.HitStun > 0 {
		combat.HitStun--
	}
	if combat.BlockStun > 0 {
		combat.BlockStun--
	}
}
