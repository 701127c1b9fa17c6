package systems

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles advances every live projectile along its fixed
// horizontal velocity and resolves hits against the fighter that does
// not own it. Projectiles are removed the tick they hit, are blocked,
// or exit the arena bounds by the fixed margin.
func UpdateProjectiles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		// Straight-line motion, no gravity
		obj.X += physics.Velocity.X
		proj.AnimFrame++
		obj.Update()

		if obj.X < -cfg.Projectile.Margin || obj.X > cfg.Arena.Width+cfg.Projectile.Margin {
			toRemove = append(toRemove, entry)
			return
		}

		// Check is cell-granular; confirm true overlap before resolving.
		if check := obj.Check(0, 0, tags.ResolvFighter); check != nil {
			for _, o := range check.Objects {
				defender, ok := o.Data.(*donburi.Entry)
				if !ok || defender == proj.Owner || !overlaps(obj.Object, o) {
					continue
				}
				if applyProjectileHit(e, proj, obj, defender) {
					toRemove = append(toRemove, entry)
					return
				}
			}
		}
	})

	for _, entry := range toRemove {
		destroyProjectile(e, entry)
	}
}

// applyProjectileHit resolves one projectile-fighter overlap and
// reports whether the projectile was consumed. A blocking defender
// negates the projectile entirely: no damage, no stun, no energy cost.
func applyProjectileHit(e *ecs.ECS, proj *components.ProjectileData, obj *components.ObjectData, defender *donburi.Entry) bool {
	match := currentMatch(e)
	if match == nil || match.Phase != cfg.PhasePlaying {
		// Winner already declared; no further combat resolution.
		return false
	}

	defenderState := components.State.Get(defender)
	if defenderState.CurrentState == cfg.StateBlocking {
		return true
	}

	defenderFighter := components.Fighter.Get(defender)
	defenderCombat := components.Combat.Get(defender)

	health := components.Health.Get(defender)
	health.Current -= proj.Damage
	if health.Current < 0 {
		health.Current = 0
	}

	defenderCombat.HitStun = cfg.Projectile.HitStun
	defenderState.Enter(cfg.StateHit)
	defenderFighter.Combo = 0

	defenderObj := components.Object.Get(defender).Object
	factory.SpawnBurst(e,
		defenderObj.X+defenderObj.W/2,
		defenderObj.Y+defenderObj.H/2,
		cfg.ProjectileColors[proj.Type],
		cfg.Projectile.BurstCount,
	)

	if health.Current == 0 {
		EndRound(e, proj.OwnerIndex)
	}
	return true
}

func destroyProjectile(e *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
