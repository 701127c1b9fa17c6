package systems

import (
	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResolveMelee consumes armed pending hits. Each attack activation
// resolves exactly once, one tick after initiation, no matter how long
// the attacking state persists. A hit only resolves while its owner is
// still in the attacking state: getting struck, block-stunned, or
// otherwise forced out of the swing between initiation and activation
// disarms it.
func ResolveMelee(e *ecs.ECS) {
	tags.Fighter.Each(e.World, func(attacker *donburi.Entry) {
		combat := components.Combat.Get(attacker)
		if !combat.PendingHit {
			return
		}
		if components.State.Get(attacker).CurrentState != cfg.StateAttacking {
			combat.PendingHit = false
			combat.HitDelay = 0
			return
		}
		if combat.HitDelay > 0 {
			combat.HitDelay--
			return
		}
		combat.PendingHit = false
		strike(e, attacker)
	})
}

// strike spawns the attack's hitbox in front of the attacker, tests it
// against the defender, and tears it down again. The hitbox entity
// only ever exists within this resolution pass.
func strike(e *ecs.ECS, attacker *donburi.Entry) {
	fighter := components.Fighter.Get(attacker)
	attackerObj := components.Object.Get(attacker).Object

	var x float64
	if fighter.Facing > 0 {
		x = attackerObj.X + attackerObj.W
	} else {
		x = attackerObj.X - cfg.Combat.AttackReach
	}

	hitbox := archetypes.Hitbox.Spawn(e)
	obj := resolv.NewObject(x, attackerObj.Y, cfg.Combat.AttackReach, attackerObj.H, tags.ResolvHitbox)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Combat.AttackReach, attackerObj.H))
	obj.Data = hitbox

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		e.World.Remove(hitbox.Entity())
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	obj.Update()
	hb := &components.HitboxData{
		Owner:     attacker,
		Damage:    cfg.Combat.AttackDamage,
		Knockback: cfg.Combat.KnockbackForce,
	}
	components.Object.Set(hitbox, &components.ObjectData{Object: obj})
	components.Hitbox.Set(hitbox, hb)

	// Check is cell-granular; confirm true overlap before resolving.
	if check := obj.Check(0, 0, tags.ResolvFighter); check != nil {
		for _, o := range check.Objects {
			defender, ok := o.Data.(*donburi.Entry)
			if !ok || defender == hb.Owner || !overlaps(obj, o) {
				continue
			}
			resolveMeleeHit(e, hb, defender)
		}
	}

	space.Remove(obj)
	e.World.Remove(hitbox.Entity())
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// resolveMeleeHit applies one hitbox's outcome to the defender. Damage
// and knockback come from the hitbox, not from config, so every strike
// carries its own numbers.
func resolveMeleeHit(e *ecs.ECS, hb *components.HitboxData, defender *donburi.Entry) {
	match := currentMatch(e)
	if match == nil || match.Phase != cfg.PhasePlaying {
		// A winner was already declared this round.
		return
	}

	attackerFighter := components.Fighter.Get(hb.Owner)
	defenderFighter := components.Fighter.Get(defender)
	defenderState := components.State.Get(defender)
	defenderCombat := components.Combat.Get(defender)
	defenderObj := components.Object.Get(defender).Object

	cx := defenderObj.X + defenderObj.W/2
	cy := defenderObj.Y + defenderObj.H/2

	// A block only counts when the defender is turned toward the
	// attacker, i.e. their facing directions are opposed.
	blocked := defenderState.CurrentState == cfg.StateBlocking &&
		defenderFighter.Facing != attackerFighter.Facing

	if blocked {
		defenderCombat.BlockStun = cfg.Combat.BlockStun
		energy := components.Energy.Get(defender)
		energy.Current -= cfg.Combat.BlockEnergyCost
		if energy.Current < 0 {
			energy.Current = 0
		}
		factory.SpawnBurst(e, cx, cy, cfg.Gold, cfg.Combat.BlockBurstCount)
		return
	}

	health := components.Health.Get(defender)
	health.Current -= hb.Damage
	if health.Current < 0 {
		health.Current = 0
	}

	defenderCombat.HitStun = cfg.Combat.HitStun
	defenderState.Enter(cfg.StateHit)
	defenderFighter.Combo = 0
	attackerFighter.Combo++

	// Knockback away from the attacker, in its facing direction
	defenderPhysics := components.Physics.Get(defender)
	defenderPhysics.Velocity.X = attackerFighter.Facing * hb.Knockback

	factory.SpawnBurst(e, cx, cy, cfg.Red, cfg.Combat.HitBurstCount)

	if health.Current == 0 {
		EndRound(e, attackerFighter.PlayerIndex)
	}
}
