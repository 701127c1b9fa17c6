package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
)

func firstProjectile(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		found = entry
	})
	if found == nil {
		t.Fatal("no projectile in world")
	}
	return found
}

func TestProjectileSpawnsAtLeadingEdge(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	tap(t, e, 0, cfg.ActionSpecial)

	entry := firstProjectile(t, e)
	proj := components.Projectile.Get(entry)
	obj := components.Object.Get(entry)
	physics := components.Physics.Get(entry)

	owner := fighterEntry(t, e, 0)
	ownerObj := components.Object.Get(owner)

	// One tick of travel has already happened on the spawn tick.
	wantX := ownerObj.X + ownerObj.W + cfg.Projectile.Speed
	if obj.X != wantX {
		t.Fatalf("projectile x = %v, want %v", obj.X, wantX)
	}
	if physics.Velocity.X != cfg.Projectile.Speed {
		t.Fatalf("projectile velocity = %v, want %v", physics.Velocity.X, cfg.Projectile.Speed)
	}
	if proj.OwnerIndex != 0 {
		t.Fatalf("owner index = %d, want 0", proj.OwnerIndex)
	}
	if proj.Type != cfg.Fighter.Defs[0].SpecialType {
		t.Fatalf("projectile type = %v, want owner's signature %v", proj.Type, cfg.Fighter.Defs[0].SpecialType)
	}
}

func TestProjectileHitDamagesAndStuns(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	placeFighters(t, e, 300, 500)

	defender := fighterEntry(t, e, 1)
	health := components.Health.Get(defender)

	tap(t, e, 0, cfg.ActionSpecial)
	// 150px gap at 8px per tick.
	tick(e, 25)

	want := cfg.Fighter.MaxHealth - cfg.Projectile.Damage
	if health.Current != want {
		t.Fatalf("health = %d, want %d", health.Current, want)
	}
	if got := components.State.Get(defender).CurrentState; got != cfg.StateHit {
		t.Fatalf("defender state = %v, want hit", got)
	}
	if n := countEntities(e, tags.Projectile.Each); n != 0 {
		t.Fatalf("projectiles = %d after hit, want 0", n)
	}
	if n := countEntities(e, tags.Particle.Each); n == 0 {
		t.Fatal("projectile hit spawned no burst")
	}
}

func TestProjectileHitStunOutlastsMelee(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	placeFighters(t, e, 300, 420)

	defender := fighterEntry(t, e, 1)
	combat := components.Combat.Get(defender)

	tap(t, e, 0, cfg.ActionSpecial)
	for i := 0; i < 30 && combat.HitStun == 0; i++ {
		tick(e, 1)
	}
	if combat.HitStun != cfg.Projectile.HitStun {
		t.Fatalf("hit stun = %d, want %d", combat.HitStun, cfg.Projectile.HitStun)
	}
}

func TestBlockedProjectileIsConsumedWithoutEffect(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	placeFighters(t, e, 300, 500)

	defender := fighterEntry(t, e, 1)
	health := components.Health.Get(defender)
	energy := components.Energy.Get(defender)
	combat := components.Combat.Get(defender)

	hold(t, e, 1, cfg.ActionBlock)
	tap(t, e, 0, cfg.ActionSpecial)
	tick(e, 25)

	if health.Current != cfg.Fighter.MaxHealth {
		t.Fatalf("blocked projectile dealt damage: health = %d", health.Current)
	}
	if combat.HitStun != 0 || combat.BlockStun != 0 {
		t.Fatalf("blocked projectile applied stun: hit=%d block=%d", combat.HitStun, combat.BlockStun)
	}
	if energy.Current != cfg.Fighter.MaxEnergy {
		t.Fatalf("blocked projectile cost energy: %v", energy.Current)
	}
	if n := countEntities(e, tags.Projectile.Each); n != 0 {
		t.Fatalf("projectiles = %d, want 0 after block consumed it", n)
	}
}

func TestProjectileIgnoresItsOwner(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	placeFighters(t, e, 300, 500)

	owner := fighterEntry(t, e, 0)
	health := components.Health.Get(owner)

	tap(t, e, 0, cfg.ActionSpecial)
	// The projectile spawns overlapping-adjacent to its owner; it must
	// pass without resolving against them.
	tick(e, 3)

	if health.Current != cfg.Fighter.MaxHealth {
		t.Fatalf("projectile hurt its owner: health = %d", health.Current)
	}
}

func TestProjectileRemovedPastArenaMargin(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	// Fire away from the opponent so nothing intercepts it.
	owner := fighterEntry(t, e, 1)
	components.Fighter.Get(owner).Facing = cfg.DirectionRight
	tap(t, e, 1, cfg.ActionSpecial)

	if n := countEntities(e, tags.Projectile.Each); n != 1 {
		t.Fatalf("projectiles = %d, want 1 in flight", n)
	}

	// From x=760 it crosses 960+50 within 40 ticks at speed 8.
	tick(e, 40)
	if n := countEntities(e, tags.Projectile.Each); n != 0 {
		t.Fatalf("projectiles = %d, want 0 past the margin", n)
	}

	for i := 0; i < 2; i++ {
		health := components.Health.Get(fighterEntry(t, e, i))
		if health.Current != cfg.Fighter.MaxHealth {
			t.Fatalf("player %d lost health from an off-screen projectile", i)
		}
	}
}
