package systems

import (
	"testing"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
)

func TestArenaBoundsClampLeft(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	placeFighters(t, e, 5, 710)

	hold(t, e, 0, cfg.ActionMoveLeft)
	tick(e, 10)

	obj := components.Object.Get(fighterEntry(t, e, 0))
	if obj.X != 0 {
		t.Fatalf("x = %v at the left wall, want 0", obj.X)
	}
}

func TestArenaBoundsClampRight(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	limit := cfg.Arena.Width - cfg.Fighter.Width
	placeFighters(t, e, 200, limit-5)

	hold(t, e, 1, cfg.ActionMoveRight)
	tick(e, 10)

	obj := components.Object.Get(fighterEntry(t, e, 1))
	if obj.X != limit {
		t.Fatalf("x = %v at the right wall, want %v", obj.X, limit)
	}
}

func TestKnockbackStopsAtWall(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	// Defender nearly touching the right wall; attacker in reach.
	limit := cfg.Arena.Width - cfg.Fighter.Width
	placeFighters(t, e, limit-60, limit-2)

	hold(t, e, 0, cfg.ActionAttack)
	tick(e, 5)

	obj := components.Object.Get(fighterEntry(t, e, 1))
	if obj.X > limit {
		t.Fatalf("knockback pushed defender out of bounds: x = %v", obj.X)
	}
	if obj.X != limit {
		t.Fatalf("x = %v, want pinned at the wall %v", obj.X, limit)
	}
}

func TestNoGravityWhileGrounded(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	entry := fighterEntry(t, e, 0)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	y := obj.Y

	tick(e, 30)
	if physics.Velocity.Y != 0 {
		t.Fatalf("grounded velocity.y = %v, want 0", physics.Velocity.Y)
	}
	if obj.Y != y {
		t.Fatalf("grounded fighter sank: y %v -> %v", y, obj.Y)
	}
}
