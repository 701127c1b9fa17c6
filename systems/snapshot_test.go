package systems

import (
	"testing"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
)

func TestSnapshotPublishedEveryTick(t *testing.T) {
	e := newDuelWorld(t)

	if CurrentSnapshot(e) != nil {
		t.Fatal("snapshot exists before the first tick")
	}

	tick(e, 1)
	snap := CurrentSnapshot(e)
	if snap == nil {
		t.Fatal("no snapshot after the first tick")
	}
	if snap.Tick != 1 {
		t.Fatalf("tick = %d, want 1", snap.Tick)
	}

	tick(e, 4)
	if got := CurrentSnapshot(e).Tick; got != 5 {
		t.Fatalf("tick = %d after five updates, want 5", got)
	}
}

func TestSnapshotFightersOrderedByPlayerIndex(t *testing.T) {
	e := newDuelWorld(t)
	tick(e, 1)

	snap := CurrentSnapshot(e)
	if len(snap.Fighters) != 2 {
		t.Fatalf("fighters = %d, want 2", len(snap.Fighters))
	}
	for i, f := range snap.Fighters {
		if f.PlayerIndex != i {
			t.Fatalf("fighters[%d].PlayerIndex = %d, want %d", i, f.PlayerIndex, i)
		}
	}
}

func TestSnapshotMirrorsLiveState(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	hold(t, e, 0, cfg.ActionMoveRight)
	tick(e, 3)

	entry := fighterEntry(t, e, 0)
	obj := components.Object.Get(entry)
	health := components.Health.Get(entry)

	snap := CurrentSnapshot(e)
	f := snap.Fighters[0]
	if f.X != obj.X || f.Y != obj.Y {
		t.Fatalf("snapshot pos = (%v,%v), live = (%v,%v)", f.X, f.Y, obj.X, obj.Y)
	}
	if f.State != cfg.StateWalking {
		t.Fatalf("snapshot state = %v, want walking", f.State)
	}
	if f.Health != health.Current || f.MaxHealth != health.Max {
		t.Fatalf("snapshot health = %d/%d, live = %d/%d", f.Health, f.MaxHealth, health.Current, health.Max)
	}
	if f.Name != cfg.Fighter.Defs[0].Name {
		t.Fatalf("snapshot name = %q, want %q", f.Name, cfg.Fighter.Defs[0].Name)
	}
	if snap.Phase != cfg.PhasePlaying {
		t.Fatalf("snapshot phase = %v, want playing", snap.Phase)
	}
}

func TestSnapshotIsDetachedFromLiveWorld(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)
	tick(e, 1)

	old := CurrentSnapshot(e)
	oldHealth := old.Fighters[1].Health

	closeRange(t, e)
	hold(t, e, 0, cfg.ActionAttack)
	tick(e, 2)

	// The earlier snapshot must not have been mutated in place.
	if old.Fighters[1].Health != oldHealth {
		t.Fatal("published snapshot was mutated after the fact")
	}
	if CurrentSnapshot(e) == old {
		t.Fatal("snapshot not rebuilt for new tick")
	}
}

func TestSnapshotCarriesProjectilesAndParticles(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	tap(t, e, 0, cfg.ActionSpecial)

	snap := CurrentSnapshot(e)
	if len(snap.Projectiles) != 1 {
		t.Fatalf("snapshot projectiles = %d, want 1", len(snap.Projectiles))
	}
	p := snap.Projectiles[0]
	if p.Type != cfg.Fighter.Defs[0].SpecialType || p.OwnerIndex != 0 {
		t.Fatalf("snapshot projectile = %+v, want owner 0 signature type", p)
	}

	closeRange(t, e)
	hold(t, e, 0, cfg.ActionAttack)
	tick(e, 2)

	snap = CurrentSnapshot(e)
	if len(snap.Particles) == 0 {
		t.Fatal("snapshot carries no particles after a hit")
	}
	for _, part := range snap.Particles {
		if part.LifeRatio < 0 || part.LifeRatio > 1 {
			t.Fatalf("life ratio = %v, want within [0,1]", part.LifeRatio)
		}
	}
}
