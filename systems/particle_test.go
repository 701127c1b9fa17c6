package systems

import (
	"math"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
)

func TestBurstSpawnsRequestedCount(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	factory.SpawnBurst(e, 480, 300, cfg.Red, 12)
	if n := countEntities(e, tags.Particle.Each); n != 12 {
		t.Fatalf("particles = %d, want 12", n)
	}
}

func TestParticleLivesExactlyItsLifetime(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	factory.SpawnBurst(e, 480, 300, cfg.Red, 1)

	// Present in every snapshot for the full lifetime.
	tick(e, cfg.Particle.Lifetime)
	snap := CurrentSnapshot(e)
	if len(snap.Particles) != 1 {
		t.Fatalf("particle gone after %d ticks, want present", cfg.Particle.Lifetime)
	}
	if snap.Particles[0].LifeRatio != 0 {
		t.Fatalf("life ratio = %v on the last tick, want 0", snap.Particles[0].LifeRatio)
	}

	// Gone on the tick after.
	tick(e, 1)
	snap = CurrentSnapshot(e)
	if len(snap.Particles) != 0 {
		t.Fatalf("particles = %d one tick past lifetime, want 0", len(snap.Particles))
	}
	if n := countEntities(e, tags.Particle.Each); n != 0 {
		t.Fatalf("particle entity leaked: count = %d", n)
	}
}

func TestParticleDragSlowsVelocity(t *testing.T) {
	e := newDuelWorld(t)
	startPlaying(e)

	factory.SpawnBurst(e, 480, 300, cfg.Red, 1)

	var vx0 float64
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		vx0 = components.Particle.Get(entry).VelX
	})

	tick(e, 1)
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		want := vx0 * cfg.Particle.Drag
		if math.Abs(p.VelX-want) > 1e-9 {
			t.Fatalf("velX = %v after one tick, want %v", p.VelX, want)
		}
	})
}
