package factory

import (
	"image/color"
	"math/rand"

	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi/ecs"
)

// Particle jitter RNG. Fixed seed keeps simulation runs reproducible.
var rng = rand.New(rand.NewSource(1))

// SpawnBurst creates count particles jittered around (x, y). Particles
// are decorative only; they never enter the collision space.
func SpawnBurst(e *ecs.ECS, x, y float64, col color.RGBA, count int) {
	for i := 0; i < count; i++ {
		entry := archetypes.Particle.Spawn(e)
		components.Particle.Set(entry, &components.ParticleData{
			X:       x + (rng.Float64()*2-1)*cfg.Particle.PositionJitter,
			Y:       y + (rng.Float64()*2-1)*cfg.Particle.PositionJitter,
			VelX:    (rng.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
			VelY:    (rng.Float64()*2 - 1) * cfg.Particle.MaxSpeed,
			Life:    cfg.Particle.Lifetime,
			MaxLife: cfg.Particle.Lifetime,
			Size:    cfg.Particle.MinSize + rng.Float64()*(cfg.Particle.MaxSize-cfg.Particle.MinSize),
			Color:   col,
		})
	}
}
