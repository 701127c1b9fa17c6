package systems

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles moves every particle, applies drag, and counts its
// life down. A particle spawned with life N appears in exactly N
// snapshots: it is removed at the start of the first tick after its
// life reaches zero.
func UpdateParticles(e *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)

		if p.Life <= 0 {
			toRemove = append(toRemove, entry)
			return
		}

		p.X += p.VelX
		p.Y += p.VelY
		p.VelX *= cfg.Particle.Drag
		p.VelY *= cfg.Particle.Drag
		p.Life--
	})

	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}
