package systems

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi/ecs"
)

// Register wires the fixed per-tick system order. The same order runs
// in-game and under test; rendering is registered separately by the
// scene.
//
// Per-tick order: bots write input, match advances phase/timers,
// fighters process input and timers, physics integrates, melee
// resolves, projectiles advance and resolve, particles decay, the
// snapshot publishes, and finally the input snapshots roll over for
// next tick's edge detection.
func Register(e *ecs.ECS) {
	e.AddSystem(UpdateBots)
	e.AddSystem(UpdateMatch)
	e.AddSystem(WhilePlaying(UpdateFighters))
	e.AddSystem(WhilePlaying(UpdatePhysics))
	e.AddSystem(WhilePlaying(ResolveMelee))
	e.AddSystem(WhilePlaying(UpdateProjectiles))
	e.AddSystem(WhilePlaying(UpdateParticles))
	e.AddSystem(PublishSnapshot)
	e.AddSystem(RollInput)
}

// WhilePlaying gates a gameplay system on the phase captured at tick
// start, so a KO in the combat step does not cut the tick short for
// the remaining systems.
func WhilePlaying(fn func(*ecs.ECS)) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		matchEntry, ok := components.Match.First(e.World)
		if !ok {
			return
		}
		if components.Match.Get(matchEntry).TickPhase == cfg.PhasePlaying {
			fn(e)
		}
	}
}
