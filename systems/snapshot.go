package systems

import (
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	"github.com/janvanwassenhove/fighter-game/tags"
)

// PublishSnapshot rebuilds the world snapshot after every tick. The
// renderer and HUD read only this; they never touch live components.
func PublishSnapshot(e *ecs.ECS) {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	snap := components.Snapshot.Get(matchEntry)

	ws := &components.WorldSnapshot{
		Tick:           snap.Tick + 1,
		Phase:          match.Phase,
		Round:          match.Round,
		Scores:         match.Scores,
		CountdownValue: match.CountdownValue,
		WinnerIndex:    match.WinnerIndex,
		WinnerName:     match.WinnerName,
	}

	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry).Object
		physics := components.Physics.Get(entry)
		health := components.Health.Get(entry)
		energy := components.Energy.Get(entry)
		state := components.State.Get(entry)
		combat := components.Combat.Get(entry)

		ws.Fighters = append(ws.Fighters, components.FighterSnapshot{
			PlayerIndex: fighter.PlayerIndex,
			Name:        fighter.Name,
			Color:       fighter.Color,
			X:           obj.X,
			Y:           obj.Y,
			W:           obj.W,
			H:           obj.H,
			VelX:        physics.Velocity.X,
			VelY:        physics.Velocity.Y,
			Facing:      fighter.Facing,
			OnGround:    physics.OnGround,
			State:       state.CurrentState,
			Health:      health.Current,
			MaxHealth:   health.Max,
			Energy:      energy.Current,
			MaxEnergy:   energy.Max,
			HitStun:     combat.HitStun,
			BlockStun:   combat.BlockStun,
			Combo:       fighter.Combo,
			AnimFrame:   fighter.AnimFrame,
		})
	})
	sort.Slice(ws.Fighters, func(i, j int) bool {
		return ws.Fighters[i].PlayerIndex < ws.Fighters[j].PlayerIndex
	})

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		proj := components.Projectile.Get(entry)
		obj := components.Object.Get(entry).Object
		physics := components.Physics.Get(entry)

		ws.Projectiles = append(ws.Projectiles, components.ProjectileSnapshot{
			X:          obj.X,
			Y:          obj.Y,
			W:          obj.W,
			H:          obj.H,
			VelX:       physics.Velocity.X,
			Type:       proj.Type,
			OwnerIndex: proj.OwnerIndex,
			AnimFrame:  proj.AnimFrame,
		})
	})

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		ws.Particles = append(ws.Particles, components.ParticleSnapshot{
			X:         p.X,
			Y:         p.Y,
			Size:      p.Size,
			LifeRatio: p.LifeRatio(),
			Color:     p.Color,
		})
	})

	snap.Tick = ws.Tick
	snap.Current = ws
}

// CurrentSnapshot returns the latest published snapshot, or nil before
// the first tick completes.
func CurrentSnapshot(e *ecs.ECS) *components.WorldSnapshot {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Snapshot.Get(entry).Current
}
