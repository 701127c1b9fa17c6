package archetypes

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.Energy,
		components.State,
		components.Combat,
		components.Physics,
		components.PlayerInput,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Match = newArchetype(
		components.Match,
		components.Snapshot,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
