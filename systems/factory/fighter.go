package factory

import (
	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns a fighter in its slot's mirrored spawn position,
// facing the opponent, with full health and energy and all timers
// cleared.
func CreateFighter(e *ecs.ECS, playerIndex int) *donburi.Entry {
	def := cfg.Fighter.Defs[playerIndex]

	facing := cfg.DirectionRight
	if playerIndex == 1 {
		facing = cfg.DirectionLeft
	}

	entry := archetypes.Fighter.Spawn(e)

	components.Fighter.Set(entry, &components.FighterData{
		PlayerIndex: playerIndex,
		Name:        def.Name,
		Color:       def.Color,
		Facing:      facing,
		SpecialType: def.SpecialType,
	})

	obj := resolv.NewObject(
		cfg.Fighter.SpawnX[playerIndex],
		cfg.Arena.GroundY-cfg.Fighter.Height,
		cfg.Fighter.Width,
		cfg.Fighter.Height,
		tags.ResolvFighter,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Health.Set(entry, &components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.Energy.Set(entry, &components.EnergyData{
		Current: cfg.Fighter.MaxEnergy,
		Max:     cfg.Fighter.MaxEnergy,
	})
	components.State.Set(entry, &components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateIdle,
	})
	components.Combat.Set(entry, &components.CombatData{})
	components.Physics.Set(entry, &components.PhysicsData{
		Gravity:        cfg.Fighter.Gravity,
		MoveSpeed:      cfg.Fighter.MoveSpeed,
		JumpImpulse:    cfg.Fighter.JumpImpulse,
		FrictionFactor: cfg.Fighter.FrictionFactor,
		OnGround:       true,
	})
	components.PlayerInput.Set(entry, &components.PlayerInputData{
		PlayerIndex: playerIndex,
	})

	return entry
}

// RemoveFighter detaches the fighter's collision object and removes the
// entity.
func RemoveFighter(e *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(e.World); ok {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
