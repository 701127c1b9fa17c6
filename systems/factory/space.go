package factory

import (
	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the singleton resolv space sized to the arena.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(cfg.Arena.Width), int(cfg.Arena.Height),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}
