package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
)

// GetOrCreateSettings returns the settings singleton, spawning it with
// defaults if no entity carries the component yet.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(entry, components.SettingsData{})
	return components.Settings.Get(entry)
}
