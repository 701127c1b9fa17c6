package factory

import (
	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatch spawns the singleton match entity in the pre-round
// countdown phase.
func CreateMatch(ecs *ecs.ECS) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)
	components.Match.Set(match, &components.MatchData{
		Phase:       cfg.PhaseCountdown,
		Round:       1,
		RoundTarget: cfg.Match.RoundTarget,
		Timer:       cfg.Match.CountdownDuration,
		WinnerIndex: -1,
	})
	components.Snapshot.Set(match, &components.SnapshotData{})
	return match
}
