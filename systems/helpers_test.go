package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
)

// newDuelWorld builds a full fight world with the same system order the
// fight scene uses. No renderers and no keyboard: tests drive input by
// writing into the players' input snapshots.
func newDuelWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateMatch(e)
	factory.CreateFighter(e, 0)
	factory.CreateFighter(e, 1)
	Register(e)
	return e
}

// startPlaying skips past the countdown so gameplay systems run on the
// next tick.
func startPlaying(e *ecs.ECS) {
	match := currentMatch(e)
	match.Phase = cfg.PhasePlaying
	match.TickPhase = cfg.PhasePlaying
	match.Timer = 0
	match.CountdownValue = 0
}

func tick(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		e.Update()
	}
}

func fighterEntry(t *testing.T, e *ecs.ECS, playerIndex int) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).PlayerIndex == playerIndex {
			found = entry
		}
	})
	if found == nil {
		t.Fatalf("no fighter with player index %d", playerIndex)
	}
	return found
}

// hold sets an action as held; it stays held until released. Mirrors a
// key staying down across ticks.
func hold(t *testing.T, e *ecs.ECS, playerIndex int, action cfg.ActionID) {
	t.Helper()
	in := components.PlayerInput.Get(fighterEntry(t, e, playerIndex))
	in.Current[action] = true
}

func release(t *testing.T, e *ecs.ECS, playerIndex int, action cfg.ActionID) {
	t.Helper()
	in := components.PlayerInput.Get(fighterEntry(t, e, playerIndex))
	in.Current[action] = false
}

// tap holds an action for exactly one tick.
func tap(t *testing.T, e *ecs.ECS, playerIndex int, action cfg.ActionID) {
	t.Helper()
	hold(t, e, playerIndex, action)
	tick(e, 1)
	release(t, e, playerIndex, action)
}

// placeFighters teleports both fighters to the given x positions, feet
// on the ground.
func placeFighters(t *testing.T, e *ecs.ECS, x0, x1 float64) {
	t.Helper()
	for i, x := range []float64{x0, x1} {
		obj := components.Object.Get(fighterEntry(t, e, i))
		obj.X = x
		obj.Y = cfg.Arena.GroundY - obj.H
		obj.Update()
	}
}

// countEntities tallies entities via a tag's Each method, e.g.
// countEntities(e, tags.Projectile.Each).
func countEntities(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}
