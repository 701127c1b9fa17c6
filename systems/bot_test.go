package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
)

func addBot(t *testing.T, e *ecs.ECS, playerIndex int) {
	t.Helper()
	donburi.Add(fighterEntry(t, e, playerIndex), components.Bot, &components.BotData{})
}

func TestBotClosesDistance(t *testing.T) {
	e := newDuelWorld(t)
	addBot(t, e, 1)
	startPlaying(e)

	obj := components.Object.Get(fighterEntry(t, e, 1))
	startX := obj.X

	tick(e, 60)

	if obj.X >= startX {
		t.Fatalf("bot x = %v, want it closing on the opponent from %v", obj.X, startX)
	}
}

func TestBotIdlesOutsidePlay(t *testing.T) {
	e := newDuelWorld(t)
	addBot(t, e, 1)
	// Countdown phase: bot must not write input.

	tick(e, 5)

	in := components.PlayerInput.Get(fighterEntry(t, e, 1))
	for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
		if in.Current[a] {
			t.Fatalf("bot pressed action %d during countdown", a)
		}
	}
}

func TestBotAttacksInReach(t *testing.T) {
	e := newDuelWorld(t)
	addBot(t, e, 1)
	startPlaying(e)

	defender := fighterEntry(t, e, 0)
	health := components.Health.Get(defender)

	// Keep the bot pinned in melee range; sooner or later it swings.
	for i := 0; i < 240 && health.Current == cfg.Fighter.MaxHealth; i++ {
		placeFighters(t, e, 300, 330)
		tick(e, 1)
	}

	if health.Current == cfg.Fighter.MaxHealth {
		t.Fatal("bot never landed a hit at point-blank range")
	}
}
