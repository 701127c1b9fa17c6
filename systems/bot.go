package systems

import (
	"math"
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
)

// Random number generator for bot decision making.
// Uses fixed seed so bot matches are repeatable.
var rng = rand.New(rand.NewSource(42))

// UpdateBots generates input for bot-controlled fighters. It runs
// first in the tick so the simulation cannot tell bot input from
// keyboard input.
func UpdateBots(e *ecs.ECS) {
	match := currentMatch(e)
	if match == nil || match.Phase != cfg.PhasePlaying {
		return
	}

	components.Bot.Each(e.World, func(entry *donburi.Entry) {
		updateBotAI(e, entry)
	})
}

func updateBotAI(e *ecs.ECS, botEntry *donburi.Entry) {
	bot := components.Bot.Get(botEntry)
	input := components.PlayerInput.Get(botEntry)
	fighter := components.Fighter.Get(botEntry)
	obj := components.Object.Get(botEntry).Object
	energy := components.Energy.Get(botEntry)

	target := findOpponent(e, fighter.PlayerIndex)

	if bot.DecisionTimer > 0 {
		bot.DecisionTimer--
	} else if target != nil {
		decide(bot, obj.X+obj.W/2, target, energy.Current)
		bot.DecisionTimer = 8 + rng.Intn(8)
	}

	input.Current = [cfg.ActionCount]bool{}
	switch {
	case bot.MoveDir < 0:
		input.Current[cfg.ActionMoveLeft] = true
	case bot.MoveDir > 0:
		input.Current[cfg.ActionMoveRight] = true
	}
	if bot.WantJump {
		input.Current[cfg.ActionJump] = true
		bot.WantJump = false
	}
	if bot.WantAttack {
		input.Current[cfg.ActionAttack] = true
		bot.WantAttack = false
	}
	if bot.WantSpecial {
		input.Current[cfg.ActionSpecial] = true
		bot.WantSpecial = false
	}
	input.Current[cfg.ActionBlock] = bot.WantBlock
}

type opponentInfo struct {
	x, y  float64
	state cfg.StateID
}

func findOpponent(e *ecs.ECS, myIndex int) *opponentInfo {
	var found *opponentInfo
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		if fighter.PlayerIndex == myIndex {
			return
		}
		obj := components.Object.Get(entry).Object
		state := components.State.Get(entry)
		found = &opponentInfo{
			x:     obj.X + obj.W/2,
			y:     obj.Y + obj.H/2,
			state: state.CurrentState,
		}
	})
	return found
}

func decide(bot *components.BotData, botX float64, target *opponentInfo, energy float64) {
	dx := target.x - botX
	dist := math.Abs(dx)

	bot.WantBlock = false

	// Guard against an opponent mid-swing at close range.
	threatening := target.state == cfg.StateAttacking || target.state == cfg.StateSpecial
	if threatening && dist < cfg.Combat.AttackReach*2 && rng.Float64() < 0.6 {
		bot.MoveDir = 0
		bot.WantBlock = true
		return
	}

	switch {
	case dist < cfg.Combat.AttackReach:
		bot.MoveDir = 0
		bot.WantAttack = true
	case dist < cfg.Combat.AttackReach*3:
		if dx > 0 {
			bot.MoveDir = 1
		} else {
			bot.MoveDir = -1
		}
		if rng.Float64() < 0.3 {
			bot.WantAttack = true
		}
	default:
		if dx > 0 {
			bot.MoveDir = 1
		} else {
			bot.MoveDir = -1
		}
		if energy >= cfg.Projectile.EnergyCost && rng.Float64() < 0.25 {
			bot.WantSpecial = true
		}
		if rng.Float64() < 0.05 {
			bot.WantJump = true
		}
	}
}
