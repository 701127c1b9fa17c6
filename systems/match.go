package systems

import (
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch captures the tick phase and advances the game flow:
// pre-round countdown, pause toggling, and waiting out the game-over
// screen. Round outcomes themselves are declared by the combat systems
// through EndRound.
func UpdateMatch(e *ecs.ECS) {
	match := currentMatch(e)
	if match == nil {
		return
	}
	match.TickPhase = match.Phase

	switch match.Phase {
	case cfg.PhaseCountdown:
		if match.Timer > 0 {
			match.Timer--
			ticksPerCount := cfg.Match.CountdownDuration / 3
			if ticksPerCount > 0 {
				match.CountdownValue = match.Timer/ticksPerCount + 1
			}
			return
		}
		match.CountdownValue = 0
		match.Phase = cfg.PhasePlaying

	case cfg.PhasePlaying:
		if pauseJustPressed(e) {
			match.Phase = cfg.PhasePaused
		}

	case cfg.PhasePaused:
		// All entity state is preserved untouched for resume.
		if pauseJustPressed(e) {
			match.Phase = cfg.PhasePlaying
		}

	case cfg.PhaseGameOver:
		// Waits for StartNextRound or a return to the menu.
	}
}

// EndRound declares the round winner, credits the score, and moves the
// game to the game-over phase. Safe to call at most once per round;
// later calls in the same round are ignored.
func EndRound(e *ecs.ECS, winnerIndex int) {
	match := currentMatch(e)
	if match == nil || match.Phase != cfg.PhasePlaying {
		return
	}

	match.Scores[winnerIndex]++
	match.WinnerIndex = winnerIndex
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		if fighter.PlayerIndex == winnerIndex {
			match.WinnerName = fighter.Name
		}
	})
	match.Phase = cfg.PhaseGameOver
}

// StartNextRound discards all round entities and recreates both
// fighters with fresh stats; health, energy and timers never carry
// over between rounds. Scores and round number persist on the match.
func StartNextRound(e *ecs.ECS) {
	match := currentMatch(e)
	if match == nil {
		return
	}

	clearRoundEntities(e)

	factory.CreateFighter(e, 0)
	second := factory.CreateFighter(e, 1)
	if GetOrCreateSettings(e).BotOpponent {
		donburi.Add(second, components.Bot, &components.BotData{})
	}

	match.Round++
	match.Phase = cfg.PhaseCountdown
	match.Timer = cfg.Match.CountdownDuration
	match.CountdownValue = 0
	match.WinnerIndex = -1
	match.WinnerName = ""
}

// ResetMatch zeroes the scores and starts over from round one.
func ResetMatch(e *ecs.ECS) {
	match := currentMatch(e)
	if match == nil {
		return
	}
	match.Scores = [2]int{}
	match.Round = 0
	StartNextRound(e)
}

func clearRoundEntities(e *ecs.ECS) {
	var fighters, projectiles, particles []*donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighters = append(fighters, entry)
	})
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectiles = append(projectiles, entry)
	})
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		particles = append(particles, entry)
	})

	for _, entry := range fighters {
		factory.RemoveFighter(e, entry)
	}
	for _, entry := range projectiles {
		destroyProjectile(e, entry)
	}
	for _, entry := range particles {
		e.World.Remove(entry.Entity())
	}
}

// currentMatch returns the match singleton, or nil before the fight
// scene has configured the world.
func currentMatch(e *ecs.ECS) *components.MatchData {
	matchEntry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(matchEntry)
}

func pauseJustPressed(e *ecs.ECS) bool {
	pressed := false
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.PlayerInput.Get(entry)
		if in.Action(cfg.ActionPause).JustPressed {
			pressed = true
		}
	})
	return pressed
}
