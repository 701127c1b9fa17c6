package components

import (
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
)

// MatchData stores the game phase, round number and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Phase cfg.GamePhase

	// TickPhase is the phase captured at the start of the current tick.
	// Gameplay systems gate on it rather than Phase so a tick that
	// declares a winner mid-pass still completes all entity updates.
	TickPhase cfg.GamePhase

	Round       int
	Scores      [2]int
	RoundTarget int

	// Countdown bookkeeping
	Timer          int
	CountdownValue int // 3, 2, 1; 0 means GO

	// Round outcome, valid while Phase is PhaseGameOver
	WinnerIndex int // -1 when no winner yet
	WinnerName  string
}

// Over reports whether a player has reached the round target.
func (m *MatchData) Over() bool {
	return m.Scores[0] >= m.RoundTarget || m.Scores[1] >= m.RoundTarget
}

var Match = donburi.NewComponentType[MatchData]()
