package components

import "github.com/yohamta/donburi"

// CombatData holds a fighter's countdown timers and the one-shot melee
// hit flag. All four timers decrement by one per tick while positive.
type CombatData struct {
	AttackCooldown  int
	SpecialCooldown int
	HitStun         int
	BlockStun       int

	// PendingHit is armed when an attack is initiated and consumed by
	// the combat resolver exactly once, HitDelay ticks later, provided
	// the fighter is still attacking then. This is what guarantees an
	// attack lands damage at most once per activation no matter how
	// long StateAttacking persists, and that an interrupted swing never
	// lands at all.
	PendingHit bool
	HitDelay   int
}

// Stunned reports whether input must be ignored this tick.
func (c *CombatData) Stunned() bool {
	return c.HitStun > 0 || c.BlockStun > 0
}

var Combat = donburi.NewComponentType[CombatData]()
