package config

// StateID identifies a fighter's combat state. A fighter is in exactly
// one state at any tick.
type StateID int

const (
	StateIdle StateID = iota
	StateWalking
	StateJumping
	StateAttacking
	StateBlocking
	StateHit
	StateSpecial
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateJumping:
		return "jumping"
	case StateAttacking:
		return "attacking"
	case StateBlocking:
		return "blocking"
	case StateHit:
		return "hit"
	case StateSpecial:
		return "special"
	}
	return "unknown"
}

// GamePhase identifies the top-level game flow state. Gameplay systems
// only run while the phase is PhasePlaying.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhaseCountdown
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	}
	return "unknown"
}

// ProjectileType tags a projectile with its damage flavor. Each fighter
// has a signature type used by their special attack.
type ProjectileType int

const (
	ProjectileFireball ProjectileType = iota
	ProjectileIce
	ProjectileLightning
)

func (t ProjectileType) String() string {
	switch t {
	case ProjectileFireball:
		return "fireball"
	case ProjectileIce:
		return "ice"
	case ProjectileLightning:
		return "lightning"
	}
	return "unknown"
}

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
