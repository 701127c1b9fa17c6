package components

import (
	"image/color"

	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
)

// FighterSnapshot is the read-only view of one fighter.
type FighterSnapshot struct {
	PlayerIndex int
	Name        string
	Color       color.RGBA

	X, Y, W, H float64
	VelX, VelY float64
	Facing     float64
	OnGround   bool

	State cfg.StateID

	Health    int
	MaxHealth int
	Energy    float64
	MaxEnergy float64

	HitStun   int
	BlockStun int
	Combo     int
	AnimFrame int
}

// ProjectileSnapshot is the read-only view of one live projectile.
type ProjectileSnapshot struct {
	X, Y, W, H float64
	VelX       float64
	Type       cfg.ProjectileType
	OwnerIndex int
	AnimFrame  int
}

// ParticleSnapshot is the read-only view of one particle. Fade alpha is
// derived from LifeRatio by the renderer.
type ParticleSnapshot struct {
	X, Y      float64
	Size      float64
	LifeRatio float64
	Color     color.RGBA
}

// WorldSnapshot is the full state published after each tick for the
// rendering and UI collaborators. It is rebuilt every tick; consumers
// must treat it as immutable.
type WorldSnapshot struct {
	Tick  uint64
	Phase cfg.GamePhase

	Round          int
	Scores         [2]int
	CountdownValue int
	WinnerIndex    int
	WinnerName     string

	Fighters    []FighterSnapshot
	Projectiles []ProjectileSnapshot
	Particles   []ParticleSnapshot
}

// SnapshotData is the singleton holder for the latest snapshot.
type SnapshotData struct {
	Tick    uint64
	Current *WorldSnapshot
}

var Snapshot = donburi.NewComponentType[SnapshotData]()
