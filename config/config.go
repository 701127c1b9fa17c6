package config

import "image/color"

// ArenaConfig contains the fixed stage dimensions
type ArenaConfig struct {
	Width   float64
	Height  float64
	GroundY float64 // y coordinate of the ground line (fighter feet rest here)

	// Resolv space cell size
	CellSize int
}

// FighterDef describes one of the two selectable fighters
type FighterDef struct {
	Name        string
	Color       color.RGBA
	SpecialType ProjectileType
}

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Movement
	MoveSpeed   float64
	JumpImpulse float64
	Gravity     float64

	// Horizontal velocity decay while no move key is held
	FrictionFactor float64
	StopThreshold  float64

	// Resources
	MaxHealth   int
	MaxEnergy   float64
	EnergyRegen float64 // per tick, toward max

	// Dimensions and mirrored spawn positions
	Width  float64
	Height float64
	SpawnX [2]float64

	// Animation
	AnimTickRate int // ticks per animation frame

	// Fighter roster by player slot
	Defs [2]FighterDef
}

// CombatConfig contains melee combat configuration values
type CombatConfig struct {
	AttackDamage   int
	AttackReach    float64
	AttackCooldown int // ticks
	AttackRecovery int // ticks before StateAttacking returns to idle

	HitStun         int // ticks
	BlockStun       int // ticks
	BlockEnergyCost float64
	KnockbackForce  float64

	// Particle bursts
	HitBurstCount   int
	BlockBurstCount int
}

// ProjectileConfig contains special attack / projectile configuration
type ProjectileConfig struct {
	Speed      float64
	Damage     int
	HitStun    int
	Width      float64
	Height     float64
	EnergyCost float64
	Cooldown   int     // ticks
	Recovery   int     // ticks before StateSpecial returns to idle
	Margin     float64 // distance past arena bounds before removal
	BurstCount int
}

// ParticleConfig contains visual feedback particle configuration
type ParticleConfig struct {
	Lifetime       int     // ticks
	Drag           float64 // velocity multiplier per tick
	MaxSpeed       float64 // spawn velocity range is [-MaxSpeed, MaxSpeed]
	PositionJitter float64
	MinSize        float64
	MaxSize        float64
}

// MatchConfig contains round and match flow configuration
type MatchConfig struct {
	RoundTarget       int // round wins needed to take the match
	CountdownDuration int // ticks of pre-round countdown
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Particle ParticleConfig
var Match MatchConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gold      = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	IceBlue   = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	Volt      = color.RGBA{R: 255, G: 255, B: 120, A: 255}
	DarkRed   = color.RGBA{R: 170, G: 40, B: 40, A: 255}
	DarkBlue  = color.RGBA{R: 40, G: 80, B: 170, A: 255}
	GroundCol = color.RGBA{R: 60, G: 50, B: 40, A: 255}
)

// ProjectileColors maps each projectile type to its render/burst color
var ProjectileColors = map[ProjectileType]color.RGBA{
	ProjectileFireball:  Orange,
	ProjectileIce:       IceBlue,
	ProjectileLightning: Volt,
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Arena = ArenaConfig{
		Width:    960,
		Height:   540,
		GroundY:  480,
		CellSize: 16,
	}

	Fighter = FighterConfig{
		MoveSpeed:   5.0,
		JumpImpulse: 15.0,
		Gravity:     0.8,

		FrictionFactor: 0.8,
		StopThreshold:  0.1,

		MaxHealth:   100,
		MaxEnergy:   100.0,
		EnergyRegen: 0.25,

		Width:  50,
		Height: 90,
		SpawnX: [2]float64{200, 710},

		AnimTickRate: 6,

		Defs: [2]FighterDef{
			{Name: "Kai", Color: DarkRed, SpecialType: ProjectileFireball},
			{Name: "Rei", Color: DarkBlue, SpecialType: ProjectileIce},
		},
	}

	Combat = CombatConfig{
		AttackDamage:   15,
		AttackReach:    40.0,
		AttackCooldown: 30,
		AttackRecovery: 15,

		HitStun:         20,
		BlockStun:       15,
		BlockEnergyCost: 5.0,
		KnockbackForce:  8.0,

		HitBurstCount:   14,
		BlockBurstCount: 6,
	}

	Projectile = ProjectileConfig{
		Speed:      8.0,
		Damage:     25,
		HitStun:    25,
		Width:      30.0,
		Height:     20.0,
		EnergyCost: 30.0,
		Cooldown:   60,
		Recovery:   20,
		Margin:     50.0,
		BurstCount: 10,
	}

	Particle = ParticleConfig{
		Lifetime:       30,
		Drag:           0.98,
		MaxSpeed:       5.0,
		PositionJitter: 10.0,
		MinSize:        2.0,
		MaxSize:        6.0,
	}

	Match = MatchConfig{
		RoundTarget:       2,
		CountdownDuration: 90,
	}
}
