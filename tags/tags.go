package tags

import "github.com/yohamta/donburi"

var (
	Fighter    = donburi.NewTag().SetName("Fighter")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Resolv tags for collision queries
const (
	ResolvFighter    = "Fighter"
	ResolvHitbox     = "Hitbox"
	ResolvProjectile = "Projectile"
)
