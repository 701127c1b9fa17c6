package components

import "github.com/yohamta/donburi"

// HitboxData is attached to the short-lived melee hitbox entity spawned
// on the activation tick of an attack. The entity lives for a single
// combat resolution pass.
type HitboxData struct {
	Owner     *donburi.Entry
	Damage    int
	Knockback float64
}

var Hitbox = donburi.NewComponentType[HitboxData]()
