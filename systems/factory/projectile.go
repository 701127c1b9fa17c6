package factory

import (
	"github.com/janvanwassenhove/fighter-game/archetypes"
	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnProjectile creates the owner's signature projectile at its
// leading edge, moving horizontally away from it.
func SpawnProjectile(e *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	ownerObj := components.Object.Get(owner).Object

	var x float64
	if fighter.Facing > 0 {
		x = ownerObj.X + ownerObj.W
	} else {
		x = ownerObj.X - cfg.Projectile.Width
	}
	y := ownerObj.Y + (ownerObj.H-cfg.Projectile.Height)/2

	entry := archetypes.Projectile.Spawn(e)

	components.Projectile.Set(entry, &components.ProjectileData{
		Owner:      owner,
		OwnerIndex: fighter.PlayerIndex,
		Type:       fighter.SpecialType,
		Damage:     cfg.Projectile.Damage,
	})

	obj := resolv.NewObject(x, y, cfg.Projectile.Width, cfg.Projectile.Height, tags.ResolvProjectile)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Projectile.Width, cfg.Projectile.Height))
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Physics.Set(entry, &components.PhysicsData{
		Velocity: components.Vector{X: fighter.Facing * cfg.Projectile.Speed},
	})

	return entry
}
