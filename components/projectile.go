package components

import (
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner      *donburi.Entry
	OwnerIndex int
	Type       cfg.ProjectileType
	Damage     int
	AnimFrame  int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
