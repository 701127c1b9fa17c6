package components

import (
	"image/color"

	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	PlayerIndex int // 0 or 1
	Name        string
	Color       color.RGBA
	Facing      float64 // cfg.DirectionLeft or cfg.DirectionRight
	SpecialType cfg.ProjectileType
	Combo       int

	// Animation phase counters, read only by rendering
	AnimFrame int
	AnimTimer int
}

var Fighter = donburi.NewComponentType[FighterData]()
