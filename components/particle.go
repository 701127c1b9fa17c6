package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ParticleData is pure output state for rendering; particles carry no
// gameplay effect and no collision object.
type ParticleData struct {
	X, Y       float64
	VelX, VelY float64
	Life       int
	MaxLife    int
	Size       float64
	Color      color.RGBA
}

// LifeRatio returns remaining life in [0,1]; the render layer derives
// fade alpha from this.
func (p *ParticleData) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

var Particle = donburi.NewComponentType[ParticleData]()
