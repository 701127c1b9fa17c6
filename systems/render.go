package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
)

var skyColor = color.RGBA{R: 24, G: 26, B: 38, A: 255}

// DrawWorld renders the arena, fighters, projectiles and particles from
// the latest snapshot. It never reads live components.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	snap := CurrentSnapshot(e)
	if snap == nil {
		return
	}

	screen.Fill(skyColor)

	// Ground
	vector.DrawFilledRect(screen,
		0, float32(cfg.Arena.GroundY),
		float32(cfg.Arena.Width), float32(cfg.Arena.Height-cfg.Arena.GroundY),
		cfg.GroundCol, false)

	for i := range snap.Fighters {
		drawFighter(screen, &snap.Fighters[i])
	}

	for i := range snap.Projectiles {
		p := &snap.Projectiles[i]
		vector.DrawFilledRect(screen,
			float32(p.X), float32(p.Y), float32(p.W), float32(p.H),
			cfg.ProjectileColors[p.Type], false)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		vector.DrawFilledRect(screen,
			float32(p.X-p.Size/2), float32(p.Y-p.Size/2),
			float32(p.Size), float32(p.Size),
			fadeColor(p.Color, p.LifeRatio), false)
	}
}

func drawFighter(screen *ebiten.Image, f *components.FighterSnapshot) {
	body := f.Color
	switch {
	case f.HitStun > 0:
		body = cfg.Red
	case f.State == cfg.StateBlocking:
		body = cfg.Gold
	}

	vector.DrawFilledRect(screen,
		float32(f.X), float32(f.Y), float32(f.W), float32(f.H),
		body, false)

	// Facing marker near the head
	markerW := float32(8)
	markerY := float32(f.Y + 12)
	markerX := float32(f.X)
	if f.Facing == cfg.DirectionRight {
		markerX = float32(f.X+f.W) - markerW
	}
	vector.DrawFilledRect(screen, markerX, markerY, markerW, 8, cfg.White, false)
}

func fadeColor(c color.RGBA, ratio float64) color.RGBA {
	if ratio < 0 {
		ratio = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * ratio),
		G: uint8(float64(c.G) * ratio),
		B: uint8(float64(c.B) * ratio),
		A: uint8(float64(c.A) * ratio),
	}
}
