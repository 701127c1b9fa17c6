package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	"github.com/janvanwassenhove/fighter-game/tags"
)

// DrawDebug outlines every collision object in the space and prints the
// per-fighter state line. Enabled via the hitbox setting.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{R: 0, G: 255, B: 255, A: 255} // Cyan default
		if obj.HasTags(tags.ResolvFighter) {
			c = color.RGBA{B: 255, A: 255}
		} else if obj.HasTags(tags.ResolvHitbox) {
			c = color.RGBA{R: 255, A: 255}
		} else if obj.HasTags(tags.ResolvProjectile) {
			c = color.RGBA{G: 255, A: 255}
		}
		vector.StrokeRect(screen,
			float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			1, c, false)
	}

	snap := CurrentSnapshot(e)
	if snap == nil {
		return
	}
	y := 130
	for i := range snap.Fighters {
		f := &snap.Fighters[i]
		line := fmt.Sprintf("P%d %s hp=%d en=%.0f stun=%d/%d vel=(%.1f,%.1f)",
			f.PlayerIndex+1, f.State, f.Health, f.Energy,
			f.HitStun, f.BlockStun, f.VelX, f.VelY)
		ebitenutil.DebugPrintAt(screen, line, 10, y)
		y += 14
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("tick=%d phase=%s", snap.Tick, snap.Phase), 10, y)
}
