package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
)

const (
	hudBarWidth   = 300
	hudBarHeight  = 18
	hudEnergyH    = 8
	hudMargin     = 20
	hudPipRadius  = 6
	hudPipSpacing = 18
)

var (
	hudBarBack  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	hudHealth   = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	hudLagColor = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	hudEnergy   = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	hudPipOn    = cfg.Gold
	hudPipOff   = color.RGBA{R: 70, G: 70, B: 70, A: 255}
)

// healthLag tweens the trailing damage bar toward the real health value
// so big hits read as a shrinking red strip.
type healthLag struct {
	tween  *gween.Tween
	shown  float32
	target int
}

var hudLag [2]healthLag

func init() {
	for i := range hudLag {
		hudLag[i].shown = float32(1)
		hudLag[i].target = -1
	}
}

// DrawHUD renders both fighters' health and energy bars, round pips,
// combo counters and the match-flow overlays.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap := CurrentSnapshot(e)
	if snap == nil {
		return
	}

	for i := range snap.Fighters {
		drawFighterHUD(screen, &snap.Fighters[i], snap)
	}

	switch snap.Phase {
	case cfg.PhaseCountdown:
		drawCountdown(screen, snap)
	case cfg.PhasePaused:
		drawCenteredBanner(screen, "PAUSED")
	case cfg.PhaseGameOver:
		drawGameOver(screen, snap)
	}
}

func drawFighterHUD(screen *ebiten.Image, f *components.FighterSnapshot, snap *components.WorldSnapshot) {
	x := float32(hudMargin)
	rightSide := f.PlayerIndex == 1
	if rightSide {
		x = float32(cfg.Arena.Width) - hudMargin - hudBarWidth
	}
	y := float32(hudMargin)

	lag := &hudLag[f.PlayerIndex]
	ratio := float32(f.Health) / float32(f.MaxHealth)
	if f.Health != lag.target {
		lag.tween = gween.New(lag.shown, ratio, 0.4, ease.OutQuad)
		lag.target = f.Health
	}
	if lag.tween != nil {
		v, done := lag.tween.Update(1.0 / 60.0)
		lag.shown = v
		if done {
			lag.tween = nil
		}
	}

	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, hudBarBack, false)
	drawRatioBar(screen, x, y, hudBarWidth, hudBarHeight, lag.shown, hudLagColor, rightSide)
	drawRatioBar(screen, x, y, hudBarWidth, hudBarHeight, ratio, hudHealth, rightSide)

	ey := y + hudBarHeight + 4
	vector.DrawFilledRect(screen, x, ey, hudBarWidth, hudEnergyH, hudBarBack, false)
	drawRatioBar(screen, x, ey, hudBarWidth, hudEnergyH,
		float32(f.Energy/f.MaxEnergy), hudEnergy, rightSide)

	// Round pips under the bars
	py := ey + hudEnergyH + 6
	for i := 0; i < cfg.Match.RoundTarget; i++ {
		px := x + float32(i*hudPipSpacing)
		if rightSide {
			px = x + hudBarWidth - float32(i*hudPipSpacing) - hudPipRadius*2
		}
		clr := hudPipOff
		if snap.Scores[f.PlayerIndex] > i {
			clr = hudPipOn
		}
		vector.DrawFilledRect(screen, px, py, hudPipRadius*2, hudPipRadius*2, clr, false)
	}

	nameX := int(x)
	if rightSide {
		nameX = int(x+hudBarWidth) - len(f.Name)*6
	}
	ebitenutil.DebugPrintAt(screen, f.Name, nameX, int(py)+hudPipRadius*2+4)

	if f.Combo > 1 {
		comboX := int(x)
		if rightSide {
			comboX = int(x+hudBarWidth) - 60
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d HITS", f.Combo), comboX, 110)
	}
}

// drawRatioBar fills a fraction of the bar, anchored to the inner edge
// for the right-hand player so both bars drain toward the screen edge.
func drawRatioBar(screen *ebiten.Image, x, y, w, h, ratio float32, clr color.RGBA, rightSide bool) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	fw := w * ratio
	fx := x
	if rightSide {
		fx = x + w - fw
	}
	vector.DrawFilledRect(screen, fx, y, fw, h, clr, false)
}

func drawCountdown(screen *ebiten.Image, snap *components.WorldSnapshot) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.Arena.Width), float32(cfg.Arena.Height),
		color.RGBA{A: 120}, false)

	msg := fmt.Sprintf("%d", snap.CountdownValue)
	if snap.CountdownValue <= 0 {
		msg = "FIGHT!"
	}
	drawCenteredBanner(screen, fmt.Sprintf("ROUND %d", snap.Round))
	ebitenutil.DebugPrintAt(screen,
		msg,
		int(cfg.Arena.Width)/2-len(msg)*3,
		int(cfg.Arena.Height)/2+16)
}

func drawGameOver(screen *ebiten.Image, snap *components.WorldSnapshot) {
	vector.DrawFilledRect(screen, 0, 0,
		float32(cfg.Arena.Width), float32(cfg.Arena.Height),
		color.RGBA{A: 160}, false)

	matchOver := snap.Scores[0] >= cfg.Match.RoundTarget || snap.Scores[1] >= cfg.Match.RoundTarget
	if matchOver {
		drawCenteredBanner(screen, fmt.Sprintf("%s WINS THE MATCH", snap.WinnerName))
		ebitenutil.DebugPrintAt(screen, "PRESS ENTER TO RETURN TO MENU",
			int(cfg.Arena.Width)/2-90, int(cfg.Arena.Height)/2+24)
		return
	}
	drawCenteredBanner(screen, fmt.Sprintf("%s TAKES THE ROUND", snap.WinnerName))
	ebitenutil.DebugPrintAt(screen, "PRESS ENTER FOR NEXT ROUND",
		int(cfg.Arena.Width)/2-80, int(cfg.Arena.Height)/2+24)
}

func drawCenteredBanner(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen,
		msg,
		int(cfg.Arena.Width)/2-len(msg)*3,
		int(cfg.Arena.Height)/2-8)
}
