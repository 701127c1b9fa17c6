package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems"
)

const (
	menuItemVersus = iota
	menuItemVersusBot
	menuItemHitboxes
	menuItemCount
)

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	once         sync.Once

	selection    int
	showHitboxes bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ms.selection = (ms.selection + 1) % menuItemCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ms.selection = (ms.selection + menuItemCount - 1) % menuItemCount
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	switch ms.selection {
	case menuItemVersus:
		ms.startFight(false)
	case menuItemVersusBot:
		ms.startFight(true)
	case menuItemHitboxes:
		ms.showHitboxes = !ms.showHitboxes
	}
}

func (ms *MenuScene) configure() {
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		ms.showHitboxes = saved.ShowHitboxes
	}
}

func (ms *MenuScene) startFight(bot bool) {
	_ = systems.SaveSettings(&systems.SavedSettings{
		ShowHitboxes: ms.showHitboxes,
		BotOpponent:  bot,
	})
	ms.sceneChanger.ChangeScene(NewFightScene(ms.sceneChanger, bot, ms.showHitboxes))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	cx := cfg.C.Width / 2
	ebitenutil.DebugPrintAt(screen, "ARENA DUEL", cx-30, 120)

	labels := [menuItemCount]string{
		"VERSUS",
		"VERSUS BOT",
		fmt.Sprintf("HITBOXES: %s", onOff(ms.showHitboxes)),
	}
	for i, label := range labels {
		y := 200 + i*30
		if i == ms.selection {
			vector.DrawFilledRect(screen,
				float32(cx-90), float32(y-4), 180, 20,
				color.RGBA{R: 60, G: 60, B: 90, A: 255}, false)
		}
		ebitenutil.DebugPrintAt(screen, label, cx-len(label)*3, y)
	}

	ebitenutil.DebugPrintAt(screen, "W/S TO SELECT, ENTER TO CONFIRM", cx-95, 330)
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
