package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
	cfg "github.com/janvanwassenhove/fighter-game/config"
	"github.com/janvanwassenhove/fighter-game/systems"
	"github.com/janvanwassenhove/fighter-game/systems/factory"
)

// FightScene runs one best-of match between two fighters.
type FightScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	botOpponent  bool
	showHitboxes bool
}

// NewFightScene creates a fight scene; the world is built lazily on the
// first Update so scene construction stays cheap.
func NewFightScene(sc SceneChanger, botOpponent, showHitboxes bool) *FightScene {
	return &FightScene{
		sceneChanger: sc,
		botOpponent:  botOpponent,
		showHitboxes: showHitboxes,
	}
}

func (fs *FightScene) Update() {
	fs.once.Do(fs.configure)

	systems.CaptureKeyboard(fs.ecs)
	fs.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		settings := systems.GetOrCreateSettings(fs.ecs)
		settings.ShowHitboxes = !settings.ShowHitboxes
		systems.SaveCurrentSettings(fs.ecs)
	}

	fs.handleGameOver()
}

// handleGameOver advances past the round-result screen: next round if
// the match is still live, back to the menu once it is decided.
func (fs *FightScene) handleGameOver() {
	matchEntry, ok := components.Match.First(fs.ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)
	if match.Phase != cfg.PhaseGameOver {
		return
	}
	if !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}

	if match.Over() {
		_ = systems.RecordMatchResult(match)
		fs.sceneChanger.ChangeScene(NewMenuScene(fs.sceneChanger))
		return
	}
	systems.StartNextRound(fs.ecs)
}

func (fs *FightScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FightScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(fs.ecs)
	factory.CreateMatch(fs.ecs)

	settings := systems.GetOrCreateSettings(fs.ecs)
	settings.ShowHitboxes = fs.showHitboxes
	settings.BotOpponent = fs.botOpponent

	factory.CreateFighter(fs.ecs, 0)
	second := factory.CreateFighter(fs.ecs, 1)
	if fs.botOpponent {
		donburi.Add(second, components.Bot, &components.BotData{})
	}

	systems.Register(fs.ecs)

	fs.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	fs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
}
