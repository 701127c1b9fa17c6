package components

import "github.com/yohamta/donburi"

// SettingsData holds user settings. Persisted across runs (unlike any
// game state, which never is).
type SettingsData struct {
	ShowHitboxes bool
	BotOpponent  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
