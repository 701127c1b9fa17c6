package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/janvanwassenhove/fighter-game/components"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowHitboxes bool `json:"showHitboxes"`
	BotOpponent  bool `json:"botOpponent"`
}

// SavedRecord tracks lifetime match results across sessions
type SavedRecord struct {
	MatchesPlayed int    `json:"matchesPlayed"`
	Wins          [2]int `json:"wins"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fighter-game",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the live settings component
func SaveCurrentSettings(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	_ = SaveSettings(&SavedSettings{
		ShowHitboxes: s.ShowHitboxes,
		BotOpponent:  s.BotOpponent,
	})
}

// ApplySavedSettings applies loaded settings to the settings component
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s := GetOrCreateSettings(e)
	s.ShowHitboxes = saved.ShowHitboxes
	s.BotOpponent = saved.BotOpponent
}

// LoadRecord loads the lifetime match record from disk
func LoadRecord() (*SavedRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("record")
	if err != nil {
		log.Printf("Warning: Could not load match record: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Warning: Could not parse match record: %v", err)
		return nil, err
	}

	return &record, nil
}

// RecordMatchResult adds one finished match to the lifetime record
func RecordMatchResult(match *components.MatchData) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}
	if match.WinnerIndex < 0 || match.WinnerIndex > 1 {
		return nil
	}

	record, _ := LoadRecord()
	if record == nil {
		record = &SavedRecord{}
	}
	record.MatchesPlayed++
	record.Wins[match.WinnerIndex]++

	data, err := json.Marshal(record)
	if err != nil {
		log.Printf("Warning: Could not serialize match record: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("record", data); err != nil {
		log.Printf("Warning: Could not save match record: %v", err)
		return err
	}
	return nil
}
