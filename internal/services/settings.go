package services

import (
	"sync"
	"time"

	"gymdesk-backend/config"
	"gymdesk-backend/internal/renewal"
)

// Settings are the gym-wide values the services read at request time.
type Settings struct {
	GymName             string
	ExpiryThresholdDays int
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{GymName: "Dream Fitness", ExpiryThresholdDays: renewal.DefaultThresholdDays}
)

// Now is the service clock. Tests replace it to pin "today".
var Now = time.Now

func Configure(cfg *config.Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = Settings{GymName: cfg.GymName, ExpiryThresholdDays: cfg.ExpiryThresholdDays}
}

func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}
