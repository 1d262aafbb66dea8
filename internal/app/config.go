package app

import (
	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/utils"
)

type Config struct {
	Port        string
	StorageMode string
	ThemePath   string
}

// StorageMode "postgres" uses gorm-backed repos; "memory" runs the whole
// pipeline against the in-process stores, useful for local development
// without a database.
func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:        utils.GetEnv("PORT", "8080", log),
		StorageMode: utils.GetEnv("STORAGE_MODE", "postgres", log),
		ThemePath:   utils.GetEnv("DECK_THEME_PATH", "", log),
	}
}
