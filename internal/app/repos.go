package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
)

type Repos struct {
	Project       repos.ProjectRepo
	Slide         repos.SlideRepo
	GenerationLog repos.GenerationLogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger, cfg Config) Repos {
	if cfg.StorageMode == "memory" || db == nil {
		log.Info("Wiring in-memory repos...")
		return Repos{
			Project:       repos.NewMemoryProjectRepo(),
			Slide:         repos.NewMemorySlideRepo(),
			GenerationLog: repos.NewMemoryGenerationLogRepo(),
		}
	}
	log.Info("Wiring postgres repos...")
	return Repos{
		Project:       repos.NewProjectRepo(db, log),
		Slide:         repos.NewSlideRepo(db, log),
		GenerationLog: repos.NewGenerationLogRepo(db, log),
	}
}
