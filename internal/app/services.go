package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
)

type Services struct {
	Project  services.ProjectService
	Slide    services.SlideService
	Content  services.ContentService
	Deck     services.DeckService
	Template services.TemplateService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	openaiClient, err := services.NewOpenAIClient(log)
	if err != nil {
		return Services{}, err
	}

	deckService, err := services.NewDeckService(db, log, reposet.Project, reposet.Slide)
	if err != nil {
		return Services{}, err
	}

	return Services{
		Project:  services.NewProjectService(db, log, reposet.Project),
		Slide:    services.NewSlideService(db, log, reposet.Project, reposet.Slide),
		Content:  services.NewContentService(db, log, reposet.Project, reposet.Slide, reposet.GenerationLog, openaiClient),
		Deck:     deckService,
		Template: services.NewTemplateService(log, openaiClient),
	}, nil
}
