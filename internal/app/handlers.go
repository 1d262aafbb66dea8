package app

import (
	"github.com/yungbote/deckforge-backend/internal/handlers"
	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
)

type Handlers struct {
	Project  *handlers.ProjectHandler
	Slide    *handlers.SlideHandler
	Content  *handlers.ContentHandler
	Deck     *handlers.DeckHandler
	Template *handlers.TemplateHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Project:  handlers.NewProjectHandler(log, serviceset.Project),
		Slide:    handlers.NewSlideHandler(log, serviceset.Slide),
		Content:  handlers.NewContentHandler(log, serviceset.Content),
		Deck:     handlers.NewDeckHandler(log, serviceset.Deck),
		Template: handlers.NewTemplateHandler(log, serviceset.Template),
	}
}
