package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ProjectHandler:  handlerset.Project,
		SlideHandler:    handlerset.Slide,
		ContentHandler:  handlerset.Content,
		DeckHandler:     handlerset.Deck,
		TemplateHandler: handlerset.Template,
	})
}
