package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/handlers"
)

type RouterConfig struct {
	ProjectHandler  *handlers.ProjectHandler
	SlideHandler    *handlers.SlideHandler
	ContentHandler  *handlers.ContentHandler
	DeckHandler     *handlers.DeckHandler
	TemplateHandler *handlers.TemplateHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Projects
		api.POST("/projects", cfg.ProjectHandler.Create)
		api.GET("/projects", cfg.ProjectHandler.List)
		api.GET("/projects/:projectID", cfg.ProjectHandler.Get)
		api.PATCH("/projects/:projectID", cfg.ProjectHandler.Update)
		api.DELETE("/projects/:projectID", cfg.ProjectHandler.Delete)

		// Slides
		api.POST("/projects/:projectID/slides", cfg.SlideHandler.Create)
		api.GET("/projects/:projectID/slides", cfg.SlideHandler.ListForProject)
		api.GET("/slides/:slideID", cfg.SlideHandler.Get)
		api.PATCH("/slides/:slideID", cfg.SlideHandler.Update)
		api.DELETE("/slides/:slideID", cfg.SlideHandler.Delete)

		// Content pipeline
		api.POST("/slides/:slideID/classify", cfg.ContentHandler.Classify)
		api.POST("/slides/:slideID/generate", cfg.ContentHandler.Generate)
		api.POST("/projects/:projectID/generate", cfg.ContentHandler.GenerateBatch)
		api.PATCH("/slides/:slideID/content", cfg.ContentHandler.Update)
		api.GET("/slides/:slideID/content", cfg.ContentHandler.Get)

		// Deck
		api.POST("/projects/:projectID/deck", cfg.DeckHandler.Generate)
		api.GET("/projects/:projectID/deck/preview", cfg.DeckHandler.Preview)
		api.GET("/slides/:slideID/image", cfg.DeckHandler.SlideImage)

		// Templates
		api.GET("/templates", cfg.TemplateHandler.Catalog)
		api.GET("/templates/:templateType/fields", cfg.TemplateHandler.Fields)
		api.POST("/templates/suggest", cfg.TemplateHandler.Suggest)
	}

	return router
}
