package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
)

type DeckHandler struct {
	log         *logger.Logger
	deckService services.DeckService
}

func NewDeckHandler(log *logger.Logger, deckService services.DeckService) *DeckHandler {
	return &DeckHandler{
		log:         log.With("handler", "DeckHandler"),
		deckService: deckService,
	}
}

// Generate streams the assembled presentation as a download.
func (h *DeckHandler) Generate(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	projectID, ok := pathUUID(c, "projectID")
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", nil)
		return
	}
	includeEmpty := c.Query("include_empty") == "true"

	artifact, err := h.deckService.GenerateDeck(c.Request.Context(), userID, projectID, includeEmpty)
	if err != nil {
		h.log.Error("Generate deck failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "generate_deck_failed", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.MIMEType, artifact.Data)
}

func (h *DeckHandler) Preview(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	projectID, ok := pathUUID(c, "projectID")
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_project_id", nil)
		return
	}
	preview, err := h.deckService.PreviewInfo(c.Request.Context(), userID, projectID)
	if err != nil {
		RespondServiceError(c, "load_preview_failed", err)
		return
	}
	RespondOK(c, preview)
}

func (h *DeckHandler) SlideImage(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	slideID, ok := pathUUID(c, "slideID")
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_slide_id", nil)
		return
	}
	png, err := h.deckService.RenderSlidePNG(c.Request.Context(), userID, slideID)
	if err != nil {
		RespondServiceError(c, "render_slide_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
