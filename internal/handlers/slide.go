package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
)

type SlideHandler struct {
	log          *logger.Logger
	slideService services.SlideService
}

func NewSlideHandler(log *logger.Logger, slideService services.SlideService) *SlideHandler {
	return &SlideHandler{
		log:          log.With("handler", "SlideHandler"),
		slideService: slideService,
	}
}

func (h *SlideHandler) Create(c *gin.Context) {
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
	var input services.SlideCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	slide, err := h.slideService.Create(c.Request.Context(), userID, projectID, input)
	if err != nil {
		h.log.Error("Create slide failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "create_slide_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slide": slide})
}

func (h *SlideHandler) Get(c *gin.Context) {
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
	slide, err := h.slideService.Get(c.Request.Context(), userID, slideID)
	if err != nil {
		RespondServiceError(c, "load_slide_failed", err)
		return
	}
	RespondOK(c, gin.H{"slide": slide})
}

func (h *SlideHandler) ListForProject(c *gin.Context) {
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
	slides, err := h.slideService.ListForProject(c.Request.Context(), userID, projectID)
	if err != nil {
		RespondServiceError(c, "load_slides_failed", err)
		return
	}
	RespondOK(c, gin.H{"slides": slides})
}

func (h *SlideHandler) Update(c *gin.Context) {
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
	var input services.SlideUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	slide, err := h.slideService.Update(c.Request.Context(), userID, slideID, input)
	if err != nil {
		RespondServiceError(c, "update_slide_failed", err)
		return
	}
	RespondOK(c, gin.H{"slide": slide})
}

func (h *SlideHandler) Delete(c *gin.Context) {
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
	if err := h.slideService.Delete(c.Request.Context(), userID, slideID); err != nil {
		RespondServiceError(c, "delete_slide_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
