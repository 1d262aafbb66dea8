package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
)

type ContentHandler struct {
	log            *logger.Logger
	contentService services.ContentService
}

func NewContentHandler(log *logger.Logger, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		log:            log.With("handler", "ContentHandler"),
		contentService: contentService,
	}
}

func (h *ContentHandler) Classify(c *gin.Context) {
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
	classification, err := h.contentService.ClassifySlide(c.Request.Context(), userID, slideID)
	if err != nil {
		RespondServiceError(c, "classify_failed", err)
		return
	}
	RespondOK(c, gin.H{"classification": classification})
}

func (h *ContentHandler) Generate(c *gin.Context) {
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
	regenerate := c.Query("regenerate") == "true"
	slide, err := h.contentService.GenerateForSlide(c.Request.Context(), userID, slideID, regenerate)
	if err != nil {
		h.log.Error("Generate content failed", "error", err, "slide_id", slideID)
		RespondServiceError(c, "generate_failed", err)
		return
	}
	RespondOK(c, gin.H{"slide": slide})
}

func (h *ContentHandler) GenerateBatch(c *gin.Context) {
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
	regenerate := c.Query("regenerate") == "true"
	results, err := h.contentService.GenerateForProject(c.Request.Context(), userID, projectID, regenerate)
	if err != nil {
		h.log.Error("Batch generate failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "batch_generate_failed", err)
		return
	}
	RespondOK(c, gin.H{"results": results})
}

type contentUpdateBody struct {
	Updates         map[string]any `json:"updates" binding:"required"`
	ConfirmedFields []string       `json:"confirmed_fields"`
}

func (h *ContentHandler) Update(c *gin.Context) {
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
	var body contentUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	slide, err := h.contentService.UpdateContent(c.Request.Context(), userID, slideID, body.Updates, body.ConfirmedFields)
	if err != nil {
		RespondServiceError(c, "update_content_failed", err)
		return
	}
	RespondOK(c, gin.H{"slide": slide})
}

func (h *ContentHandler) Get(c *gin.Context) {
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
	info, err := h.contentService.GetContent(c.Request.Context(), userID, slideID)
	if err != nil {
		RespondServiceError(c, "load_content_failed", err)
		return
	}
	RespondOK(c, info)
}
