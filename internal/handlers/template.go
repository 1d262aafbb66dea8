package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type TemplateHandler struct {
	log             *logger.Logger
	templateService services.TemplateService
}

func NewTemplateHandler(log *logger.Logger, templateService services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		log:             log.With("handler", "TemplateHandler"),
		templateService: templateService,
	}
}

func (h *TemplateHandler) Catalog(c *gin.Context) {
	RespondOK(c, gin.H{"templates": h.templateService.Catalog()})
}

func (h *TemplateHandler) Fields(c *gin.Context) {
	t := types.TemplateType(c.Param("templateType"))
	RespondOK(c, gin.H{
		"template_type": t,
		"known":         t.Known(),
		"fields":        h.templateService.Fields(t),
	})
}

type suggestBody struct {
	HeadMessage string `json:"head_message" binding:"required"`
	Purpose     string `json:"purpose"`
}

func (h *TemplateHandler) Suggest(c *gin.Context) {
	var body suggestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	suggestion := h.templateService.Suggest(c.Request.Context(), body.HeadMessage, body.Purpose)
	RespondOK(c, gin.H{"suggestion": suggestion})
}
