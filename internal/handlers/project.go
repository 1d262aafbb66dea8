package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/services"
)

type ProjectHandler struct {
	log            *logger.Logger
	projectService services.ProjectService
}

func NewProjectHandler(log *logger.Logger, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		log:            log.With("handler", "ProjectHandler"),
		projectService: projectService,
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var input services.ProjectCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	project, err := h.projectService.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.log.Error("Create project failed", "error", err, "user_id", userID)
		RespondServiceError(c, "create_project_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectHandler) Get(c *gin.Context) {
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
	project, err := h.projectService.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		RespondServiceError(c, "load_project_failed", err)
		return
	}
	RespondOK(c, gin.H{"project": project})
}

func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	projects, err := h.projectService.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("List projects failed", "error", err, "user_id", userID)
		RespondServiceError(c, "load_projects_failed", err)
		return
	}
	RespondOK(c, gin.H{"projects": projects})
}

func (h *ProjectHandler) Update(c *gin.Context) {
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
	var input services.ProjectUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	project, err := h.projectService.Update(c.Request.Context(), userID, projectID, input)
	if err != nil {
		RespondServiceError(c, "update_project_failed", err)
		return
	}
	RespondOK(c, gin.H{"project": project})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
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
	if err := h.projectService.Delete(c.Request.Context(), userID, projectID); err != nil {
		RespondServiceError(c, "delete_project_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
