package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
	"github.com/yungbote/deckforge-backend/internal/types"
)

// ProjectCreateInput carries the caller-supplied project fields.
type ProjectCreateInput struct {
	Title          string `json:"title" binding:"required"`
	Topic          string `json:"topic"`
	TargetAudience string `json:"target_audience"`
	Goal           string `json:"goal"`
	NarrativeStyle string `json:"narrative_style"`
}

type ProjectUpdateInput struct {
	Title          *string `json:"title"`
	Topic          *string `json:"topic"`
	TargetAudience *string `json:"target_audience"`
	Goal           *string `json:"goal"`
	NarrativeStyle *string `json:"narrative_style"`
}

type ProjectService interface {
	Create(ctx context.Context, userID uuid.UUID, input ProjectCreateInput) (*types.Project, error)
	Get(ctx context.Context, userID, projectID uuid.UUID) (*types.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Project, error)
	Update(ctx context.Context, userID, projectID uuid.UUID, input ProjectUpdateInput) (*types.Project, error)
	Delete(ctx context.Context, userID, projectID uuid.UUID) error
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	return &projectService{
		db:          db,
		log:         log.With("service", "ProjectService"),
		projectRepo: projectRepo,
	}
}

func (ps *projectService) Create(ctx context.Context, userID uuid.UUID, input ProjectCreateInput) (*types.Project, error) {
	style := input.NarrativeStyle
	if style == "" {
		style = "consulting"
	}
	project := &types.Project{
		UserID:         userID,
		Title:          input.Title,
		Topic:          input.Topic,
		TargetAudience: input.TargetAudience,
		Goal:           input.Goal,
		NarrativeStyle: style,
	}
	return ps.projectRepo.Create(ctx, nil, project)
}

func (ps *projectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*types.Project, error) {
	project, err := ps.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrForbidden
	}
	return project, nil
}

func (ps *projectService) List(ctx context.Context, userID uuid.UUID) ([]*types.Project, error) {
	return ps.projectRepo.GetForUser(ctx, nil, userID)
}

func (ps *projectService) Update(ctx context.Context, userID, projectID uuid.UUID, input ProjectUpdateInput) (*types.Project, error) {
	project, err := ps.Get(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Topic != nil {
		project.Topic = *input.Topic
	}
	if input.TargetAudience != nil {
		project.TargetAudience = *input.TargetAudience
	}
	if input.Goal != nil {
		project.Goal = *input.Goal
	}
	if input.NarrativeStyle != nil {
		project.NarrativeStyle = *input.NarrativeStyle
	}
	if err := ps.projectRepo.Update(ctx, nil, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (ps *projectService) Delete(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := ps.Get(ctx, userID, projectID); err != nil {
		return err
	}
	return ps.projectRepo.Delete(ctx, nil, projectID)
}
