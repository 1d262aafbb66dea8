package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type SlideCreateInput struct {
	Order        int    `json:"order"`
	HeadMessage  string `json:"head_message" binding:"required"`
	TemplateType string `json:"template_type"`
	Purpose      string `json:"purpose"`
	Notes        string `json:"notes"`
}

type SlideUpdateInput struct {
	Order        *int    `json:"order"`
	HeadMessage  *string `json:"head_message"`
	TemplateType *string `json:"template_type"`
	Purpose      *string `json:"purpose"`
	Notes        *string `json:"notes"`
}

type SlideService interface {
	Create(ctx context.Context, userID, projectID uuid.UUID, input SlideCreateInput) (*types.Slide, error)
	Get(ctx context.Context, userID, slideID uuid.UUID) (*types.Slide, error)
	ListForProject(ctx context.Context, userID, projectID uuid.UUID) ([]*types.Slide, error)
	Update(ctx context.Context, userID, slideID uuid.UUID, input SlideUpdateInput) (*types.Slide, error)
	Delete(ctx context.Context, userID, slideID uuid.UUID) error
}

type slideService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	slideRepo   repos.SlideRepo
}

func NewSlideService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo, slideRepo repos.SlideRepo) SlideService {
	return &slideService{
		db:          db,
		log:         log.With("service", "SlideService"),
		projectRepo: projectRepo,
		slideRepo:   slideRepo,
	}
}

func (ss *slideService) Create(ctx context.Context, userID, projectID uuid.UUID, input SlideCreateInput) (*types.Slide, error) {
	if err := ss.checkProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	// Unknown template types are stored as message_only rather than
	// rejected, matching the degradation rule everywhere else.
	t := types.TemplateType(input.TemplateType)
	if !t.Known() {
		t = template.SuggestForPurpose(input.Purpose)
	}
	purpose := input.Purpose
	if purpose == "" {
		purpose = "general"
	}

	slide := &types.Slide{
		ProjectID:    projectID,
		OrderIndex:   input.Order,
		HeadMessage:  input.HeadMessage,
		TemplateType: t,
		Purpose:      purpose,
		Notes:        input.Notes,
		Status:       types.StatusDraft,
	}
	return ss.slideRepo.Create(ctx, nil, slide)
}

func (ss *slideService) Get(ctx context.Context, userID, slideID uuid.UUID) (*types.Slide, error) {
	slide, err := ss.slideRepo.GetByID(ctx, nil, slideID)
	if err != nil {
		return nil, err
	}
	if err := ss.checkProject(ctx, userID, slide.ProjectID); err != nil {
		return nil, err
	}
	return slide, nil
}

func (ss *slideService) ListForProject(ctx context.Context, userID, projectID uuid.UUID) ([]*types.Slide, error) {
	if err := ss.checkProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return ss.slideRepo.GetForProject(ctx, nil, projectID)
}

func (ss *slideService) Update(ctx context.Context, userID, slideID uuid.UUID, input SlideUpdateInput) (*types.Slide, error) {
	slide, err := ss.Get(ctx, userID, slideID)
	if err != nil {
		return nil, err
	}
	if input.Order != nil {
		slide.OrderIndex = *input.Order
	}
	if input.HeadMessage != nil {
		slide.HeadMessage = *input.HeadMessage
	}
	if input.TemplateType != nil {
		t := types.TemplateType(*input.TemplateType)
		if t.Known() {
			slide.TemplateType = t
		}
	}
	if input.Purpose != nil {
		slide.Purpose = *input.Purpose
	}
	if input.Notes != nil {
		slide.Notes = *input.Notes
	}
	if err := ss.slideRepo.Update(ctx, nil, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (ss *slideService) Delete(ctx context.Context, userID, slideID uuid.UUID) error {
	if _, err := ss.Get(ctx, userID, slideID); err != nil {
		return err
	}
	return ss.slideRepo.Delete(ctx, nil, slideID)
}

func (ss *slideService) checkProject(ctx context.Context, userID, projectID uuid.UUID) error {
	project, err := ss.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return err
	}
	if project.UserID != userID {
		return ErrForbidden
	}
	return nil
}
