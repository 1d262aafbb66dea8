package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type SlideRepo interface {
	Create(ctx context.Context, tx *gorm.DB, slide *types.Slide) (*types.Slide, error)
	GetByID(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) (*types.Slide, error)
	GetForProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Slide, error)
	Update(ctx context.Context, tx *gorm.DB, slide *types.Slide) error
	UpdateContent(ctx context.Context, tx *gorm.DB, slideID uuid.UUID, content map[string]any, status types.SlideStatus) error
	Delete(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) error
}

type slideRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSlideRepo(db *gorm.DB, baseLog *logger.Logger) SlideRepo {
	return &slideRepo{db: db, log: baseLog.With("repo", "SlideRepo")}
}

func (sr *slideRepo) Create(ctx context.Context, tx *gorm.DB, slide *types.Slide) (*types.Slide, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(slide).Error; err != nil {
		return nil, err
	}
	return slide, nil
}

func (sr *slideRepo) GetByID(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) (*types.Slide, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Slide
	if err := transaction.WithContext(ctx).
		Where("id = ?", slideID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (sr *slideRepo) GetForProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Slide, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Slide
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("order_index ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *slideRepo) Update(ctx context.Context, tx *gorm.DB, slide *types.Slide) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(slide).Error
}

func (sr *slideRepo) UpdateContent(ctx context.Context, tx *gorm.DB, slideID uuid.UUID, content map[string]any, status types.SlideStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var slide types.Slide
	if err := transaction.WithContext(ctx).
		Where("id = ?", slideID).
		First(&slide).Error; err != nil {
		return err
	}
	if err := slide.SetContent(content); err != nil {
		return err
	}
	slide.Status = status
	return transaction.WithContext(ctx).Save(&slide).Error
}

func (sr *slideRepo) Delete(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", slideID).
		Delete(&types.Slide{}).Error
}
