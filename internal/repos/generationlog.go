package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type GenerationLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, entry *types.GenerationLog) error
}

type generationLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGenerationLogRepo(db *gorm.DB, baseLog *logger.Logger) GenerationLogRepo {
	return &generationLogRepo{db: db, log: baseLog.With("repo", "GenerationLogRepo")}
}

func (gr *generationLogRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.GenerationLog) error {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}
	return transaction.WithContext(ctx).Create(entry).Error
}
