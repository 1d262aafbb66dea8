package types

import (
	"time"

	"github.com/google/uuid"
)

// GenerationLog records one text-backend call for debugging and analysis.
type GenerationLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	SlideID   *uuid.UUID `gorm:"type:uuid;index" json:"slide_id,omitempty"`
	Provider  string     `gorm:"column:provider" json:"provider"`
	Prompt    string     `gorm:"column:prompt;type:text" json:"prompt"`
	Response  string     `gorm:"column:response;type:text" json:"response"`
	LatencyMS int        `gorm:"column:latency_ms" json:"latency_ms"`
	Failed    bool       `gorm:"column:failed;default:false" json:"failed"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (GenerationLog) TableName() string { return "generation_log" }
