package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title          string         `gorm:"column:title;not null" json:"title"`
	Topic          string         `gorm:"column:topic" json:"topic"`
	TargetAudience string         `gorm:"column:target_audience" json:"target_audience"`
	Goal           string         `gorm:"column:goal" json:"goal"`
	NarrativeStyle string         `gorm:"column:narrative_style;default:consulting" json:"narrative_style"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Project) TableName() string { return "project" }

// Context returns the key/value pairs the generation prompts embed.
func (p *Project) Context() map[string]string {
	return map[string]string{
		"topic":           p.Topic,
		"target_audience": p.TargetAudience,
		"goal":            p.Goal,
		"title":           p.Title,
	}
}
