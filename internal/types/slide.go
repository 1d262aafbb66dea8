package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Slide struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Project      *Project       `gorm:"constraint:OnDelete:CASCADE;foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	OrderIndex   int            `gorm:"column:order_index;not null" json:"order"`
	HeadMessage  string         `gorm:"column:head_message" json:"head_message"`
	TemplateType TemplateType   `gorm:"column:template_type;default:message_only" json:"template_type"`
	Purpose      string         `gorm:"column:purpose;default:general" json:"purpose"`
	Content      datatypes.JSON `gorm:"column:content;type:jsonb" json:"content"`
	Notes        string         `gorm:"column:notes" json:"notes"`
	Status       SlideStatus    `gorm:"column:status;default:draft" json:"status"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Slide) TableName() string { return "slide" }

// ContentMap decodes the stored content JSON. A slide with no generated
// content yields an empty map.
func (s *Slide) ContentMap() map[string]any {
	if len(s.Content) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(s.Content, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// HasContent reports whether the slide carries any generated or edited
// content at all.
func (s *Slide) HasContent() bool {
	return len(s.ContentMap()) > 0
}

// SetContent encodes m into the stored content column.
func (s *Slide) SetContent(m map[string]any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	s.Content = datatypes.JSON(raw)
	return nil
}
