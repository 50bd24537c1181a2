package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDMixin gives an entity a generated UUID primary key.
type UUIDMixin struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id" example:"3d825f60-9fff-4dfe-b294-1a45fa1e115d"`
}

func (m *UUIDMixin) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type TimeStampedMixin struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
