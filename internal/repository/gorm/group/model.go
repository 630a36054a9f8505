package groupgorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupModel is the GORM persistence model for recipient groups.
// It maps directly to the "recipient_groups" table in Postgres.
type GroupModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:64;not null;uniqueIndex"`
	Recipients string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

// TableName overrides the default table name used by GORM.
func (GroupModel) TableName() string {
	return "recipient_groups"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
