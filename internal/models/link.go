package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Link maps (Domain, Slug) to OriginalURL. Domain is empty for direct links.
// Clicks always equals len(ClickEvents); both change in the same transaction.
type Link struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	OriginalURL  string    `gorm:"type:text;not null" json:"original_url"`
	Slug         string    `gorm:"type:text;not null;uniqueIndex:idx_links_domain_slug,priority:2" json:"slug"`
	Domain       string    `gorm:"type:text;not null;default:'';uniqueIndex:idx_links_domain_slug,priority:1" json:"domain"`
	IsCustomSlug bool      `gorm:"not null;default:false" json:"is_custom_slug"`
	Clicks       int64     `gorm:"not null;default:0" json:"clicks"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ClickEvents []ClickEvent `gorm:"foreignKey:LinkID" json:"-"`
}

func (m *Link) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
