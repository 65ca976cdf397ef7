package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
)

// ClickEvent is one entry of a link's append-only click log.
type ClickEvent struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LinkID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Timestamp time.Time `gorm:"index;not null"`
	Device    Device    `gorm:"type:text;not null;default:'desktop'"`
	Referrer  string    `gorm:"type:text;not null;default:''"`
	IP        string    `gorm:"type:text;not null;default:'unknown'"`
	UserAgent string    `gorm:"type:text;not null;default:''"`
	Country   string    `gorm:"type:text;not null;default:''"`
}

func (m *ClickEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
