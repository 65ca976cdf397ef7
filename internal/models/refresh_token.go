package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken is the server-side record of an issued refresh JWT, keyed by its jti claim.
// A token is usable once: refreshing revokes it and issues a new pair.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	JTI       string    `gorm:"type:text;uniqueIndex;not null"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_refresh_tokens_user_revoked,priority:1;not null"`
	Revoked   bool      `gorm:"not null;default:false;index:idx_refresh_tokens_user_revoked,priority:2"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (m *RefreshToken) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

func (m *RefreshToken) Active(now time.Time, userID uuid.UUID) bool {
	return !m.Revoked && now.Before(m.ExpiresAt) && m.UserID == userID
}
