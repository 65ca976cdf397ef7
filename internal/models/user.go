package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPremium:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;unique;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Plan         Plan      `gorm:"type:text;not null;default:'free'" json:"plan"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	Domains []Domain `gorm:"foreignKey:UserID" json:"-"`
}

func (m *User) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// DomainNames returns the user's domains in the order they were registered.
func (m *User) DomainNames() []string {
	names := make([]string, 0, len(m.Domains))
	for _, d := range m.Domains {
		names = append(names, d.Name)
	}
	return names
}

func (m *User) OwnsDomain(name string) bool {
	for _, d := range m.Domains {
		if d.Name == name {
			return true
		}
	}
	return false
}
