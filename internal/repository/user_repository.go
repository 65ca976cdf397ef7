package repository

import (
	"context"
	"linkhop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func preloadDomains(db *gorm.DB) *gorm.DB {
	return db.Preload("Domains", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := preloadDomains(r.db.WithContext(ctx)).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := preloadDomains(r.db.WithContext(ctx)).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateWithDomain inserts the user and its first domain atomically. A taken email or
// domain name returns ErrDuplicate and nothing is written.
func (r *UserRepository) CreateWithDomain(ctx context.Context, user *models.User, domain string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		d := models.Domain{UserID: user.ID, Name: domain}
		if err := tx.Create(&d).Error; err != nil {
			return err
		}
		user.Domains = []models.Domain{d}
		return nil
	})
	return translate(err)
}

func (r *UserRepository) DomainExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Domain{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) AddDomain(ctx context.Context, userID uuid.UUID, name string) (*models.Domain, error) {
	d := &models.Domain{UserID: userID, Name: name}
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// RenameDomain renames one of the user's domains. ErrNotFound if the user does not own oldName,
// ErrDuplicate if newName is taken.
func (r *UserRepository) RenameDomain(ctx context.Context, userID uuid.UUID, oldName, newName string) error {
	res := r.db.WithContext(ctx).Model(&models.Domain{}).
		Where("user_id = ? AND name = ?", userID, oldName).
		Update("name", newName)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("password_hash", hash).Error
}

func (r *UserRepository) UpdatePlan(ctx context.Context, userID uuid.UUID, plan models.Plan) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Update("plan", plan).Error
}
