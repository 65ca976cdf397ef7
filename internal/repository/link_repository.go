package repository

import (
	"context"
	"errors"
	"linkhop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{
		db: db,
	}
}

// Create inserts link relying on the (domain, slug) unique index; a collision returns ErrDuplicate.
func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	return translate(r.db.WithContext(ctx).Create(link).Error)
}

func (r *LinkRepository) Exists(ctx context.Context, domain, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Link{}).
		Where("domain = ? AND slug = ?", domain, slug).
		Count(&count).Error
	return count > 0, err
}

func (r *LinkRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Link{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListByUser returns the user's links, newest first, without click events.
func (r *LinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// ListByUserWithEvents loads every link of the user in creation order together with its full click log.
func (r *LinkRepository) ListByUserWithEvents(ctx context.Context, userID uuid.UUID) ([]models.Link, error) {
	var links []models.Link
	err := r.db.WithContext(ctx).
		Preload("ClickEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&links).Error
	return links, err
}

func (r *LinkRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

func (r *LinkRepository) GetBySlug(ctx context.Context, domain, slug string) (*models.Link, error) {
	var link models.Link
	if err := r.db.WithContext(ctx).Where("domain = ? AND slug = ?", domain, slug).First(&link).Error; err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

// RecordClick increments the click counter of the (domain, slug) link and appends event to its log
// in one transaction. The UPDATE row-locks the link, so concurrent clicks serialize on it.
// Returns ErrNotFound when no link matches.
func (r *LinkRepository) RecordClick(ctx context.Context, domain, slug string, event *models.ClickEvent) (*models.Link, error) {
	var link models.Link
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Link{}).
			Where("domain = ? AND slug = ?", domain, slug).
			UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("domain = ? AND slug = ?", domain, slug).First(&link).Error; err != nil {
			return err
		}

		event.LinkID = link.ID
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

// DeleteForUser removes the link and its click log. It reports false when the link does not
// exist or belongs to someone else.
func (r *LinkRepository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var link models.Link
		if err := tx.Select("id").Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
			return err
		}
		if err := tx.Where("link_id = ?", link.ID).Delete(&models.ClickEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Link{}, "id = ?", link.ID).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RetagDomain moves all of the user's links from oldDomain to newDomain.
func (r *LinkRepository) RetagDomain(ctx context.Context, userID uuid.UUID, oldDomain, newDomain string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Link{}).
		Where("user_id = ? AND domain = ?", userID, oldDomain).
		Update("domain", newDomain)
	return res.RowsAffected, translate(res.Error)
}

func (r *LinkRepository) CountEvents(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClickEvent{}).
		Where("link_id = ?", linkID).
		Count(&count).Error
	return count, err
}
