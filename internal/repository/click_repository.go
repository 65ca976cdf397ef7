package repository

import (
	"context"

	"linkhop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClickRepository runs read-only aggregate queries over the click log.
type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{
		db: db,
	}
}

type GroupCount struct {
	Label string
	Total int64
}

func (r *ClickRepository) Count(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClickEvent{}).
		Where("link_id = ?", linkID).
		Count(&count).Error
	return count, err
}

// UniqueIPCount ignores events without a known address.
func (r *ClickRepository) UniqueIPCount(ctx context.Context, linkID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClickEvent{}).
		Where("link_id = ? AND ip <> ?", linkID, "unknown").
		Distinct("ip").
		Count(&count).Error
	return count, err
}

// CountBy groups the link's events by column, largest groups first.
func (r *ClickRepository) CountBy(ctx context.Context, linkID uuid.UUID, column string) ([]GroupCount, error) {
	var out []GroupCount
	err := r.db.WithContext(ctx).Model(&models.ClickEvent{}).
		Select(column+" AS label, COUNT(*) AS total").
		Where("link_id = ?", linkID).
		Group(column).
		Order("total DESC, label ASC").
		Scan(&out).Error
	return out, err
}

// Recent returns up to limit of the newest events.
func (r *ClickRepository) Recent(ctx context.Context, linkID uuid.UUID, limit int) ([]models.ClickEvent, error) {
	var events []models.ClickEvent
	err := r.db.WithContext(ctx).
		Where("link_id = ?", linkID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
