package repository

import (
	"context"
	"time"

	"linkhop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(ctx context.Context, rt *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RefreshTokenRepository) FindByJTI(ctx context.Context, jti string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&rt).Error; err != nil {
		return nil, translate(err)
	}
	return &rt, nil
}

// RevokeByJTI reports whether a live token was revoked, so a concurrent refresh with the same
// token loses the race.
func (r *RefreshTokenRepository) RevokeByJTI(ctx context.Context, jti string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.RefreshToken{}).Where("jti = ? AND revoked = ?", jti, false).Update("revoked", true)
	return res.RowsAffected > 0, res.Error
}

func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.RefreshToken{}).Where("user_id = ? AND revoked = ?", userID, false).Update("revoked", true).Error
}

// DeleteExpired removes expired or revoked tokens and returns the number of deleted rows.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ? OR revoked = ?", now, true).Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
