package maintenance

import (
	"context"
	"time"

	"linkhop/internal/repository"
)

const TokenCleanup = "refresh-token-cleanup"

// TokenCleanupJob deletes expired and revoked refresh tokens every night at 03:00.
func TokenCleanupJob(rtRepo *repository.RefreshTokenRepository) Job {
	return Job{
		Name: TokenCleanup,
		Spec: "0 3 * * *",
		Run: func(ctx context.Context, now time.Time) (int64, error) {
			return rtRepo.DeleteExpired(ctx, now)
		},
	}
}
