package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkhop/internal/models"
	"linkhop/internal/repository"
	"linkhop/internal/storage/storagetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTokenCleanupJob(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRefreshTokenRepository(storagetest.NewDB(t))
	live := &models.RefreshToken{JTI: uuid.NewString(), UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, &models.RefreshToken{JTI: uuid.NewString(), UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Hour)}))

	s := NewScheduler(zap.NewNop(), TokenCleanupJob(repo))
	require.NoError(t, s.RunNow(ctx, TokenCleanup))

	_, err := repo.FindByJTI(ctx, live.JTI)
	assert.NoError(t, err)
	n, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestScheduler_RunNow(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	var got time.Time
	fixed := time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)

	s := NewScheduler(zap.NewNop(),
		Job{Name: "ok", Spec: "0 * * * *", Run: func(_ context.Context, now time.Time) (int64, error) {
			got = now
			return 1, nil
		}},
		Job{Name: "fail", Spec: "0 * * * *", Run: func(context.Context, time.Time) (int64, error) { return 0, boom }},
	)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.RunNow(ctx, "ok"))
	assert.Equal(t, fixed, got)
	assert.ErrorIs(t, s.RunNow(ctx, "fail"), boom)
	assert.Error(t, s.RunNow(ctx, "missing"))
}

func TestScheduler_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewScheduler(zap.NewNop(), TokenCleanupJob(repository.NewRefreshTokenRepository(storagetest.NewDB(t))))
	require.NoError(t, s.Start(ctx))
	assert.Len(t, s.c.Entries(), 1)

	bad := NewScheduler(zap.NewNop(), Job{Name: "bad", Spec: "not a spec", Run: func(context.Context, time.Time) (int64, error) { return 0, nil }})
	assert.Error(t, bad.Start(ctx))
}
