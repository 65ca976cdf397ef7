package service

import (
	"context"
	"testing"

	"linkhop/internal/models"
	"linkhop/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "secret1"

// createUser stores a user owning domains (at least one) and reloads it with them.
func createUser(t *testing.T, db *gorm.DB, plan models.Plan, domains ...string) *models.User {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewUserRepository(db)

	if len(domains) == 0 {
		domains = []string{"d" + uuid.NewString()[:8]}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: string(hash),
		Plan:         plan,
	}
	require.NoError(t, repo.CreateWithDomain(ctx, user, domains[0]))
	for _, d := range domains[1:] {
		_, err := repo.AddDomain(ctx, user.ID, d)
		require.NoError(t, err)
	}

	loaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	return loaded
}

// seedLinks inserts n generated links for user directly through the repository.
func seedLinks(t *testing.T, db *gorm.DB, user *models.User, n int) {
	t.Helper()
	repo := repository.NewLinkRepository(db)
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(context.Background(), &models.Link{
			UserID:      user.ID,
			OriginalURL: "https://example.com",
			Slug:        uuid.NewString()[:12],
		}))
	}
}
