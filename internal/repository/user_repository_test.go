package repository

import (
	"context"
	"testing"

	"linkhop/internal/models"
	"linkhop/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithDomain(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storagetest.NewDB(t))

	user := &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateWithDomain(ctx, user, "ann"))

	got, err := repo.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.PlanFree, got.Plan)
	assert.Equal(t, []string{"ann"}, got.DomainNames())

	// same email
	err = repo.CreateWithDomain(ctx, &models.User{Name: "A2", Email: "ann@example.com", PasswordHash: "x"}, "other")
	assert.ErrorIs(t, err, ErrDuplicate)

	// same domain: the user row must be rolled back too
	err = repo.CreateWithDomain(ctx, &models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "x"}, "ann")
	assert.ErrorIs(t, err, ErrDuplicate)
	_, err = repo.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_Domains(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storagetest.NewDB(t))

	user := &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"}
	require.NoError(t, repo.CreateWithDomain(ctx, user, "first"))
	_, err := repo.AddDomain(ctx, user.ID, "second")
	require.NoError(t, err)

	_, err = repo.AddDomain(ctx, user.ID, "first")
	assert.ErrorIs(t, err, ErrDuplicate)

	ok, err := repo.DomainExists(ctx, "second")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.RenameDomain(ctx, user.ID, "first", "renamed"))
	assert.ErrorIs(t, repo.RenameDomain(ctx, user.ID, "missing", "x"), ErrNotFound)
	assert.ErrorIs(t, repo.RenameDomain(ctx, user.ID, "renamed", "second"), ErrDuplicate)

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"renamed", "second"}, got.DomainNames())
	assert.True(t, got.OwnsDomain("renamed"))
	assert.False(t, got.OwnsDomain("first"))
}

func TestUserRepository_UpdatePlanAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storagetest.NewDB(t))

	user := &models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "old"}
	require.NoError(t, repo.CreateWithDomain(ctx, user, "ann"))

	require.NoError(t, repo.UpdatePlan(ctx, user.ID, models.PlanPremium))
	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new"))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PlanPremium, got.Plan)
	assert.Equal(t, "new", got.PasswordHash)
}
