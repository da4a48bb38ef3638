package postgres_test

import (
	"context"
	"testing"

	"clinic-api/internal/domain"
	"clinic-api/internal/repository/postgres"
	"clinic-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_Create(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Username: "alice", PasswordHash: "hash-a"}
	second := &domain.User{Username: "bob", PasswordHash: "hash-b"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID, "ids are assigned monotonically")
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "taken", PasswordHash: "h1"}))

	err := repo.Create(ctx, &domain.User{Username: "taken", PasswordHash: "h2"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey,
		"the unique index enforces username uniqueness")
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	created, _ := testutil.NewUserBuilder().
		WithUsername("findme").
		WithFullName("Find Me").
		Build(t, db)

	user, err := repo.GetByUsername(ctx, "findme")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "Find Me", user.FullName)

	_, err = repo.GetByUsername(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(db)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, db)

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", updated.PasswordHash)
}
