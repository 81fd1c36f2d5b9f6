package main

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/internal/testutil"
	"github.com/mogith007/skillswap/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, runMigrations(db))
	require.NoError(t, runMigrations(db))
	require.True(t, db.Migrator().HasIndex("users", "idx_users_location_lower"))
}

func TestSeedAdminOnce(t *testing.T) {
	db := testutil.NewDB(t)
	admins := repository.NewAdminRepository(db)
	hasher := auth.NewHasher(bcrypt.MinCost)
	ctx := context.Background()

	created, err := seedAdmin(ctx, admins, hasher, "", "")
	require.NoError(t, err)
	require.False(t, created)

	created, err = seedAdmin(ctx, admins, hasher, "Root@SkillSwap.app", "admin-password")
	require.NoError(t, err)
	require.True(t, created)

	created, err = seedAdmin(ctx, admins, hasher, "root@skillswap.app", "other-password")
	require.NoError(t, err)
	require.False(t, created)

	var a models.Admin
	require.NoError(t, admins.GetByEmail(ctx, "root@skillswap.app", &a))
	require.True(t, hasher.Verify("admin-password", a.PasswordHash))
}
