package repository

import (
	"context"
	"testing"

	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/testutil"
	"github.com/mogith007/skillswap/pkg/pagination"
	"github.com/stretchr/testify/require"
)

func TestSkillRepositoryUpsertIsCaseInsensitive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "Python")
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "  python ")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Python", second.Name)

	many, err := repo.UpsertMany(ctx, []string{"PYTHON", "Go", "go", ""})
	require.NoError(t, err)
	require.Len(t, many, 2)
	require.Equal(t, first.ID, many[0].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestSkillRepositorySearchAndPopular(t *testing.T) {
	db := testutil.NewDB(t)
	skills := NewSkillRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")

	goSkill, err := skills.Upsert(ctx, "Go")
	require.NoError(t, err)
	guitar, err := skills.Upsert(ctx, "Guitar")
	require.NoError(t, err)
	cooking, err := skills.Upsert(ctx, "Cooking")
	require.NoError(t, err)

	require.NoError(t, users.ReplaceSkills(ctx, a.ID, []models.Skill{*goSkill, *guitar}, []models.Skill{*cooking}))
	require.NoError(t, users.ReplaceSkills(ctx, b.ID, []models.Skill{*goSkill}, []models.Skill{*guitar}))

	found, total, err := skills.Search(ctx, "GU", pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Guitar", found[0].Name)
	require.EqualValues(t, 1, found[0].OfferedCount)
	require.EqualValues(t, 1, found[0].WantedCount)

	popular, err := skills.Popular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	require.Equal(t, "Go", popular[0].Name)
	require.EqualValues(t, 2, popular[0].OfferedCount)
	require.Equal(t, "Guitar", popular[1].Name)
}
