package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/testutil"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryDuplicateEmailConflicts(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Name: "A", Email: "a@example.com", PasswordHash: "x"}))
	err := repo.Create(ctx, &models.User{Name: "B", Email: "a@example.com", PasswordHash: "y"})
	require.True(t, appErr.IsCode(err, appErr.CodeConflict), err)

	var got models.User
	require.NoError(t, repo.GetByEmail(ctx, " A@example.com", &got))
	require.Equal(t, "A", got.Name)
	require.Equal(t, models.ProfilePublic, got.ProfileType)
}

func TestUserRepositoryReplaceAvailability(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "alice")

	_, err := repo.ReplaceAvailability(ctx, u.ID, []string{"Monday", "Tuesday"})
	require.NoError(t, err)
	days, err := repo.ReplaceAvailability(ctx, u.ID, []string{"Sunday"})
	require.NoError(t, err)
	require.Len(t, days, 1)

	var got models.User
	require.NoError(t, repo.GetProfile(ctx, u.ID, &got))
	require.Len(t, got.Availability, 1)
	require.Equal(t, "Sunday", got.Availability[0].Day)

	_, err = repo.ReplaceAvailability(ctx, u.ID, nil)
	require.NoError(t, err)
	require.NoError(t, repo.GetProfile(ctx, u.ID, &got))
	require.Empty(t, got.Availability)
}

func TestUserRepositorySearchPublic(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	skills := NewSkillRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "alice", testutil.Located("Berlin"))
	b := testutil.CreateUser(t, db, "bob", testutil.Located("Paris"))
	c := testutil.CreateUser(t, db, "carol", testutil.Private, testutil.Located("Berlin"))

	py, err := skills.Upsert(ctx, "Python")
	require.NoError(t, err)
	require.NoError(t, users.ReplaceSkills(ctx, a.ID, []models.Skill{*py}, nil))
	require.NoError(t, users.ReplaceSkills(ctx, b.ID, nil, []models.Skill{*py}))
	require.NoError(t, users.ReplaceSkills(ctx, c.ID, []models.Skill{*py}, nil))

	found, total, err := users.SearchPublic(ctx, UserFilter{Skill: "pyth"}, pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, found, 2)

	found, total, err = users.SearchPublic(ctx, UserFilter{Skill: "python", Location: "berlin"}, pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, a.ID, found[0].ID)
	require.Len(t, found[0].SkillsOffered, 1)

	_, total, err = users.SearchPublic(ctx, UserFilter{}, pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
}

func TestUserRepositoryReplaceSkillsClears(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	skills := NewSkillRepository(db)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "alice")

	set, err := skills.UpsertMany(ctx, []string{"Go", "SQL"})
	require.NoError(t, err)
	require.NoError(t, users.ReplaceSkills(ctx, u.ID, set, set[:1]))
	require.NoError(t, users.ReplaceSkills(ctx, u.ID, set[1:], nil))

	var got models.User
	require.NoError(t, users.GetProfile(ctx, u.ID, &got))
	require.Len(t, got.SkillsOffered, 1)
	require.Equal(t, "SQL", got.SkillsOffered[0].Name)
	require.Empty(t, got.SkillsWanted)
}

func TestUserRepositoryActivityAndAdminList(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	swaps := NewSwapRepository(db)
	ratings := NewRatingRepository(db)
	ctx := context.Background()

	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	require.NoError(t, swaps.Create(ctx, newSwap(a.ID, b.ID)))
	require.NoError(t, ratings.Create(ctx, &models.Rating{FromUserID: a.ID, ToUserID: b.ID, Score: 4}))

	counts, err := users.Activity(ctx, []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	require.Equal(t, ActivityCounts{SwapsSent: 1}, counts[a.ID])
	require.Equal(t, ActivityCounts{SwapsReceived: 1, RatingsReceived: 1}, counts[b.ID])

	listed, total, err := users.ListForAdmin(ctx, "BOB", pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, b.ID, listed[0].ID)

	require.NoError(t, users.UpdateFields(ctx, a.ID, map[string]any{"name": "Alicia"}))
	var got models.User
	require.NoError(t, users.GetByID(ctx, a.ID, &got))
	require.Equal(t, "Alicia", got.Name)

	err = users.UpdateFields(ctx, uuid.New(), map[string]any{"name": "ghost"})
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound), err)
}
