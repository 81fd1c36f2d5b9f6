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

func TestRatingRepositoryPairIsUnique(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")

	require.NoError(t, repo.Create(ctx, &models.Rating{FromUserID: a.ID, ToUserID: b.ID, Score: 5}))
	err := repo.Create(ctx, &models.Rating{FromUserID: a.ID, ToUserID: b.ID, Score: 3})
	require.True(t, appErr.IsCode(err, appErr.CodeConflict), err)

	// the reverse direction is a different rating
	require.NoError(t, repo.Create(ctx, &models.Rating{FromUserID: b.ID, ToUserID: a.ID, Score: 2}))

	ok, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRatingRepositoryRejectsOutOfRangeScore(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRatingRepository(db)
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")

	err := repo.Create(context.Background(), &models.Rating{FromUserID: a.ID, ToUserID: b.ID, Score: 6})
	require.Error(t, err)
}

func TestRatingRepositoryListsAndSummaries(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRatingRepository(db)
	ctx := context.Background()
	a := testutil.CreateUser(t, db, "alice")
	b := testutil.CreateUser(t, db, "bob")
	c := testutil.CreateUser(t, db, "carol")
	d := testutil.CreateUser(t, db, "dave")

	for _, r := range []models.Rating{
		{FromUserID: a.ID, ToUserID: d.ID, Score: 5},
		{FromUserID: b.ID, ToUserID: d.ID, Score: 4},
		{FromUserID: c.ID, ToUserID: d.ID, Score: 4},
		{FromUserID: d.ID, ToUserID: a.ID, Score: 3},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
	}

	received, total, err := repo.ListReceived(ctx, d.ID, pagination.New(1, 2))
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, received, 2)
	require.NotNil(t, received[0].FromUser)

	given, total, err := repo.ListGiven(ctx, d.ID, pagination.New(1, 10))
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, a.ID, given[0].ToUser.ID)

	sums, err := repo.Summaries(ctx, []uuid.UUID{a.ID, b.ID, d.ID})
	require.NoError(t, err)
	require.Equal(t, 4.3, sums[d.ID].Average())
	require.Equal(t, 3.0, sums[a.ID].Average())
	require.Equal(t, 0.0, sums[b.ID].Average())
}
