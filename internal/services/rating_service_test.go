package services

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

// acceptSwap creates a swap from -> to and has the recipient accept it.
func acceptSwap(t *testing.T, svc SwapService, from, to uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	s, err := svc.Create(ctx, from, swapInput(to))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, to, s.ID, models.SwapAccepted)
	require.NoError(t, err)
}

func TestRatingRequiresAcceptedSwap(t *testing.T) {
	f := newFixture(t)
	swaps := f.swapService()
	svc := f.ratingService()
	ctx := context.Background()
	a := testutil.CreateUser(t, f.db, "alice")
	b := testutil.CreateUser(t, f.db, "bob")

	_, err := svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: a.ID, Score: 5})
	require.ErrorIs(t, err, ErrSelfRating)

	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: uuid.New(), Score: 5})
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 5})
	require.ErrorIs(t, err, ErrNoCompletedSwap)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	// a pending or rejected swap does not count
	s, err := swaps.Create(ctx, a.ID, swapInput(b.ID))
	require.NoError(t, err)
	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 5})
	require.ErrorIs(t, err, ErrNoCompletedSwap)
	_, err = swaps.UpdateStatus(ctx, b.ID, s.ID, models.SwapRejected)
	require.NoError(t, err)
	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 5})
	require.ErrorIs(t, err, ErrNoCompletedSwap)
}

func TestRatingEitherDirectionOfAcceptedSwapCounts(t *testing.T) {
	f := newFixture(t)
	svc := f.ratingService()
	ctx := context.Background()
	a := testutil.CreateUser(t, f.db, "alice")
	b := testutil.CreateUser(t, f.db, "bob")

	acceptSwap(t, f.swapService(), a.ID, b.ID)

	comment := "Patient and clear"
	r, err := svc.Create(ctx, b.ID, CreateRatingInput{ToUserID: a.ID, Score: 4, Comment: &comment})
	require.NoError(t, err)
	require.Equal(t, 4, r.Score)
	require.Equal(t, "bob", r.FromUser.Name)
	require.Equal(t, "alice", r.ToUser.Name)
}

// A sends B a swap, B accepts, A rates B 5, A rates B again.
func TestRatingScenarioDuplicateConflicts(t *testing.T) {
	f := newFixture(t)
	svc := f.ratingService()
	ctx := context.Background()
	a := testutil.CreateUser(t, f.db, "alice")
	b := testutil.CreateUser(t, f.db, "bob")

	acceptSwap(t, f.swapService(), a.ID, b.ID)

	_, err := svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 3})
	require.ErrorIs(t, err, ErrDuplicateRating)
	require.True(t, appErr.IsCode(err, appErr.CodeConflict))

	users := NewUserService(f.users, f.skills, f.ratings)
	profile, err := users.PublicProfile(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, 5.0, profile.AvgRating)
	require.Len(t, profile.RatingsReceived, 1)
}

func TestRatingAverageIsNeverStale(t *testing.T) {
	f := newFixture(t)
	swaps := f.swapService()
	svc := f.ratingService()
	users := NewUserService(f.users, f.skills, f.ratings)
	ctx := context.Background()
	target := testutil.CreateUser(t, f.db, "target")

	scores := []int{5, 4, 4}
	want := []float64{5, 4.5, 4.3}
	for i, score := range scores {
		rater := testutil.CreateUser(t, f.db, "rater"+string(rune('a'+i)))
		acceptSwap(t, swaps, rater.ID, target.ID)
		_, err := svc.Create(ctx, rater.ID, CreateRatingInput{ToUserID: target.ID, Score: score})
		require.NoError(t, err)

		p, err := users.Profile(ctx, target.ID)
		require.NoError(t, err)
		require.Equal(t, want[i], p.AvgRating)
		require.EqualValues(t, i+1, p.Count.RatingsReceived)
	}
}

func TestRatingListings(t *testing.T) {
	f := newFixture(t)
	svc := f.ratingService()
	ctx := context.Background()
	a := testutil.CreateUser(t, f.db, "alice")
	b := testutil.CreateUser(t, f.db, "bob")
	c := testutil.CreateUser(t, f.db, "carol")

	acceptSwap(t, f.swapService(), a.ID, b.ID)
	acceptSwap(t, f.swapService(), c.ID, a.ID)

	_, err := svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: b.ID, Score: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, a.ID, CreateRatingInput{ToUserID: c.ID, Score: 3})
	require.NoError(t, err)
	_, err = svc.Create(ctx, b.ID, CreateRatingInput{ToUserID: a.ID, Score: 4})
	require.NoError(t, err)

	mine, err := svc.Mine(ctx, a.ID, pagination.New(1, 1))
	require.NoError(t, err)
	require.EqualValues(t, 2, mine.Given.Pagination.Total)
	require.True(t, mine.Given.Pagination.HasNext)
	require.Len(t, mine.Given.Data, 1)
	require.NotNil(t, mine.Given.Data[0].ToUser)
	require.EqualValues(t, 1, mine.Received.Pagination.Total)
	require.Equal(t, "bob", mine.Received.Data[0].FromUser.Name)

	received, err := svc.ListForUser(ctx, b.ID, pagination.New(1, 10))
	require.NoError(t, err)
	require.Len(t, received.Data, 1)

	empty, err := svc.ListForUser(ctx, uuid.New(), pagination.New(1, 10))
	require.NoError(t, err)
	require.Empty(t, empty.Data)
	require.NotNil(t, empty.Data)
}
