package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/logger"
	"github.com/mogith007/skillswap/pkg/pagination"
	"go.uber.org/zap"
)

type RatingService interface {
	Create(ctx context.Context, fromUserID uuid.UUID, in CreateRatingInput) (*RatingView, error)
	ListForUser(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[RatingView], error)
	Mine(ctx context.Context, userID uuid.UUID, p pagination.Params) (*MyRatings, error)
}

type CreateRatingInput struct {
	ToUserID uuid.UUID
	Score    int
	Comment  *string
}

// MyRatings pages given and received ratings independently.
type MyRatings struct {
	Given    *pagination.Result[RatingView] `json:"given"`
	Received *pagination.Result[RatingView] `json:"received"`
}

type ratingService struct {
	users   repository.UserRepository
	swaps   repository.SwapRepository
	ratings repository.RatingRepository
}

func NewRatingService(users repository.UserRepository, swaps repository.SwapRepository, ratings repository.RatingRepository) RatingService {
	return &ratingService{users: users, swaps: swaps, ratings: ratings}
}

var _ RatingService = (*ratingService)(nil)

func (s *ratingService) Create(ctx context.Context, fromUserID uuid.UUID, in CreateRatingInput) (*RatingView, error) {
	if fromUserID == in.ToUserID {
		return nil, ErrSelfRating
	}
	if in.Score < models.MinScore || in.Score > models.MaxScore {
		return nil, appErr.Invalid("Validation failed", []string{"score: must be between 1 and 5"})
	}

	var target models.User
	if err := s.users.GetByID(ctx, in.ToUserID, &target); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	swapped, err := s.swaps.ExistsBetween(ctx, fromUserID, in.ToUserID, models.SwapAccepted)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrNoCompletedSwap
	}

	rated, err := s.ratings.Exists(ctx, fromUserID, in.ToUserID)
	if err != nil {
		return nil, err
	}
	if rated {
		return nil, ErrDuplicateRating
	}

	r := &models.Rating{FromUserID: fromUserID, ToUserID: in.ToUserID, Score: in.Score, Comment: in.Comment}
	if err := s.ratings.Create(ctx, r); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, ErrDuplicateRating
		}
		return nil, err
	}

	logger.L().Info("rating created",
		zap.String("rating_id", r.ID.String()),
		zap.String("from_user_id", fromUserID.String()),
		zap.String("to_user_id", in.ToUserID.String()),
		zap.Int("score", in.Score))

	var full models.Rating
	if err := s.ratings.GetWithParticipants(ctx, r.ID, &full); err != nil {
		return nil, err
	}
	v := newRatingView(full)
	return &v, nil
}

func (s *ratingService) ListForUser(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[RatingView], error) {
	rows, total, err := s.ratings.ListReceived(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), newRatingView), nil
}

func (s *ratingService) Mine(ctx context.Context, userID uuid.UUID, p pagination.Params) (*MyRatings, error) {
	given, givenTotal, err := s.ratings.ListGiven(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	received, receivedTotal, err := s.ratings.ListReceived(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return &MyRatings{
		Given:    pagination.Map(pagination.NewResult(given, givenTotal, p), newRatingView),
		Received: pagination.Map(pagination.NewResult(received, receivedTotal, p), newRatingView),
	}, nil
}
