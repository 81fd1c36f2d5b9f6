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

type SwapService interface {
	Create(ctx context.Context, fromUserID uuid.UUID, in CreateSwapInput) (*SwapView, error)
	List(ctx context.Context, userID uuid.UUID, status models.SwapStatus, p pagination.Params) (*pagination.Result[SwapView], error)
	Get(ctx context.Context, userID, id uuid.UUID) (*SwapView, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SwapStatus) (*SwapView, error)
}

type CreateSwapInput struct {
	ToUserID     uuid.UUID
	SkillOffered string
	SkillWanted  string
	Message      *string
}

type swapService struct {
	users repository.UserRepository
	swaps repository.SwapRepository
}

func NewSwapService(users repository.UserRepository, swaps repository.SwapRepository) SwapService {
	return &swapService{users: users, swaps: swaps}
}

var _ SwapService = (*swapService)(nil)

func (s *swapService) Create(ctx context.Context, fromUserID uuid.UUID, in CreateSwapInput) (*SwapView, error) {
	if fromUserID == in.ToUserID {
		return nil, ErrSelfRequest
	}

	var target models.User
	if err := s.users.GetByID(ctx, in.ToUserID, &target); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if target.IsPrivate() {
		return nil, ErrPrivateProfile
	}

	pending, err := s.swaps.ExistsBetween(ctx, fromUserID, in.ToUserID, models.SwapPending)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicatePending
	}

	req := &models.SwapRequest{
		FromUserID:   fromUserID,
		ToUserID:     in.ToUserID,
		SkillOffered: in.SkillOffered,
		SkillWanted:  in.SkillWanted,
		Message:      in.Message,
		Status:       models.SwapPending,
	}
	if err := s.swaps.Create(ctx, req); err != nil {
		// lost a race with a concurrent request for the same pair
		if appErr.IsCode(err, appErr.CodeConflict) {
			return nil, ErrDuplicatePending
		}
		return nil, err
	}

	logger.L().Info("swap request created",
		zap.String("swap_id", req.ID.String()),
		zap.String("from_user_id", fromUserID.String()),
		zap.String("to_user_id", in.ToUserID.String()))

	return s.load(ctx, req.ID, uuid.Nil)
}

func (s *swapService) List(ctx context.Context, userID uuid.UUID, status models.SwapStatus, p pagination.Params) (*pagination.Result[SwapView], error) {
	rows, total, err := s.swaps.ListForUser(ctx, userID, status, p)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), func(r models.SwapRequest) SwapView {
		return newSwapView(r, userID)
	}), nil
}

func (s *swapService) Get(ctx context.Context, userID, id uuid.UUID) (*SwapView, error) {
	var req models.SwapRequest
	if err := s.swaps.GetWithParticipants(ctx, id, &req); err != nil {
		return nil, notFoundAs(err, ErrSwapNotFound)
	}
	if !req.Involves(userID) {
		return nil, ErrSwapForbidden
	}
	v := newSwapView(req, userID)
	return &v, nil
}

// UpdateStatus moves a PENDING request to a terminal status. The recipient
// may accept or reject; only the sender may delete.
func (s *swapService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SwapStatus) (*SwapView, error) {
	if !status.Valid() || !status.Terminal() {
		return nil, ErrInvalidTransition
	}

	var req models.SwapRequest
	if err := s.swaps.GetByID(ctx, id, &req); err != nil {
		return nil, notFoundAs(err, ErrSwapNotFound)
	}

	switch status {
	case models.SwapDeleted:
		if req.FromUserID != userID {
			return nil, ErrOnlySenderDeletes
		}
	default:
		if req.ToUserID != userID {
			return nil, ErrOnlyRecipient
		}
	}

	if req.Status.Terminal() {
		return nil, ErrAlreadyProcessed
	}
	applied, err := s.swaps.TransitionFromPending(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrAlreadyProcessed
	}

	logger.L().Info("swap request status updated",
		zap.String("swap_id", id.String()),
		zap.String("user_id", userID.String()),
		zap.String("status", string(status)))

	return s.load(ctx, id, userID)
}

func (s *swapService) load(ctx context.Context, id, viewer uuid.UUID) (*SwapView, error) {
	var req models.SwapRequest
	if err := s.swaps.GetWithParticipants(ctx, id, &req); err != nil {
		return nil, err
	}
	v := newSwapView(req, viewer)
	return &v, nil
}
