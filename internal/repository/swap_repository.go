package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

type SwapRepository interface {
	BaseRepository[models.SwapRequest]
	GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.SwapRequest) error
	ListForUser(ctx context.Context, userID uuid.UUID, status models.SwapStatus, p pagination.Params) ([]models.SwapRequest, int64, error)
	ListAll(ctx context.Context, status models.SwapStatus, p pagination.Params) ([]models.SwapRequest, int64, error)
	ExistsBetween(ctx context.Context, a, b uuid.UUID, status models.SwapStatus) (bool, error)
	// TransitionFromPending moves a PENDING request to status. It reports
	// false when the request was no longer PENDING at write time.
	TransitionFromPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (bool, error)
	CountByStatus(ctx context.Context, status models.SwapStatus) (int64, error)
}

type swapRepository struct {
	BaseRepository[models.SwapRequest]
	db *gorm.DB
}

func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{BaseRepository: NewBaseRepository[models.SwapRequest](db), db: db}
}

func withParticipants(db *gorm.DB) *gorm.DB {
	return db.Preload("FromUser", summaryColumns).Preload("ToUser", summaryColumns)
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func (r *swapRepository) GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.SwapRequest) error {
	err := r.db.WithContext(ctx).Scopes(withParticipants).First(dest, "id = ?", id).Error
	return translate(err, "swap request not found", "get swap request")
}

func statusFilter(status models.SwapStatus) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if status == "" {
			return q
		}
		return q.Where("status = ?", status)
	}
}

func (r *swapRepository) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, p pagination.Params) ([]models.SwapRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count swap requests failed")
	}
	var out []models.SwapRequest
	err := r.db.WithContext(ctx).Scopes(scope, withParticipants, newestFirst, paginate(p)).Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list swap requests failed")
	}
	return out, total, nil
}

func (r *swapRepository) ListForUser(ctx context.Context, userID uuid.UUID, status models.SwapStatus, p pagination.Params) ([]models.SwapRequest, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		q = q.Where("(from_user_id = ? OR to_user_id = ?)", userID, userID)
		return statusFilter(status)(q)
	}, p)
}

func (r *swapRepository) ListAll(ctx context.Context, status models.SwapStatus, p pagination.Params) ([]models.SwapRequest, int64, error) {
	return r.list(ctx, statusFilter(status), p)
}

func (r *swapRepository) ExistsBetween(ctx context.Context, a, b uuid.UUID, status models.SwapStatus) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).
		Where("pair_key = ? AND status = ?", models.PairKey(a, b), status).
		Count(&n).Error
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check swap requests failed")
	}
	return n > 0, nil
}

func (r *swapRepository) TransitionFromPending(ctx context.Context, id uuid.UUID, status models.SwapStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, models.SwapPending).
		Update("status", status)
	if res.Error != nil {
		return false, appErr.Wrap(res.Error, appErr.CodeInternal, "update swap request status failed")
	}
	return res.RowsAffected == 1, nil
}

func (r *swapRepository) CountByStatus(ctx context.Context, status models.SwapStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).Scopes(statusFilter(status)).Count(&n).Error
	if err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count swap requests failed")
	}
	return n, nil
}
