package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

type RatingRepository interface {
	BaseRepository[models.Rating]
	GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.Rating) error
	Exists(ctx context.Context, from, to uuid.UUID) (bool, error)
	ListReceived(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Rating, int64, error)
	ListGiven(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Rating, int64, error)
	Summaries(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.RatingSummary, error)
}

type ratingRepository struct {
	BaseRepository[models.Rating]
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{BaseRepository: NewBaseRepository[models.Rating](db), db: db}
}

func (r *ratingRepository) GetWithParticipants(ctx context.Context, id uuid.UUID, dest *models.Rating) error {
	err := r.db.WithContext(ctx).
		Preload("FromUser", summaryColumns).
		Preload("ToUser", summaryColumns).
		First(dest, "id = ?", id).Error
	return translate(err, "rating not found", "get rating")
}

func (r *ratingRepository) Exists(ctx context.Context, from, to uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Where("from_user_id = ? AND to_user_id = ?", from, to).
		Count(&n).Error
	if err != nil {
		return false, appErr.Wrap(err, appErr.CodeInternal, "check rating failed")
	}
	return n > 0, nil
}

func (r *ratingRepository) list(ctx context.Context, col, preload string, userID uuid.UUID, p pagination.Params) ([]models.Rating, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Where(col+" = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count ratings failed")
	}
	var out []models.Rating
	err := r.db.WithContext(ctx).
		Where(col+" = ?", userID).
		Preload(preload, summaryColumns).
		Scopes(newestFirst, paginate(p)).
		Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list ratings failed")
	}
	return out, total, nil
}

func (r *ratingRepository) ListReceived(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Rating, int64, error) {
	return r.list(ctx, "to_user_id", "FromUser", userID, p)
}

func (r *ratingRepository) ListGiven(ctx context.Context, userID uuid.UUID, p pagination.Params) ([]models.Rating, int64, error) {
	return r.list(ctx, "from_user_id", "ToUser", userID, p)
}

// Summaries aggregates received scores per user. Users without ratings are absent.
func (r *ratingRepository) Summaries(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]models.RatingSummary, error) {
	out := make(map[uuid.UUID]models.RatingSummary, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		UserID uuid.UUID
		Total  int64
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("to_user_id AS user_id, SUM(score) AS total, COUNT(*) AS n").
		Where("to_user_id IN ?", userIDs).
		Group("to_user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "aggregate ratings failed")
	}
	for _, row := range rows {
		out[row.UserID] = models.RatingSummary{Sum: row.Total, Count: row.N}
	}
	return out, nil
}
