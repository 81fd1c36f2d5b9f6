package repository

import (
	"context"
	"fmt"

	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

// BaseRepository defines common CRUD operations.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Update(ctx context.Context, obj *T) error
	Delete(ctx context.Context, id any) error
	Count(ctx context.Context) (int64, error)
}

type baseRepository[T any] struct {
	db *gorm.DB
}

func NewBaseRepository[T any](db *gorm.DB) BaseRepository[T] {
	return &baseRepository[T]{db: db}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	return translate(r.db.WithContext(ctx).Create(obj).Error, "entity not found", "create entity")
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	return translate(r.db.WithContext(ctx).First(dest, "id = ?", id).Error, "entity not found", "get entity")
}

func (r *baseRepository[T]) Update(ctx context.Context, obj *T) error {
	return translate(r.db.WithContext(ctx).Save(obj).Error, "entity not found", "update entity")
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	var t T
	res := r.db.WithContext(ctx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete entity failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("entity %v not found", id))
	}
	return nil
}

func (r *baseRepository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	var t T
	if err := r.db.WithContext(ctx).Model(&t).Count(&n).Error; err != nil {
		return 0, appErr.Wrap(err, appErr.CodeInternal, "count entities failed")
	}
	return n, nil
}

// paginate applies offset/limit for a page request.
func paginate(p pagination.Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// summaryColumns limits preloaded users to what a summary exposes.
func summaryColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "profile_photo")
}
