package repository

import (
	"context"
	"strings"

	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"gorm.io/gorm"
)

type AdminRepository interface {
	BaseRepository[models.Admin]
	GetByEmail(ctx context.Context, email string, dest *models.Admin) error
	// Ensure creates the admin unless one with the same email exists.
	Ensure(ctx context.Context, admin *models.Admin) (created bool, err error)
}

type adminRepository struct {
	BaseRepository[models.Admin]
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{BaseRepository: NewBaseRepository[models.Admin](db), db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string, dest *models.Admin) error {
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(dest).Error
	return translate(err, "admin not found", "get admin by email")
}

func (r *adminRepository) Ensure(ctx context.Context, admin *models.Admin) (bool, error) {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	err := r.GetByEmail(ctx, admin.Email, admin)
	if err == nil {
		return false, nil
	}
	if !appErr.IsCode(err, appErr.CodeNotFound) {
		return false, err
	}
	if err := r.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
