package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

// UserFilter narrows a public user search. Empty fields match everything.
type UserFilter struct {
	Skill    string
	Location string
}

// ActivityCounts summarises a user's participation.
type ActivityCounts struct {
	SwapsSent       int64 `json:"swapRequestsSent"`
	SwapsReceived   int64 `json:"swapRequestsReceived"`
	RatingsReceived int64 `json:"ratingsReceived"`
}

type UserRepository interface {
	BaseRepository[models.User]
	GetByEmail(ctx context.Context, email string, dest *models.User) error
	GetProfile(ctx context.Context, id uuid.UUID, dest *models.User) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	ReplaceAvailability(ctx context.Context, userID uuid.UUID, days []string) ([]models.Availability, error)
	ReplaceSkills(ctx context.Context, userID uuid.UUID, offered, wanted []models.Skill) error
	SearchPublic(ctx context.Context, f UserFilter, p pagination.Params) ([]models.User, int64, error)
	ListForAdmin(ctx context.Context, search string, p pagination.Params) ([]models.User, int64, error)
	Activity(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ActivityCounts, error)
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(dest).Error
	return translate(err, "user not found", "get user by email")
}

func (r *userRepository) GetProfile(ctx context.Context, id uuid.UUID, dest *models.User) error {
	err := r.db.WithContext(ctx).
		Preload("SkillsOffered", orderByName).
		Preload("SkillsWanted", orderByName).
		Preload("Availability").
		First(dest, "id = ?", id).Error
	return translate(err, "user not found", "get user profile")
}

func (r *userRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error, "user not found", "update user")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, "user not found")
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.UpdateFields(ctx, id, map[string]any{"password": hash})
}

func (r *userRepository) ReplaceAvailability(ctx context.Context, userID uuid.UUID, days []string) ([]models.Availability, error) {
	out := make([]models.Availability, 0, len(days))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Availability{}).Error; err != nil {
			return err
		}
		for _, d := range days {
			out = append(out, models.Availability{Day: d, UserID: userID})
		}
		if len(out) == 0 {
			return nil
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, translate(err, "user not found", "replace availability")
	}
	return out, nil
}

func (r *userRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, offered, wanted []models.Skill) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u := &models.User{ID: userID}
		if err := replaceAssociation(tx.Model(u).Association("SkillsOffered"), offered); err != nil {
			return err
		}
		return replaceAssociation(tx.Model(u).Association("SkillsWanted"), wanted)
	})
	return translate(err, "user not found", "replace skills")
}

func replaceAssociation(a *gorm.Association, skills []models.Skill) error {
	if len(skills) == 0 {
		return a.Clear()
	}
	return a.Replace(skills)
}

// publicSearch restricts to PUBLIC profiles matching the filter.
func publicSearch(db *gorm.DB, f UserFilter) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		q = q.Where("users.profile_type = ?", models.ProfilePublic)
		if s := strings.TrimSpace(f.Skill); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			offered := db.Table("user_skills_offered AS o").Select("o.user_id").
				Joins("JOIN skills AS s ON s.id = o.skill_id").Where("LOWER(s.name) LIKE ?", like)
			wanted := db.Table("user_skills_wanted AS w").Select("w.user_id").
				Joins("JOIN skills AS s ON s.id = w.skill_id").Where("LOWER(s.name) LIKE ?", like)
			q = q.Where("(users.id IN (?) OR users.id IN (?))", offered, wanted)
		}
		if l := strings.TrimSpace(f.Location); l != "" {
			q = q.Where("LOWER(users.location) LIKE ?", "%"+strings.ToLower(l)+"%")
		}
		return q
	}
}

func (r *userRepository) SearchPublic(ctx context.Context, f UserFilter, p pagination.Params) ([]models.User, int64, error) {
	scope := publicSearch(r.db, f)
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count users failed")
	}
	var out []models.User
	err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope, paginate(p)).
		Preload("SkillsOffered", orderByName).
		Preload("SkillsWanted", orderByName).
		Preload("Availability").
		Order("users.created_at DESC").Order("users.id DESC").
		Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "search users failed")
	}
	return out, total, nil
}

func (r *userRepository) ListForAdmin(ctx context.Context, search string, p pagination.Params) ([]models.User, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", like, like)
		}
		return q
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count users failed")
	}
	var out []models.User
	err := r.db.WithContext(ctx).Scopes(scope, paginate(p)).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "list users failed")
	}
	return out, total, nil
}

type countRow struct {
	UserID uuid.UUID
	N      int64
}

func (r *userRepository) Activity(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ActivityCounts, error) {
	out := make(map[uuid.UUID]ActivityCounts, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	count := func(model any, col string, apply func(*ActivityCounts, int64)) error {
		var rows []countRow
		err := r.db.WithContext(ctx).Model(model).
			Select(col+" AS user_id, COUNT(*) AS n").
			Where(col+" IN ?", ids).
			Group(col).
			Scan(&rows).Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			c := out[row.UserID]
			apply(&c, row.N)
			out[row.UserID] = c
		}
		return nil
	}
	if err := count(&models.SwapRequest{}, "from_user_id", func(c *ActivityCounts, n int64) { c.SwapsSent = n }); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "count sent swaps failed")
	}
	if err := count(&models.SwapRequest{}, "to_user_id", func(c *ActivityCounts, n int64) { c.SwapsReceived = n }); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "count received swaps failed")
	}
	if err := count(&models.Rating{}, "to_user_id", func(c *ActivityCounts, n int64) { c.RatingsReceived = n }); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "count received ratings failed")
	}
	return out, nil
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}
