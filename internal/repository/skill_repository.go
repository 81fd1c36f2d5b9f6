package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/mogith007/skillswap/internal/models"
	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/mogith007/skillswap/pkg/pagination"
	"gorm.io/gorm"
)

// SkillUsage is a skill with how many users offer and want it.
type SkillUsage struct {
	models.Skill
	OfferedCount int64 `json:"offeredCount"`
	WantedCount  int64 `json:"wantedCount"`
}

type SkillRepository interface {
	BaseRepository[models.Skill]
	Upsert(ctx context.Context, name string) (*models.Skill, error)
	UpsertMany(ctx context.Context, names []string) ([]models.Skill, error)
	Search(ctx context.Context, search string, p pagination.Params) ([]SkillUsage, int64, error)
	Popular(ctx context.Context, limit int) ([]SkillUsage, error)
}

type skillRepository struct {
	BaseRepository[models.Skill]
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{BaseRepository: NewBaseRepository[models.Skill](db), db: db}
}

const usageColumns = "skills.*, " +
	"(SELECT COUNT(*) FROM user_skills_offered o WHERE o.skill_id = skills.id) AS offered_count, " +
	"(SELECT COUNT(*) FROM user_skills_wanted w WHERE w.skill_id = skills.id) AS wanted_count"

func (r *skillRepository) findByKey(ctx context.Context, key string) (*models.Skill, error) {
	var s models.Skill
	if err := r.db.WithContext(ctx).Where("name_key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert returns the skill whose lower-cased name matches, creating it if absent.
// A concurrent creator winning the unique race is re-read.
func (r *skillRepository) Upsert(ctx context.Context, name string) (*models.Skill, error) {
	name = strings.TrimSpace(name)
	key := models.SkillKey(name)
	if key == "" {
		return nil, appErr.New(appErr.CodeInvalid, "skill name is required")
	}
	s, err := r.findByKey(ctx, key)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "get skill failed")
	}

	created := &models.Skill{Name: name}
	if err := r.db.WithContext(ctx).Create(created).Error; err != nil {
		if !IsUniqueViolation(err) {
			return nil, appErr.Wrap(err, appErr.CodeInternal, "create skill failed")
		}
		s, err := r.findByKey(ctx, key)
		if err != nil {
			return nil, translate(err, "skill not found", "reload skill")
		}
		return s, nil
	}
	return created, nil
}

func (r *skillRepository) UpsertMany(ctx context.Context, names []string) ([]models.Skill, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]models.Skill, 0, len(names))
	for _, n := range names {
		key := models.SkillKey(n)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		s, err := r.Upsert(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *skillRepository) Search(ctx context.Context, search string, p pagination.Params) ([]SkillUsage, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if s := strings.TrimSpace(search); s != "" {
			q = q.Where("LOWER(skills.name) LIKE ?", "%"+strings.ToLower(s)+"%")
		}
		return q
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Skill{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "count skills failed")
	}
	var out []SkillUsage
	err := r.db.WithContext(ctx).Table("skills").Select(usageColumns).
		Scopes(scope, paginate(p)).
		Order("skills.name ASC").Order("skills.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, 0, appErr.Wrap(err, appErr.CodeInternal, "search skills failed")
	}
	return out, total, nil
}

func (r *skillRepository) Popular(ctx context.Context, limit int) ([]SkillUsage, error) {
	var out []SkillUsage
	err := r.db.WithContext(ctx).Table("skills").Select(usageColumns).
		Order("offered_count DESC").Order("wanted_count DESC").Order("skills.name ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "list popular skills failed")
	}
	return out, nil
}
