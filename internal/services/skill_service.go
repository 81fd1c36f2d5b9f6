package services

import (
	"context"

	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/pagination"
)

const (
	DefaultPopularSkills = 10
	MaxPopularSkills     = 50
)

type SkillService interface {
	Search(ctx context.Context, search string, p pagination.Params) (*pagination.Result[repository.SkillUsage], error)
	Popular(ctx context.Context, limit int) ([]repository.SkillUsage, error)
}

type skillService struct {
	skills repository.SkillRepository
}

func NewSkillService(skills repository.SkillRepository) SkillService {
	return &skillService{skills: skills}
}

var _ SkillService = (*skillService)(nil)

func (s *skillService) Search(ctx context.Context, search string, p pagination.Params) (*pagination.Result[repository.SkillUsage], error) {
	rows, total, err := s.skills.Search(ctx, search, p)
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(rows, total, p), nil
}

// Popular clamps limit to [1, MaxPopularSkills], defaulting when non-positive.
func (s *skillService) Popular(ctx context.Context, limit int) ([]repository.SkillUsage, error) {
	if limit <= 0 {
		limit = DefaultPopularSkills
	}
	if limit > MaxPopularSkills {
		limit = MaxPopularSkills
	}
	rows, err := s.skills.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}
