package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Users(ctx context.Context, search string, p pagination.Params) (*pagination.Result[AdminUserView], error)
	SwapRequests(ctx context.Context, status models.SwapStatus, p pagination.Params) (*pagination.Result[SwapView], error)
}

type SwapStats struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Deleted  int64 `json:"deleted"`
}

type Dashboard struct {
	TotalUsers        int64     `json:"totalUsers"`
	TotalSwapRequests int64     `json:"totalSwapRequests"`
	TotalRatings      int64     `json:"totalRatings"`
	TotalSkills       int64     `json:"totalSkills"`
	SwapStats         SwapStats `json:"swapStats"`
}

type adminService struct {
	users   repository.UserRepository
	swaps   repository.SwapRepository
	ratings repository.RatingRepository
	skills  repository.SkillRepository
}

func NewAdminService(users repository.UserRepository, swaps repository.SwapRepository, ratings repository.RatingRepository, skills repository.SkillRepository) AdminService {
	return &adminService{users: users, swaps: swaps, ratings: ratings, skills: skills}
}

var _ AdminService = (*adminService)(nil)

// Dashboard runs every count concurrently; the first failure cancels the rest.
func (s *adminService) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	byStatus := func(st models.SwapStatus) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return s.swaps.CountByStatus(ctx, st) }
	}

	count(&d.TotalUsers, s.users.Count)
	count(&d.TotalSwapRequests, s.swaps.Count)
	count(&d.TotalRatings, s.ratings.Count)
	count(&d.TotalSkills, s.skills.Count)
	count(&d.SwapStats.Pending, byStatus(models.SwapPending))
	count(&d.SwapStats.Accepted, byStatus(models.SwapAccepted))
	count(&d.SwapStats.Rejected, byStatus(models.SwapRejected))
	count(&d.SwapStats.Deleted, byStatus(models.SwapDeleted))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *adminService) Users(ctx context.Context, search string, p pagination.Params) (*pagination.Result[AdminUserView], error) {
	rows, total, err := s.users.ListForAdmin(ctx, search, p)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, u := range rows {
		ids = append(ids, u.ID)
	}
	counts, err := s.users.Activity(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), func(u models.User) AdminUserView {
		return AdminUserView{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Location:    u.Location,
			ProfileType: u.ProfileType,
			CreatedAt:   u.CreatedAt,
			Count:       counts[u.ID],
		}
	}), nil
}

func (s *adminService) SwapRequests(ctx context.Context, status models.SwapStatus, p pagination.Params) (*pagination.Result[SwapView], error) {
	rows, total, err := s.swaps.ListAll(ctx, status, p)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), newAdminSwapView), nil
}
