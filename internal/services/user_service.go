package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/pkg/logger"
	"github.com/mogith007/skillswap/pkg/pagination"
	"go.uber.org/zap"
)

// profileRatings bounds how many received ratings a profile embeds.
const profileRatings = 50

type UserService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	PublicProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*models.User, error)
	UpdateAvailability(ctx context.Context, userID uuid.UUID, days []string) ([]models.Availability, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, offered, wanted []string) (*models.User, error)
	Search(ctx context.Context, f repository.UserFilter, p pagination.Params) (*pagination.Result[UserCard], error)
}

// UpdateProfileInput carries a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Name         *string
	Location     *string
	ProfilePhoto *string
	ProfileType  *models.ProfileType
}

type userService struct {
	users   repository.UserRepository
	skills  repository.SkillRepository
	ratings repository.RatingRepository
}

func NewUserService(users repository.UserRepository, skills repository.SkillRepository, ratings repository.RatingRepository) UserService {
	return &userService{users: users, skills: skills, ratings: ratings}
}

var _ UserService = (*userService)(nil)

func (s *userService) profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	var u models.User
	if err := s.users.GetProfile(ctx, userID, &u); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	sums, err := s.ratings.Summaries(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	recent, _, err := s.ratings.ListReceived(ctx, userID, pagination.New(1, profileRatings))
	if err != nil {
		return nil, err
	}
	u.SkillsOffered = nonNil(u.SkillsOffered)
	u.SkillsWanted = nonNil(u.SkillsWanted)
	u.Availability = nonNil(u.Availability)
	return &ProfileView{
		User:            &u,
		AvgRating:       sums[userID].Average(),
		RatingsReceived: mapSlice(recent, newRatingView),
	}, nil
}

// Profile is the caller's own profile, including activity counts.
func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	v, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.users.Activity(ctx, []uuid.UUID{userID})
	if err != nil {
		return nil, err
	}
	c := counts[userID]
	v.Count = &c
	v.Email = v.User.Email
	return v, nil
}

// PublicProfile hides the email and refuses PRIVATE profiles.
func (s *userService) PublicProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	v, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if v.IsPrivate() {
		return nil, ErrProfilePrivate
	}
	return v, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (*models.User, error) {
	fields := map[string]any{}
	if in.Name != nil {
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.ProfilePhoto != nil {
		fields["profile_photo"] = *in.ProfilePhoto
	}
	if in.ProfileType != nil {
		fields["profile_type"] = *in.ProfileType
	}
	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	logger.L().Info("profile updated", zap.String("user_id", userID.String()), zap.Int("fields", len(fields)))

	var u models.User
	if err := s.users.GetByID(ctx, userID, &u); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return &u, nil
}

func (s *userService) UpdateAvailability(ctx context.Context, userID uuid.UUID, days []string) ([]models.Availability, error) {
	out, err := s.users.ReplaceAvailability(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	logger.L().Info("availability replaced", zap.String("user_id", userID.String()), zap.Int("days", len(out)))
	return out, nil
}

func (s *userService) UpdateSkills(ctx context.Context, userID uuid.UUID, offered, wanted []string) (*models.User, error) {
	offeredSkills, err := s.skills.UpsertMany(ctx, offered)
	if err != nil {
		return nil, err
	}
	wantedSkills, err := s.skills.UpsertMany(ctx, wanted)
	if err != nil {
		return nil, err
	}
	if err := s.users.ReplaceSkills(ctx, userID, offeredSkills, wantedSkills); err != nil {
		return nil, err
	}

	logger.L().Info("skills replaced",
		zap.String("user_id", userID.String()),
		zap.Int("offered", len(offeredSkills)),
		zap.Int("wanted", len(wantedSkills)))

	var u models.User
	if err := s.users.GetProfile(ctx, userID, &u); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	u.SkillsOffered = nonNil(u.SkillsOffered)
	u.SkillsWanted = nonNil(u.SkillsWanted)
	u.Availability = nil
	return &u, nil
}

func (s *userService) Search(ctx context.Context, f repository.UserFilter, p pagination.Params) (*pagination.Result[UserCard], error) {
	rows, total, err := s.users.SearchPublic(ctx, f, p)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, u := range rows {
		ids = append(ids, u.ID)
	}
	sums, err := s.ratings.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	return pagination.Map(pagination.NewResult(rows, total, p), func(u models.User) UserCard {
		sum := sums[u.ID]
		return UserCard{
			ID:            u.ID,
			Name:          u.Name,
			Location:      u.Location,
			ProfilePhoto:  u.ProfilePhoto,
			SkillsOffered: nonNil(u.SkillsOffered),
			SkillsWanted:  nonNil(u.SkillsWanted),
			Availability:  nonNil(u.Availability),
			AvgRating:     sum.Average(),
			RatingCount:   sum.Count,
		}
	}), nil
}
