package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/mogith007/skillswap/internal/auth"
	"github.com/mogith007/skillswap/internal/models"
	"github.com/mogith007/skillswap/internal/repository"
	"github.com/mogith007/skillswap/internal/services"
	"github.com/mogith007/skillswap/pkg/pagination"
)

type mockAuthService struct{ mock.Mock }

var _ services.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	args := m.Called(ctx, in)
	res, _ := args.Get(0).(*services.AuthResult)
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	args := m.Called(ctx, email, password)
	res, _ := args.Get(0).(*services.AuthResult)
	return res, args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, newPassword string) (*models.User, error) {
	args := m.Called(ctx, token, newPassword)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockAuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*models.User, *auth.Claims, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*models.User)
	c, _ := args.Get(1).(*auth.Claims)
	return u, c, args.Error(2)
}

func (m *mockAuthService) AuthenticateAdmin(ctx context.Context, token string) (*models.Admin, *auth.Claims, error) {
	args := m.Called(ctx, token)
	a, _ := args.Get(0).(*models.Admin)
	c, _ := args.Get(1).(*auth.Claims)
	return a, c, args.Error(2)
}

type mockSwapService struct{ mock.Mock }

var _ services.SwapService = (*mockSwapService)(nil)

func (m *mockSwapService) Create(ctx context.Context, fromUserID uuid.UUID, in services.CreateSwapInput) (*services.SwapView, error) {
	args := m.Called(ctx, fromUserID, in)
	v, _ := args.Get(0).(*services.SwapView)
	return v, args.Error(1)
}

func (m *mockSwapService) List(ctx context.Context, userID uuid.UUID, status models.SwapStatus, p pagination.Params) (*pagination.Result[services.SwapView], error) {
	args := m.Called(ctx, userID, status, p)
	v, _ := args.Get(0).(*pagination.Result[services.SwapView])
	return v, args.Error(1)
}

func (m *mockSwapService) Get(ctx context.Context, userID, id uuid.UUID) (*services.SwapView, error) {
	args := m.Called(ctx, userID, id)
	v, _ := args.Get(0).(*services.SwapView)
	return v, args.Error(1)
}

func (m *mockSwapService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.SwapStatus) (*services.SwapView, error) {
	args := m.Called(ctx, userID, id, status)
	v, _ := args.Get(0).(*services.SwapView)
	return v, args.Error(1)
}

type mockUserService struct{ mock.Mock }

var _ services.UserService = (*mockUserService)(nil)

func (m *mockUserService) Profile(ctx context.Context, userID uuid.UUID) (*services.ProfileView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).(*services.ProfileView)
	return v, args.Error(1)
}

func (m *mockUserService) PublicProfile(ctx context.Context, userID uuid.UUID) (*services.ProfileView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).(*services.ProfileView)
	return v, args.Error(1)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, in services.UpdateProfileInput) (*models.User, error) {
	args := m.Called(ctx, userID, in)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateAvailability(ctx context.Context, userID uuid.UUID, days []string) ([]models.Availability, error) {
	args := m.Called(ctx, userID, days)
	v, _ := args.Get(0).([]models.Availability)
	return v, args.Error(1)
}

func (m *mockUserService) UpdateSkills(ctx context.Context, userID uuid.UUID, offered, wanted []string) (*models.User, error) {
	args := m.Called(ctx, userID, offered, wanted)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserService) Search(ctx context.Context, f repository.UserFilter, p pagination.Params) (*pagination.Result[services.UserCard], error) {
	args := m.Called(ctx, f, p)
	v, _ := args.Get(0).(*pagination.Result[services.UserCard])
	return v, args.Error(1)
}

type mockRatingService struct{ mock.Mock }

var _ services.RatingService = (*mockRatingService)(nil)

func (m *mockRatingService) Create(ctx context.Context, fromUserID uuid.UUID, in services.CreateRatingInput) (*services.RatingView, error) {
	args := m.Called(ctx, fromUserID, in)
	v, _ := args.Get(0).(*services.RatingView)
	return v, args.Error(1)
}

func (m *mockRatingService) ListForUser(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[services.RatingView], error) {
	args := m.Called(ctx, userID, p)
	v, _ := args.Get(0).(*pagination.Result[services.RatingView])
	return v, args.Error(1)
}

func (m *mockRatingService) Mine(ctx context.Context, userID uuid.UUID, p pagination.Params) (*services.MyRatings, error) {
	args := m.Called(ctx, userID, p)
	v, _ := args.Get(0).(*services.MyRatings)
	return v, args.Error(1)
}

type mockSkillService struct{ mock.Mock }

var _ services.SkillService = (*mockSkillService)(nil)

func (m *mockSkillService) Search(ctx context.Context, search string, p pagination.Params) (*pagination.Result[repository.SkillUsage], error) {
	args := m.Called(ctx, search, p)
	v, _ := args.Get(0).(*pagination.Result[repository.SkillUsage])
	return v, args.Error(1)
}

func (m *mockSkillService) Popular(ctx context.Context, limit int) ([]repository.SkillUsage, error) {
	args := m.Called(ctx, limit)
	v, _ := args.Get(0).([]repository.SkillUsage)
	return v, args.Error(1)
}

type mockAdminService struct{ mock.Mock }

var _ services.AdminService = (*mockAdminService)(nil)

func (m *mockAdminService) Dashboard(ctx context.Context) (*services.Dashboard, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(*services.Dashboard)
	return v, args.Error(1)
}

func (m *mockAdminService) Users(ctx context.Context, search string, p pagination.Params) (*pagination.Result[services.AdminUserView], error) {
	args := m.Called(ctx, search, p)
	v, _ := args.Get(0).(*pagination.Result[services.AdminUserView])
	return v, args.Error(1)
}

func (m *mockAdminService) SwapRequests(ctx context.Context, status models.SwapStatus, p pagination.Params) (*pagination.Result[services.SwapView], error) {
	args := m.Called(ctx, status, p)
	v, _ := args.Get(0).(*pagination.Result[services.SwapView])
	return v, args.Error(1)
}

type mockChatService struct{ mock.Mock }

var _ services.ChatService = (*mockChatService)(nil)

func (m *mockChatService) Start(ctx context.Context, userID, otherID uuid.UUID) (*services.ChatView, error) {
	args := m.Called(ctx, userID, otherID)
	v, _ := args.Get(0).(*services.ChatView)
	return v, args.Error(1)
}

func (m *mockChatService) List(ctx context.Context, userID uuid.UUID, p pagination.Params) (*pagination.Result[services.ChatView], error) {
	args := m.Called(ctx, userID, p)
	v, _ := args.Get(0).(*pagination.Result[services.ChatView])
	return v, args.Error(1)
}

func (m *mockChatService) Messages(ctx context.Context, userID, chatID uuid.UUID, p pagination.Params) (*pagination.Result[models.ChatMessage], error) {
	args := m.Called(ctx, userID, chatID, p)
	v, _ := args.Get(0).(*pagination.Result[models.ChatMessage])
	return v, args.Error(1)
}

func (m *mockChatService) Send(ctx context.Context, userID, chatID uuid.UUID, text string) (*models.ChatMessage, error) {
	args := m.Called(ctx, userID, chatID, text)
	v, _ := args.Get(0).(*models.ChatMessage)
	return v, args.Error(1)
}
