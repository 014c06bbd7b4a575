package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, deactivatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, deactivatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiryTime *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiryTime)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---
func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "bendahara",
		Password: "rahasia-sekali",
		Name:     "Pak Bendahara",
		Email:    "bendahara@nuruljannah.or.id",
		Role:     domain.RoleEditor,
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, user.PasswordHash) &&
			user.IsActive &&
			user.CreatedBy == creatorID
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Username, user.Username)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "bendahara",
		Password: "rahasia-sekali",
		Name:     "Pak Bendahara",
		Email:    "bendahara@nuruljannah.or.id",
		Role:     domain.RoleAdmin,
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- DeactivateUser Tests ---
func (suite *UserServiceTestSuite) TestDeactivateUser_SelfRejected() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeactivateUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeactivateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeactivateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("DeactivateUser", ctx, userID, adminID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Refresh token Tests ---
func (suite *UserServiceTestSuite) TestClearRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil)).Return(nil).Once()

	err := suite.service.ClearRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateGoogleUser Tests ---
func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingUser() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{
		Email:         "ketua@nuruljannah.or.id",
		VerifiedEmail: true,
		Name:          "Pak Ketua",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: info.Email}

	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_NewUserGetsEditorRole() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{
		Email:         "relawan@gmail.com",
		VerifiedEmail: true,
		Name:          "Relawan Baru",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, info.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == info.Email && user.Role == domain.RoleEditor && user.IsActive
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(domain.RoleEditor, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_UnverifiedEmail() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{Email: "spoofed@example.com", VerifiedEmail: false}

	user, err := suite.service.FindOrCreateGoogleUser(ctx, info)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
