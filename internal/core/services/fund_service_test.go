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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FundRepository ---
type MockFundRepository struct {
	mock.Mock
}

func (m *MockFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	var fund *domain.Fund
	if args.Get(0) != nil {
		fund = args.Get(0).(*domain.Fund)
	}
	return fund, args.Error(1)
}

func (m *MockFundRepository) ListFunds(ctx context.Context, includeInactive bool) ([]domain.Fund, error) {
	args := m.Called(ctx, includeInactive)
	var funds []domain.Fund
	if args.Get(0) != nil {
		funds = args.Get(0).([]domain.Fund)
	}
	return funds, args.Error(1)
}

func (m *MockFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	args := m.Called(ctx, fundID)
	return args.Error(0)
}

func (m *MockFundRepository) DeactivateFund(ctx context.Context, fundID string, userID string, now time.Time) error {
	args := m.Called(ctx, fundID, userID, now)
	return args.Error(0)
}

// --- Mock CacheInvalidator ---
type MockCacheInvalidator struct {
	mock.Mock
}

func (m *MockCacheInvalidator) Invalidate(resource string) {
	m.Called(resource)
}

// --- Test Suite ---
type FundServiceTestSuite struct {
	suite.Suite
	mockFundRepo    *MockFundRepository
	mockInvalidator *MockCacheInvalidator
	service         portssvc.FundSvcFacade
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.mockFundRepo = new(MockFundRepository)
	suite.mockInvalidator = new(MockCacheInvalidator)
	suite.service = services.NewFundService(
		suite.mockFundRepo,
		services.WithFundCacheInvalidator(suite.mockInvalidator),
	)
}

// --- CreateFund Tests ---
func (suite *FundServiceTestSuite) TestCreateFund_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateFundRequest{
		Name:         "Kas Pembangunan Masjid",
		FundType:     domain.FundPembangunan,
		Description:  "Dana renovasi atap",
		IsRestricted: true,
	}

	suite.mockFundRepo.On("SaveFund", ctx, mock.MatchedBy(func(fund domain.Fund) bool {
		return fund.Name == req.Name &&
			fund.FundType == req.FundType &&
			fund.IsRestricted &&
			fund.IsActive &&
			fund.CreatedBy == userID
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "funds").Once()

	fund, err := suite.service.CreateFund(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(fund)
	suite.NotEmpty(fund.FundID)
	suite.Equal(req.Name, fund.Name)
	suite.True(fund.IsActive)
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestCreateFund_InvalidFundType() {
	ctx := context.Background()

	req := dto.CreateFundRequest{
		Name:     "Kas Misterius",
		FundType: domain.FundType("MISTERIUS"),
	}

	fund, err := suite.service.CreateFund(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// No repo call and no invalidation on rejected input.
	suite.mockFundRepo.AssertNotCalled(suite.T(), "SaveFund", mock.Anything, mock.Anything)
	suite.mockInvalidator.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
}

func (suite *FundServiceTestSuite) TestCreateFund_EmptyName() {
	ctx := context.Background()

	req := dto.CreateFundRequest{Name: "", FundType: domain.FundOperasional}

	fund, err := suite.service.CreateFund(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fund)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DeleteFund Tests ---
func (suite *FundServiceTestSuite) TestDeleteFund_Success() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("DeleteFund", ctx, fundID).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "funds").Once()

	err := suite.service.DeleteFund(ctx, fundID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestDeleteFund_FundInUse() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("DeleteFund", ctx, fundID).Return(apperrors.ErrFundInUse).Once()

	err := suite.service.DeleteFund(ctx, fundID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrFundInUse)
	// A refused deletion must not drop cached views.
	suite.mockInvalidator.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestDeleteFund_ReferencedFundRefusedBeforeDelete() {
	ctx := context.Background()
	fundID := uuid.NewString()

	mockTxnRepo := new(MockTransactionRepository)
	mockTxnRepo.On("ExistsForFund", ctx, fundID).Return(true, nil).Once()
	service := services.NewFundService(
		suite.mockFundRepo,
		services.WithFundCacheInvalidator(suite.mockInvalidator),
		services.WithFundTransactionReader(mockTxnRepo),
	)

	err := service.DeleteFund(ctx, fundID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrFundInUse)
	// The reference check short-circuits; no delete is attempted.
	suite.mockFundRepo.AssertNotCalled(suite.T(), "DeleteFund", mock.Anything, mock.Anything)
	suite.mockInvalidator.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
	mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestDeleteFund_UnreferencedFundPassesPrecheck() {
	ctx := context.Background()
	fundID := uuid.NewString()

	mockTxnRepo := new(MockTransactionRepository)
	mockTxnRepo.On("ExistsForFund", ctx, fundID).Return(false, nil).Once()
	suite.mockFundRepo.On("DeleteFund", ctx, fundID).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "funds").Once()
	service := services.NewFundService(
		suite.mockFundRepo,
		services.WithFundCacheInvalidator(suite.mockInvalidator),
		services.WithFundTransactionReader(mockTxnRepo),
	)

	err := service.DeleteFund(ctx, fundID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
	mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestDeleteFund_NotFound() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("DeleteFund", ctx, fundID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteFund(ctx, fundID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvalidator.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
}

// --- UpdateFund Tests ---
func (suite *FundServiceTestSuite) TestUpdateFund_PartialPatch() {
	ctx := context.Background()
	fundID := uuid.NewString()
	existing := &domain.Fund{
		FundID:   fundID,
		Name:     "Kas Sosial",
		FundType: domain.FundSosial,
		IsActive: true,
	}
	newName := "Kas Sosial Yatim"

	suite.mockFundRepo.On("FindFundByID", ctx, fundID).Return(existing, nil).Once()
	suite.mockFundRepo.On("UpdateFund", ctx, mock.MatchedBy(func(fund domain.Fund) bool {
		return fund.Name == newName && fund.FundType == domain.FundSosial
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "funds").Once()

	updated, err := suite.service.UpdateFund(ctx, fundID, dto.UpdateFundRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(domain.FundSosial, updated.FundType)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestUpdateFund_NotFound() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("FindFundByID", ctx, fundID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateFund(ctx, fundID, dto.UpdateFundRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeactivateFund Tests ---
func (suite *FundServiceTestSuite) TestDeactivateFund_Success() {
	ctx := context.Background()
	fundID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockFundRepo.On("DeactivateFund", ctx, fundID, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "funds").Once()

	err := suite.service.DeactivateFund(ctx, fundID, userID)

	suite.Require().NoError(err)
	suite.mockFundRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

// --- ListFunds Tests ---
func (suite *FundServiceTestSuite) TestListFunds_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockFundRepo.On("ListFunds", ctx, false).Return(nil, expectedErr).Once()

	funds, err := suite.service.ListFunds(ctx, false)

	suite.Require().Error(err)
	suite.Nil(funds)
	suite.ErrorIs(err, expectedErr)
}

func TestFundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}
