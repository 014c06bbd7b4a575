package services_test

import (
	"context"
	"testing"

	"github.com/afif23170si-ui/nuruljannah-backend/internal/apperrors"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/domain"
	portsrepo "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/repositories"
	portssvc "github.com/afif23170si-ui/nuruljannah-backend/internal/core/ports/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/core/services"
	"github.com/afif23170si-ui/nuruljannah-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ExistsForFund(ctx context.Context, fundID string) (bool, error) {
	args := m.Called(ctx, fundID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockFundRepo    *MockFundRepository
	mockInvalidator *MockCacheInvalidator
	service         portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockFundRepo = new(MockFundRepository)
	suite.mockInvalidator = new(MockCacheInvalidator)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		services.WithTransactionCacheInvalidator(suite.mockInvalidator),
		services.WithFundReader(suite.mockFundRepo),
	)
}

// --- CreateTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:          domain.Income,
		Category:      domain.CategoryInfaq,
		Amount:        decimal.NewFromInt(150000),
		Date:          "2025-03-14",
		Description:   "Infaq Jumat",
		PaymentMethod: "CASH",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income &&
			txn.Category == domain.CategoryInfaq &&
			txn.Amount.Equal(decimal.NewFromInt(150000)) &&
			txn.Date.Format("2006-01-02") == "2025-03-14" &&
			txn.CreatedBy == userID
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "finance").Once()

	txn, err := suite.service.CreateTransaction(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ZeroAmountAccepted() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:        domain.Income,
		Category:    domain.CategoryInfaq,
		Amount:      decimal.Zero,
		Date:        "2025-03-14",
		Description: "Kotak infaq kosong",
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.IsZero() && txn.Type == domain.Income
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "finance").Once()

	txn, err := suite.service.CreateTransaction(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.IsZero())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Expense,
		Category: domain.CategoryOperasional,
		Amount:   decimal.NewFromInt(-50000),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Rejected input never reaches the store and never drops caches.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.mockInvalidator.AssertNotCalled(suite.T(), "Invalidate", mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_FractionalAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Income,
		Category: domain.CategoryDonasi,
		Amount:   decimal.NewFromFloat(1000.50),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	ctx := context.Background()
	// OPERASIONAL is an expense category, not valid for INCOME.
	req := dto.CreateTransactionRequest{
		Type:     domain.Income,
		Category: domain.CategoryOperasional,
		Amount:   decimal.NewFromInt(100000),
		Date:     "2025-03-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Income,
		Category: domain.CategoryInfaq,
		Amount:   decimal.NewFromInt(100000),
		Date:     "14-03-2025",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownFund() {
	ctx := context.Background()
	fundID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:     domain.Income,
		Category: domain.CategoryZakat,
		Amount:   decimal.NewFromInt(500000),
		Date:     "2025-03-14",
		FundID:   fundID,
	}

	suite.mockFundRepo.On("FindFundByID", ctx, fundID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- ListTransactions Tests ---
func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidRange() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{From: "2025-06-01", To: "2025-01-01"}

	txns, err := suite.service.ListTransactions(ctx, params)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FilterMapping() {
	ctx := context.Background()
	fundID := uuid.NewString()
	params := dto.ListTransactionsParams{
		FundID: fundID,
		Type:   "EXPENSE",
		From:   "2025-01-01",
		To:     "2025-12-31",
		Limit:  50,
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(filter portsrepo.TransactionFilter) bool {
		return filter.FundID == fundID &&
			filter.Type == domain.Expense &&
			filter.DateFrom != nil && filter.DateFrom.Format("2006-01-02") == "2025-01-01" &&
			filter.DateTo != nil && filter.DateTo.Format("2006-01-02") == "2025-12-31" &&
			filter.Limit == 50
	})).Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, params)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- UpdateTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestUpdateTransaction_CategoryRevalidation() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Income,
		Category:      domain.CategoryInfaq,
		Amount:        decimal.NewFromInt(100000),
	}
	badCategory := domain.CategoryOperasional

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{Category: &badCategory}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID: txnID,
		Type:          domain.Expense,
		Category:      domain.CategoryOperasional,
		Amount:        decimal.NewFromInt(75000),
	}
	newAmount := decimal.NewFromInt(80000)

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount)
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "finance").Once()

	txn, err := suite.service.UpdateTransaction(ctx, txnID, dto.UpdateTransactionRequest{Amount: &newAmount}, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

// --- DeleteTransaction Tests ---
func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "finance").Once()

	err := suite.service.DeleteTransaction(ctx, txnID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockInvalidator.AssertExpectations(suite.T())
}

// --- RecordPublicDonation Tests ---
func (suite *TransactionServiceTestSuite) TestRecordPublicDonation_Success() {
	ctx := context.Background()
	req := dto.PublicDonationRequest{
		DonorName:     "Hamba Allah",
		Amount:        decimal.NewFromInt(250000),
		Category:      "DONASI",
		PaymentMethod: "TRANSFER",
		Message:       "Semoga berkah",
		IsAnonymous:   true,
	}

	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Type == domain.Income &&
			txn.Category == domain.CategoryDonasi &&
			txn.CreatedBy == "system" &&
			txn.IsAnonymous
	})).Return(nil).Once()
	suite.mockInvalidator.On("Invalidate", "finance").Once()

	txn, err := suite.service.RecordPublicDonation(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("system", txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRecordPublicDonation_NegativeAmount() {
	ctx := context.Background()
	req := dto.PublicDonationRequest{
		DonorName:     "Budi",
		Amount:        decimal.NewFromInt(-10000),
		Category:      "INFAQ",
		PaymentMethod: "CASH",
	}

	txn, err := suite.service.RecordPublicDonation(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
