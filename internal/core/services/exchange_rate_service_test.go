package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shaxowskiy1/currency-exchange-api/internal/apperrors"
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	portscache "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/cache"
	portssvc "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/services"
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/services"
	"github.com/shaxowskiy1/currency-exchange-api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rate domain.ExchangeRate, id int64) error {
	args := m.Called(ctx, rate, id)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) DeleteExchangeRate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockExchangeRateRepository
	mockCache *MockCache
	service   portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.mockCache = new(MockCache)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewExchangeRateService(suite.mockRepo, suite.mockCache, testTTL, logger)
}

func usdEurRate() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ID:             5,
		Rate:           decimal.RequireFromString("0.92"),
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD", Fullname: "US Dollar", Sign: "$"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR", Fullname: "Euro", Sign: "€"},
	}
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRateByID_CacheHit() {
	ctx := context.Background()
	payload := `{"id":5,"rate":"0.92",` +
		`"base_currency":{"id":1,"code":"USD","fullname":"US Dollar","sign":"$"},` +
		`"target_currency":{"id":2,"code":"EUR","fullname":"Euro","sign":"€"}}`

	suite.mockCache.On("Get", ctx, "exchange_rate:id:5").Return(payload, nil).Once()

	rate, err := suite.service.GetExchangeRateByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal(int64(5), rate.ID)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.92")))
	suite.Equal("USD", rate.BaseCurrency.Code)
	suite.Equal("EUR", rate.TargetCurrency.Code)

	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRateByID", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRateByID_CacheMissPopulates() {
	ctx := context.Background()
	stored := usdEurRate()

	suite.mockCache.On("Get", ctx, "exchange_rate:id:5").Return("", portscache.ErrCacheMiss).Once()
	suite.mockRepo.On("FindExchangeRateByID", ctx, int64(5)).Return(stored, nil).Once()
	suite.mockCache.On("Set", ctx, "exchange_rate:id:5", mock.Anything, testTTL).Return(nil).Once()

	rate, err := suite.service.GetExchangeRateByID(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(*stored, *rate)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRateByName_CrossPopulatesIDKey() {
	ctx := context.Background()
	stored := usdEurRate()

	suite.mockCache.On("Get", ctx, "exchange_rate:name:USDEUR").Return("", portscache.ErrCacheMiss).Once()
	suite.mockRepo.On("FindExchangeRateByName", ctx, "USDEUR").Return(stored, nil).Once()
	suite.mockCache.On("Set", ctx, "exchange_rate:name:USDEUR", mock.Anything, testTTL).Return(nil).Once()
	suite.mockCache.On("Set", ctx, "exchange_rate:id:5", mock.Anything, testTTL).Return(nil).Once()

	rate, err := suite.service.GetExchangeRateByName(ctx, "USDEUR")

	suite.Require().NoError(err)
	suite.Equal(*stored, *rate)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRateByName_Directional() {
	ctx := context.Background()

	suite.mockCache.On("Get", ctx, "exchange_rate:name:EURUSD").Return("", portscache.ErrCacheMiss).Once()
	suite.mockRepo.On("FindExchangeRateByName", ctx, "EURUSD").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetExchangeRateByName(ctx, "EURUSD")

	// Only USDEUR exists; the reversed pair is its own lookup and misses.
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(rate)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_CachesNonEmpty() {
	ctx := context.Background()
	stored := []domain.ExchangeRate{*usdEurRate()}

	suite.mockCache.On("Get", ctx, "exchange_rate:all").Return("", portscache.ErrCacheMiss).Once()
	suite.mockRepo.On("ListExchangeRates", ctx).Return(stored, nil).Once()
	suite.mockCache.On("Set", ctx, "exchange_rate:all", mock.Anything, testTTL).Return(nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.Equal(stored, rates)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_EmptyNotCached() {
	ctx := context.Background()

	suite.mockCache.On("Get", ctx, "exchange_rate:all").Return("", portscache.ErrCacheMiss).Once()
	suite.mockRepo.On("ListExchangeRates", ctx).Return([]domain.ExchangeRate{}, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.Empty(rates)
	suite.NotNil(rates)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_InvalidatesOnlyListKey() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		Rate:           decimal.RequireFromString("0.92"),
		BaseCurrency:   dto.CurrencyRef{ID: 1},
		TargetCurrency: dto.CurrencyRef{ID: 2},
	}

	suite.mockRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.BaseCurrency.ID == 1 && r.TargetCurrency.ID == 2 && r.Rate.Equal(req.Rate)
	})).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:all"}).Return(nil).Once()

	err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_InvalidatesIDNameAndListKeys() {
	ctx := context.Background()
	current := usdEurRate()
	req := dto.CreateExchangeRateRequest{
		Rate:           decimal.RequireFromString("0.95"),
		BaseCurrency:   dto.CurrencyRef{ID: 1},
		TargetCurrency: dto.CurrencyRef{ID: 2},
	}

	suite.mockRepo.On("FindExchangeRateByID", ctx, int64(5)).Return(current, nil).Once()
	suite.mockRepo.On("UpdateExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.Rate.Equal(req.Rate)
	}), int64(5)).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:id:5", "exchange_rate:name:USDEUR", "exchange_rate:all"}).Return(nil).Once()

	err := suite.service.UpdateExchangeRate(ctx, req, 5)

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestDeleteExchangeRate_InvalidatesIDNameAndListKeys() {
	ctx := context.Background()
	current := usdEurRate()

	suite.mockRepo.On("FindExchangeRateByID", ctx, int64(5)).Return(current, nil).Once()
	suite.mockRepo.On("DeleteExchangeRate", ctx, int64(5)).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:id:5"}).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:name:USDEUR"}).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:all"}).Return(nil).Once()

	err := suite.service.DeleteExchangeRate(ctx, 5)

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestDeleteExchangeRate_UnknownIDStillClearsListKey() {
	ctx := context.Background()

	suite.mockRepo.On("FindExchangeRateByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("DeleteExchangeRate", ctx, int64(99)).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:id:99"}).Return(nil).Once()
	suite.mockCache.On("Delete", ctx, []string{"exchange_rate:all"}).Return(nil).Once()

	err := suite.service.DeleteExchangeRate(ctx, 99)

	suite.Require().NoError(err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestDeleteExchangeRate_StoreErrorPropagates() {
	ctx := context.Background()
	current := usdEurRate()

	suite.mockRepo.On("FindExchangeRateByID", ctx, int64(5)).Return(current, nil).Once()
	suite.mockRepo.On("DeleteExchangeRate", ctx, int64(5)).Return(errors.New("store unavailable")).Once()

	err := suite.service.DeleteExchangeRate(ctx, 5)

	suite.Require().Error(err)
	suite.mockCache.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
