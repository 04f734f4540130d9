package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shaxowskiy1/currency-exchange-api/internal/apperrors"
	"github.com/shaxowskiy1/currency-exchange-api/internal/core/domain"
	portssvc "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/services"
	"github.com/shaxowskiy1/currency-exchange-api/internal/dto"
	"github.com/shaxowskiy1/currency-exchange-api/internal/handlers"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRateByName(ctx context.Context, name string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockExchangeRateService) UpdateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, id int64) error {
	args := m.Called(ctx, req, id)
	return args.Error(0)
}

func (m *MockExchangeRateService) DeleteExchangeRate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock CurrencyService (routes require the full container) ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, req dto.UpdateCurrencyRequest, id int64) error {
	args := m.Called(ctx, req, id)
	return args.Error(0)
}

func (m *MockCurrencyService) DeleteCurrency(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockRateSvc  *MockExchangeRateService
	mockCurrency *MockCurrencyService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockRateSvc = new(MockExchangeRateService)
	suite.mockCurrency = new(MockCurrencyService)
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Currency:     suite.mockCurrency,
		ExchangeRate: suite.mockRateSvc,
	})
}

func (suite *ExchangeRateHandlerTestSuite) performRequest(method, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, nil)
	suite.Require().NoError(err)
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

// --- Test Cases ---

func (suite *ExchangeRateHandlerTestSuite) TestExchange_Success() {
	rate := &domain.ExchangeRate{
		ID:             5,
		Rate:           decimal.RequireFromString("0.92"),
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD", Fullname: "US Dollar", Sign: "$"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR", Fullname: "Euro", Sign: "€"},
	}
	suite.mockRateSvc.On("GetExchangeRateByName", mock.Anything, "USDEUR").Return(rate, nil).Once()

	rr := suite.performRequest(http.MethodGet, "/exchange?from=USD&to=EUR&amount=10")

	suite.Equal(http.StatusOK, rr.Code)

	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.ID)
	suite.Equal("USD", resp.BaseCurrency.Code)
	suite.Equal("EUR", resp.TargetCurrency.Code)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("10")))
	suite.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("9.20")))

	suite.mockRateSvc.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestExchange_RoundsHalfUp() {
	rate := &domain.ExchangeRate{
		ID:             6,
		Rate:           decimal.RequireFromString("0.005"),
		BaseCurrency:   domain.Currency{ID: 1, Code: "USD"},
		TargetCurrency: domain.Currency{ID: 2, Code: "EUR"},
	}
	suite.mockRateSvc.On("GetExchangeRateByName", mock.Anything, "USDEUR").Return(rate, nil).Once()

	rr := suite.performRequest(http.MethodGet, "/exchange?from=USD&to=EUR&amount=1")

	suite.Equal(http.StatusOK, rr.Code)

	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.True(resp.ConvertedAmount.Equal(decimal.RequireFromString("0.01")))
}

func (suite *ExchangeRateHandlerTestSuite) TestExchange_UnknownPairReturns404() {
	suite.mockRateSvc.On("GetExchangeRateByName", mock.Anything, "EURUSD").
		Return(nil, apperrors.ErrNotFound).Once()

	rr := suite.performRequest(http.MethodGet, "/exchange?from=EUR&to=USD&amount=10")

	suite.Equal(http.StatusNotFound, rr.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestExchange_MissingParamsReturn400() {
	rr := suite.performRequest(http.MethodGet, "/exchange?from=USD&amount=10")

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "GetExchangeRateByName", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestExchange_BadAmountReturns400() {
	rr := suite.performRequest(http.MethodGet, "/exchange?from=USD&to=EUR&amount=ten")

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "GetExchangeRateByName", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRateByID_BadIDReturns400() {
	rr := suite.performRequest(http.MethodGet, "/exchangeRate/abc")

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockRateSvc.AssertNotCalled(suite.T(), "GetExchangeRateByID", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestDeleteExchangeRate_Returns204() {
	suite.mockRateSvc.On("DeleteExchangeRate", mock.Anything, int64(5)).Return(nil).Once()

	rr := suite.performRequest(http.MethodDelete, "/exchangeRates/5")

	suite.Equal(http.StatusNoContent, rr.Code)
	suite.mockRateSvc.AssertExpectations(suite.T())
}

func TestExchangeRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
