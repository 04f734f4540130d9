package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shaxowskiy1/currency-exchange-api/internal/apperrors"
	portssvc "github.com/shaxowskiy1/currency-exchange-api/internal/core/ports/services"
	"github.com/shaxowskiy1/currency-exchange-api/internal/dto"
	"github.com/shaxowskiy1/currency-exchange-api/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates
// and the derived conversion endpoint.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(r *gin.Engine, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	r.GET("/exchangeRates", h.listExchangeRates)
	r.POST("/exchangeRates", h.createExchangeRate)
	r.DELETE("/exchangeRates/:id", h.deleteExchangeRate)
	r.GET("/exchangeRate/:id", h.getExchangeRateByID)
	r.GET("/exchangeRate", h.getExchangeRateByName)
	r.GET("/exchange", h.exchange)
}

func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

func (h *exchangeRateHandler) getExchangeRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
			return
		}
		logger.Error("Failed to get exchange rate by id", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) getExchangeRateByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
			return
		}
		logger.Error("Failed to get exchange rate by name", slog.String("name", name), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req); err != nil {
		logger.Error("Failed to create exchange rate",
			slog.Int64("base_currency_id", req.BaseCurrency.ID),
			slog.Int64("target_currency_id", req.TargetCurrency.ID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		return
	}

	logger.Info("Exchange rate created",
		slog.Int64("base_currency_id", req.BaseCurrency.ID),
		slog.Int64("target_currency_id", req.TargetCurrency.ID))
	c.JSON(http.StatusCreated, gin.H{"message": "Exchange rate created"})
}

func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete exchange rate", slog.Int64("id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exchange rate"})
		return
	}

	logger.Info("Exchange rate deleted", slog.Int64("id", id))
	c.Status(http.StatusNoContent)
}

// exchange resolves the rate for from+to and returns it together with
// the requested amount and the rounded converted amount.
func (h *exchangeRateHandler) exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Query("from")
	to := c.Query("to")
	amountStr := c.Query("amount")
	if from == "" || to == "" || amountStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from, to and amount query parameters are required"})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByName(c.Request.Context(), from+to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found for pair " + from + to})
			return
		}
		logger.Error("Failed to resolve exchange rate for conversion",
			slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		return
	}

	conv := rate.Convert(amount)
	c.JSON(http.StatusOK, dto.ToConversionResponse(&conv))
}
