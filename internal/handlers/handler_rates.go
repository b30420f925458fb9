package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// rateHandler exposes the normalized rate table of a zone.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers rate read routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/zones/:zone_id/rates", h.listRates)
	rg.GET("/zones/:zone_id/currencies", h.listZoneCurrencies)
}

// listRates godoc
// @Summary List normalized rates for a zone
// @Description Without date bounds only current rates are returned; with bounds, the full history within them
// @Tags rates
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   currency query string false "Comma-separated currency codes"
// @Param   startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param   limit query int false "Max rows to return"
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var query dto.ListRatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	listed, err := h.rateService.ListRates(c.Request.Context(), zoneID, query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error listing rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list rates from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		}
		return
	}

	c.JSON(http.StatusOK, listed)
}

// listZoneCurrencies godoc
// @Summary List the currencies usable in a zone
// @Description Currencies with a current rate when no date is given, or with a rate on exactly that date
// @Tags rates
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   date query string false "Publication date (YYYY-MM-DD)"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/currencies [get]
func (h *rateHandler) listZoneCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	currencies, err := h.rateService.ListZoneCurrencies(c.Request.Context(), zoneID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			logger.Error("Failed to list zone currencies from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		}
		return
	}

	currencyResponses := make([]dto.CurrencyResponse, len(currencies))
	for i := range currencies {
		currencyResponses[i] = dto.ToCurrencyResponse(&currencies[i])
	}

	c.JSON(http.StatusOK, currencyResponses)
}
