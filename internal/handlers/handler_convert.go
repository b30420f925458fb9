package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// convertHandler exposes the cross-currency conversion calculator.
type convertHandler struct {
	converterService portssvc.ConverterSvc
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConverterSvc) *convertHandler {
	return &convertHandler{
		converterService: cs,
	}
}

// registerConvertRoutes registers the conversion route.
func registerConvertRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvc) {
	h := newConvertHandler(converterService)

	rg.GET("/zones/:zone_id/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies of a zone
// @Description Uses the zone's normalized rates as a bridge; current rates by default, or the rates of an exact past date
// @Tags convert
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   from query string true "Source currency code (3 letters)"
// @Param   to query string true "Target currency code (3 letters)"
// @Param   amount query string true "Positive decimal amount"
// @Param   date query string false "Publication date (YYYY-MM-DD)"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone or rate not found"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/convert [get]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var query dto.ConvertQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(query.Amount))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}

	var asOf *time.Time
	if query.Date != "" {
		parsed, err := time.Parse("2006-01-02", query.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		asOf = &parsed
	}

	result, err := h.converterService.Convert(c.Request.Context(), zoneID, query.From, query.To, amount, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateNotFound) {
			logger.Warn("Rate not found for conversion", slog.String("zone_id", zoneID), slog.String("from", query.From), slog.String("to", query.To))
			c.JSON(http.StatusNotFound, gin.H{"error": "rate not found"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to convert in service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
