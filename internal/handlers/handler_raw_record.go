package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// rawRecordHandler receives scraped batches and exposes the stored raw feed.
type rawRecordHandler struct {
	rawRecordService portssvc.RawRecordSvcFacade
}

// newRawRecordHandler creates a new rawRecordHandler.
func newRawRecordHandler(rs portssvc.RawRecordSvcFacade) *rawRecordHandler {
	return &rawRecordHandler{
		rawRecordService: rs,
	}
}

// registerRawRecordRoutes registers raw record ingestion and inspection routes.
func registerRawRecordRoutes(rg *gin.RouterGroup, rawRecordService portssvc.RawRecordSvcFacade) {
	h := newRawRecordHandler(rawRecordService)

	records := rg.Group("/zones/:zone_id/raw-records")
	{
		records.POST("", h.ingestRawRecords)
		records.GET("", h.listRecentRawRecords)
	}
}

// ingestRawRecords godoc
// @Summary Ingest a scraped batch
// @Description Stores the raw lines of one scrape, replacing any earlier scrape of the same publication dates
// @Tags raw-records
// @Accept  json
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   batch body dto.IngestRawRecordsRequest true "Scraped lines"
// @Success 201 {object} dto.IngestRawRecordsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 500 {object} map[string]string "Failed to ingest records"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/raw-records [post]
func (h *rawRecordHandler) ingestRawRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var req dto.IngestRawRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IngestRawRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	stored, err := h.rawRecordService.IngestRawRecords(c.Request.Context(), zoneID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No source configured for zone", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "No source configured for zone"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error ingesting records", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to ingest raw records in service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to ingest records"})
		}
		return
	}

	logger.Info("Raw records ingested", slog.String("zone_id", zoneID), slog.Int("stored", stored))
	c.JSON(http.StatusCreated, dto.IngestRawRecordsResponse{Stored: stored})
}

// listRecentRawRecords godoc
// @Summary List recently scraped raw records
// @Tags raw-records
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   limit query int false "Max rows to return" default(100)
// @Success 200 {array} dto.RawRecordResponse
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/raw-records [get]
func (h *rawRecordHandler) listRecentRawRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := h.rawRecordService.ListRecentRawRecords(c.Request.Context(), zoneID, limit)
	if err != nil {
		logger.Error("Failed to list raw records from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	recordResponses := make([]dto.RawRecordResponse, len(records))
	for i := range records {
		recordResponses[i] = dto.ToRawRecordResponse(&records[i])
	}

	c.JSON(http.StatusOK, recordResponses)
}
