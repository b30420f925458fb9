package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// zoneHandler handles HTTP requests for zones, their sources and their
// currency activations.
type zoneHandler struct {
	zoneService portssvc.ZoneSvcFacade
}

// newZoneHandler creates a new zoneHandler.
func newZoneHandler(zs portssvc.ZoneSvcFacade) *zoneHandler {
	return &zoneHandler{
		zoneService: zs,
	}
}

// registerZoneRoutes registers zone administration routes.
func registerZoneRoutes(rg *gin.RouterGroup, zoneService portssvc.ZoneSvcFacade) {
	h := newZoneHandler(zoneService)

	zones := rg.Group("/zones")
	{
		zones.POST("", h.createZone)
		zones.GET("", h.listZones)
		zones.GET("/:zone_id", h.getZoneByID)
		zones.PATCH("/:zone_id", h.updateZone)
		zones.PUT("/:zone_id/source", h.setSource)
		zones.GET("/:zone_id/source", h.getSource)
		zones.PUT("/:zone_id/activations/:code", h.setActivation)
		zones.GET("/:zone_id/activations", h.listActivations)
	}
}

// createZone godoc
// @Summary Create a new zone
// @Description Creates a monetary zone, optionally with its base currency
// @Tags zones
// @Accept  json
// @Produce  json
// @Param   zone body dto.CreateZoneRequest true "Zone details"
// @Success 201 {object} dto.ZoneResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create zone"
// @Security ApiKeyAuth
// @Router /zones [post]
func (h *zoneHandler) createZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateZone", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	zone, err := h.zoneService.CreateZone(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating zone", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create zone in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create zone"})
		}
		return
	}

	logger.Info("Zone created successfully", slog.String("zone_id", zone.ZoneID))
	c.JSON(http.StatusCreated, dto.ToZoneResponse(zone))
}

// listZones godoc
// @Summary List all zones
// @Tags zones
// @Produce  json
// @Success 200 {array} dto.ZoneResponse
// @Failure 500 {object} map[string]string "Failed to list zones"
// @Security ApiKeyAuth
// @Router /zones [get]
func (h *zoneHandler) listZones(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	zones, err := h.zoneService.ListZones(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list zones from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list zones"})
		return
	}

	zoneResponses := make([]dto.ZoneResponse, len(zones))
	for i := range zones {
		zoneResponses[i] = dto.ToZoneResponse(&zones[i])
	}

	c.JSON(http.StatusOK, zoneResponses)
}

// getZoneByID godoc
// @Summary Get a zone by ID
// @Tags zones
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Success 200 {object} dto.ZoneResponse
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to retrieve zone"
// @Security ApiKeyAuth
// @Router /zones/{zone_id} [get]
func (h *zoneHandler) getZoneByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	zone, err := h.zoneService.GetZoneByID(c.Request.Context(), zoneID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			logger.Error("Failed to get zone from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve zone"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToZoneResponse(zone))
}

// updateZone godoc
// @Summary Update a zone
// @Description Toggles the active flag or changes the base currency
// @Tags zones
// @Accept  json
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   zone body dto.UpdateZoneRequest true "Fields to update"
// @Success 200 {object} dto.ZoneResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to update zone"
// @Security ApiKeyAuth
// @Router /zones/{zone_id} [patch]
func (h *zoneHandler) updateZone(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var req dto.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateZone", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	zone, err := h.zoneService.UpdateZone(c.Request.Context(), zoneID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating zone", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update zone in service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update zone"})
		}
		return
	}

	logger.Info("Zone updated successfully", slog.String("zone_id", zoneID))
	c.JSON(http.StatusOK, dto.ToZoneResponse(zone))
}

// setSource godoc
// @Summary Configure a zone's data source
// @Description Sets or replaces the single source feeding the zone
// @Tags zones
// @Accept  json
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   source body dto.SetSourceRequest true "Source details"
// @Success 200 {object} dto.SourceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to set source"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/source [put]
func (h *zoneHandler) setSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	var req dto.SetSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	source, err := h.zoneService.SetSource(c.Request.Context(), zoneID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting source", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set source in service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set source"})
		}
		return
	}

	logger.Info("Source configured successfully", slog.String("zone_id", zoneID), slog.String("scraper_name", source.ScraperName))
	c.JSON(http.StatusOK, dto.ToSourceResponse(source))
}

// getSource godoc
// @Summary Get a zone's data source
// @Tags zones
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Success 200 {object} dto.SourceResponse
// @Failure 404 {object} map[string]string "Source not found"
// @Failure 500 {object} map[string]string "Failed to retrieve source"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/source [get]
func (h *zoneHandler) getSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	source, err := h.zoneService.GetSource(c.Request.Context(), zoneID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Source not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		} else {
			logger.Error("Failed to get source from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve source"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSourceResponse(source))
}

// setActivation godoc
// @Summary Activate or deactivate a currency in a zone
// @Tags zones
// @Accept  json
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Param   code path string true "Currency Code (3 letters)"
// @Param   activation body dto.SetActivationRequest true "Activation flag"
// @Success 200 {object} dto.ActivationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Zone or currency not found"
// @Failure 500 {object} map[string]string "Failed to set activation"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/activations/{code} [put]
func (h *zoneHandler) setActivation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")
	currencyCode := strings.ToUpper(c.Param("code"))

	var req dto.SetActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetActivation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	activation, err := h.zoneService.SetActivation(c.Request.Context(), zoneID, currencyCode, *req.IsActive)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone or currency not found", slog.String("zone_id", zoneID), slog.String("currency_code", currencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone or currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting activation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set activation in service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set activation"})
		}
		return
	}

	logger.Info("Activation updated", slog.String("zone_id", zoneID), slog.String("currency_code", currencyCode), slog.Bool("is_active", activation.IsActive))
	c.JSON(http.StatusOK, dto.ToActivationResponse(activation))
}

// listActivations godoc
// @Summary List a zone's currency activations
// @Tags zones
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Success 200 {array} dto.ActivationResponse
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Failed to list activations"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/activations [get]
func (h *zoneHandler) listActivations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	activations, err := h.zoneService.ListActivations(c.Request.Context(), zoneID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
		} else {
			logger.Error("Failed to list activations from service", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activations"})
		}
		return
	}

	activationResponses := make([]dto.ActivationResponse, len(activations))
	for i := range activations {
		activationResponses[i] = dto.ToActivationResponse(&activations[i])
	}

	c.JSON(http.StatusOK, activationResponses)
}
