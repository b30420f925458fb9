package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// pipelineHandler triggers reconciliation runs.
type pipelineHandler struct {
	pipelineService portssvc.PipelineSvcFacade
}

// newPipelineHandler creates a new pipelineHandler.
func newPipelineHandler(ps portssvc.PipelineSvcFacade) *pipelineHandler {
	return &pipelineHandler{
		pipelineService: ps,
	}
}

// registerPipelineRoutes registers the pipeline trigger route.
func registerPipelineRoutes(rg *gin.RouterGroup, pipelineService portssvc.PipelineSvcFacade) {
	h := newPipelineHandler(pipelineService)

	rg.POST("/zones/:zone_id/pipeline/run", h.runPipeline)
}

// runPipeline godoc
// @Summary Run the reconciliation pipeline for a zone
// @Description Resolves, normalizes and reconciles the latest scraped snapshot into the rate table. Safe to run twice for the same snapshot.
// @Tags pipeline
// @Produce  json
// @Param   zone_id path string true "Zone ID"
// @Success 200 {object} dto.PipelineRunSummary
// @Failure 404 {object} map[string]string "Zone or source not found"
// @Failure 500 {object} map[string]string "Pipeline run failed"
// @Security ApiKeyAuth
// @Router /zones/{zone_id}/pipeline/run [post]
func (h *pipelineHandler) runPipeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	zoneID := c.Param("zone_id")

	summary, err := h.pipelineService.RunPipeline(c.Request.Context(), zoneID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Zone or source not found", slog.String("zone_id", zoneID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone or source not found"})
		} else {
			logger.Error("Pipeline run failed", slog.String("error", err.Error()), slog.String("zone_id", zoneID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Pipeline run failed"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
