package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoneline/fx_rates_backend/internal/apperrors"
	portssvc "github.com/zoneline/fx_rates_backend/internal/core/ports/services"
	"github.com/zoneline/fx_rates_backend/internal/dto"
	"github.com/zoneline/fx_rates_backend/internal/middleware"
)

// aliasHandler handles HTTP requests for the alias dictionary.
type aliasHandler struct {
	aliasService portssvc.AliasSvcFacade
}

// newAliasHandler creates a new aliasHandler.
func newAliasHandler(as portssvc.AliasSvcFacade) *aliasHandler {
	return &aliasHandler{
		aliasService: as,
	}
}

// registerAliasRoutes registers alias dictionary routes.
func registerAliasRoutes(rg *gin.RouterGroup, aliasService portssvc.AliasSvcFacade) {
	h := newAliasHandler(aliasService)

	aliases := rg.Group("/aliases")
	{
		aliases.PUT("/:alias", h.saveAlias)
		aliases.GET("", h.listAliases)
		aliases.DELETE("/:alias", h.deleteAlias)
	}
}

// saveAlias godoc
// @Summary Create or update an alias
// @Description Binds a raw scraped label to an official currency code
// @Tags aliases
// @Accept  json
// @Produce  json
// @Param   alias path string true "Alias (raw label)"
// @Param   binding body dto.SaveAliasRequest true "Target currency"
// @Success 200 {object} dto.AliasResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save alias"
// @Security ApiKeyAuth
// @Router /aliases/{alias} [put]
func (h *aliasHandler) saveAlias(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alias := c.Param("alias")

	var req dto.SaveAliasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveAlias", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	saved, err := h.aliasService.SaveAlias(c.Request.Context(), alias, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving alias", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save alias in service", slog.String("error", err.Error()), slog.String("alias", alias))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save alias"})
		}
		return
	}

	logger.Info("Alias saved", slog.String("alias", saved.Alias), slog.String("currency_code", saved.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToAliasResponse(saved))
}

// listAliases godoc
// @Summary List all aliases
// @Tags aliases
// @Produce  json
// @Success 200 {array} dto.AliasResponse
// @Failure 500 {object} map[string]string "Failed to list aliases"
// @Security ApiKeyAuth
// @Router /aliases [get]
func (h *aliasHandler) listAliases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	aliases, err := h.aliasService.ListAliases(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list aliases from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list aliases"})
		return
	}

	aliasResponses := make([]dto.AliasResponse, len(aliases))
	for i := range aliases {
		aliasResponses[i] = dto.ToAliasResponse(&aliases[i])
	}

	c.JSON(http.StatusOK, aliasResponses)
}

// deleteAlias godoc
// @Summary Delete an alias
// @Tags aliases
// @Produce  json
// @Param   alias path string true "Alias (raw label)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Alias not found"
// @Failure 500 {object} map[string]string "Failed to delete alias"
// @Security ApiKeyAuth
// @Router /aliases/{alias} [delete]
func (h *aliasHandler) deleteAlias(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alias := c.Param("alias")

	if err := h.aliasService.DeleteAlias(c.Request.Context(), alias); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Alias not found", slog.String("alias", alias))
			c.JSON(http.StatusNotFound, gin.H{"error": "Alias not found"})
		} else {
			logger.Error("Failed to delete alias in service", slog.String("error", err.Error()), slog.String("alias", alias))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alias"})
		}
		return
	}

	logger.Info("Alias deleted", slog.String("alias", alias))
	c.Status(http.StatusNoContent)
}
