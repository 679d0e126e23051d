package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/service"
	"github.com/yourorg/options-dashboard/internal/utils"
)

// OptionsHandler handles instrument view HTTP requests
type OptionsHandler struct {
	optionsService *service.OptionsService
	logger         *zap.Logger
}

// NewOptionsHandler creates a new options handler
func NewOptionsHandler(optionsService *service.OptionsService, logger *zap.Logger) *OptionsHandler {
	return &OptionsHandler{
		optionsService: optionsService,
		logger:         logger,
	}
}

// GetOptions handles retrieving filtered instrument records for an asset
// GET /api/v1/options/:asset
func (h *OptionsHandler) GetOptions(c *gin.Context) {
	asset := c.Param("asset")
	expiry := c.DefaultQuery("expiry", service.FilterAll)
	optionType := c.DefaultQuery("type", service.FilterAll)

	options, err := h.optionsService.GetOptions(c.Request.Context(), asset, expiry, optionType)
	if err != nil {
		h.logger.Error("Failed to get options",
			zap.Error(err),
			zap.String("asset", asset),
			zap.String("expiry", expiry),
			zap.String("type", optionType))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve options")
		return
	}

	c.JSON(http.StatusOK, options)
}

// GetExpiries handles retrieving the available expiry codes for an asset
// GET /api/v1/expiries/:asset
func (h *OptionsHandler) GetExpiries(c *gin.Context) {
	asset := c.Param("asset")

	expiries, err := h.optionsService.GetExpiries(c.Request.Context(), asset)
	if err != nil {
		h.logger.Error("Failed to get expiries", zap.Error(err), zap.String("asset", asset))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve expiries")
		return
	}

	c.JSON(http.StatusOK, expiries)
}
