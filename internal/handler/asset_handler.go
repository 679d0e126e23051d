package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourorg/options-dashboard/internal/model"
	"github.com/yourorg/options-dashboard/internal/service"
	"github.com/yourorg/options-dashboard/internal/utils"
)

// AssetHandler handles asset registry HTTP requests
type AssetHandler struct {
	assetService *service.AssetService
	logger       *zap.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *service.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		logger:       logger,
	}
}

// GetAssets handles retrieving the asset registry
// GET /api/v1/assets
func (h *AssetHandler) GetAssets(c *gin.Context) {
	assets, err := h.assetService.GetAssets(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get assets", zap.Error(err))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve assets")
		return
	}

	c.JSON(http.StatusOK, assets)
}

// AddAsset handles registering a new asset
// POST /api/v1/assets
func (h *AssetHandler) AddAsset(c *gin.Context) {
	var req model.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.assetService.AddAsset(c.Request.Context(), req.Symbol, req.Name)
	switch {
	case errors.Is(err, model.ErrAssetExists):
		utils.SendErrorResponse(c, http.StatusConflict, "Asset "+req.Symbol+" already exists")
		return
	case errors.Is(err, model.ErrNoInstruments):
		utils.SendErrorResponse(c, http.StatusUnprocessableEntity, "No options found for "+req.Symbol)
		return
	case err != nil:
		h.logger.Error("Failed to add asset", zap.Error(err), zap.String("symbol", req.Symbol))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to add asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Added " + req.Symbol})
}

// ToggleAsset handles flipping an asset's enabled flag
// POST /api/v1/assets/:symbol/toggle
func (h *AssetHandler) ToggleAsset(c *gin.Context) {
	symbol := c.Param("symbol")

	success, err := h.assetService.ToggleAsset(c.Request.Context(), symbol)
	if err != nil {
		h.logger.Error("Failed to toggle asset", zap.Error(err), zap.String("symbol", symbol))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to toggle asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

// RemoveAsset handles deleting a non-default asset
// DELETE /api/v1/assets/:symbol
func (h *AssetHandler) RemoveAsset(c *gin.Context) {
	symbol := c.Param("symbol")

	success, err := h.assetService.RemoveAsset(c.Request.Context(), symbol)
	if err != nil {
		h.logger.Error("Failed to remove asset", zap.Error(err), zap.String("symbol", symbol))
		utils.SendErrorResponse(c, http.StatusInternalServerError, "Failed to remove asset")
		return
	}

	if !success {
		utils.SendErrorResponse(c, http.StatusBadRequest, "Cannot remove default asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
