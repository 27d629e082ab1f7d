package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/dto"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
)

// ScanHandler serves token presentation and token lifecycle operations.
type ScanHandler struct {
	tokenService    services.TokenSvcFacade
	transferService services.TransferSvcFacade
}

func NewScanHandler(tokenService services.TokenSvcFacade, transferService services.TransferSvcFacade) *ScanHandler {
	return &ScanHandler{tokenService: tokenService, transferService: transferService}
}

// Scan godoc
// @Summary Present a wallet token for verification
// @Description Verifies a scanned token and returns the owner's wallet snapshot. Records the scan; moves no money.
// @Tags tokens
// @Accept json
// @Produce json
// @Param scan body dto.ScanRequest true "Scanned token value"
// @Success 200 {object} dto.ScanResponse
// @Failure 400 {object} map[string]string "Token inactive or expired"
// @Failure 404 {object} map[string]string "Token does not resolve"
// @Security BearerAuth
// @Router /scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	scannerID, _, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	tok, wallet, err := h.transferService.PresentToken(c.Request.Context(), req.Token, scannerID)
	if err != nil {
		respondWithError(c, err, "Failed to verify token")
		return
	}

	logger.Info("Token scanned", slog.String("userID", tok.UserID), slog.String("scannerID", scannerID))
	c.JSON(http.StatusOK, dto.ToScanResponse(tok, wallet))
}

// Regenerate godoc
// @Summary Replace a user's wallet token
// @Description Issues a fresh token for the user. The previous value stops resolving immediately.
// @Tags tokens
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.TokenResponse
// @Failure 404 {object} map[string]string "User has no token"
// @Security BearerAuth
// @Router /tokens/{userID}/regenerate [post]
func (h *ScanHandler) Regenerate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID := c.Param("userID")
	tok, err := h.tokenService.Regenerate(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to regenerate token")
		return
	}

	logger.Info("Token regenerated", slog.String("userID", userID))
	c.JSON(http.StatusOK, dto.ToTokenResponse(tok))
}

// Deactivate godoc
// @Summary Deactivate a user's wallet token
// @Tags tokens
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "Token deactivated"
// @Failure 404 {object} map[string]string "User has no token"
// @Security BearerAuth
// @Router /tokens/{userID}/deactivate [post]
func (h *ScanHandler) Deactivate(c *gin.Context) {
	if err := h.tokenService.Deactivate(c.Request.Context(), c.Param("userID")); err != nil {
		respondWithError(c, err, "Failed to deactivate token")
		return
	}
	c.Status(http.StatusNoContent)
}

// Reactivate godoc
// @Summary Reactivate a user's wallet token
// @Tags tokens
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "Token reactivated"
// @Failure 404 {object} map[string]string "User has no token"
// @Security BearerAuth
// @Router /tokens/{userID}/reactivate [post]
func (h *ScanHandler) Reactivate(c *gin.Context) {
	if err := h.tokenService.Reactivate(c.Request.Context(), c.Param("userID")); err != nil {
		respondWithError(c, err, "Failed to reactivate token")
		return
	}
	c.Status(http.StatusNoContent)
}
