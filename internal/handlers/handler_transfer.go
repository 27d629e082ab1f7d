package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/dto"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
)

// TransferHandler serves the token-authorized value transfer endpoint.
type TransferHandler struct {
	transferService services.TransferSvcFacade
}

func NewTransferHandler(transferService services.TransferSvcFacade) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// Transfer godoc
// @Summary Execute a token-authorized transfer
// @Description Credits or debits the wallet behind a scanned token. The operator's role decides the allowed direction. Commits atomically with its movement record.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Rejected transfer"
// @Failure 403 {object} map[string]string "Role not allowed for this direction"
// @Failure 404 {object} map[string]string "Token does not resolve"
// @Security BearerAuth
// @Router /transfer [post]
func (h *TransferHandler) Transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actorID, actorRole, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	movement, err := h.transferService.Transfer(c.Request.Context(), req, actorID, actorRole)
	if err != nil {
		respondWithError(c, err, "Failed to execute transfer")
		return
	}

	logger.Info("Transfer committed",
		slog.String("movementID", movement.MovementID),
		slog.String("walletID", movement.WalletID),
		slog.String("kind", string(movement.Kind)),
		slog.String("amount", movement.Amount.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToTransferResponse(movement))
}
