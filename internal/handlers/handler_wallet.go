package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/core/ports/services"
	"github.com/ecosetu/ewallet_backend/internal/dto"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
	"github.com/ecosetu/ewallet_backend/internal/utils/money"
)

// WalletHandler serves wallet lookups and administrative wallet operations.
type WalletHandler struct {
	walletService   services.WalletSvcFacade
	transferService services.TransferSvcFacade
}

func NewWalletHandler(walletService services.WalletSvcFacade, transferService services.TransferSvcFacade) *WalletHandler {
	return &WalletHandler{walletService: walletService, transferService: transferService}
}

// Enroll godoc
// @Summary Enroll a user into the wallet program
// @Description Creates a zero-balance wallet and its scannable token for a user in a single atomic step.
// @Tags wallets
// @Accept json
// @Produce json
// @Param enrollment body dto.EnrollRequest true "Enrollment details"
// @Success 201 {object} dto.EnrollResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "User already enrolled"
// @Security BearerAuth
// @Router /enroll [post]
func (h *WalletHandler) Enroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actorID, _, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	wallet, token, err := h.transferService.Enroll(c.Request.Context(), req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to enroll user")
		return
	}

	logger.Info("User enrolled", slog.String("userID", req.UserID), slog.String("walletID", wallet.WalletID))
	c.JSON(http.StatusCreated, dto.EnrollResponse{
		WalletID: wallet.WalletID,
		UserID:   wallet.UserID,
		Token:    token.Token,
		Balance:  money.Format(wallet.Balance),
	})
}

// GetWallet godoc
// @Summary Get a wallet by ID
// @Tags wallets
// @Produce json
// @Param id path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{id} [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletService.GetWallet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// SetFrozen godoc
// @Summary Freeze or unfreeze a wallet
// @Description A frozen wallet rejects all credits and debits until unfrozen. Reads stay available.
// @Tags wallets
// @Accept json
// @Produce json
// @Param id path string true "Wallet ID"
// @Param freeze body dto.FreezeRequest true "Desired frozen state"
// @Success 200 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{id}/freeze [post]
func (h *WalletHandler) SetFrozen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actorID, _, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	walletID := c.Param("id")
	if err := h.walletService.SetFrozen(c.Request.Context(), walletID, *req.Frozen, actorID); err != nil {
		respondWithError(c, err, "Failed to update wallet frozen state")
		return
	}

	wallet, err := h.walletService.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch wallet")
		return
	}

	logger.Info("Wallet frozen state changed", slog.String("walletID", walletID), slog.Bool("frozen", *req.Frozen))
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// Adjust godoc
// @Summary Apply an administrative balance adjustment
// @Description Credits or debits a wallet directly without a token scan. Recorded as an admin adjustment movement.
// @Tags wallets
// @Accept json
// @Produce json
// @Param id path string true "Wallet ID"
// @Param adjustment body dto.AdjustRequest true "Adjustment details"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid request or rejected adjustment"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{id}/adjust [post]
func (h *WalletHandler) Adjust(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	actorID, _, ok := actorFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	walletID := c.Param("id")
	movement, err := h.transferService.Adjust(c.Request.Context(), walletID, req, actorID)
	if err != nil {
		respondWithError(c, err, "Failed to apply adjustment")
		return
	}

	logger.Info("Adjustment applied",
		slog.String("walletID", walletID),
		slog.String("kind", string(movement.Kind)),
		slog.String("amount", movement.Amount.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToMovementResponse(*movement))
}

// ListMovements godoc
// @Summary List movements for a wallet
// @Description Returns the wallet's movement history, newest first. Supports filtering by kind, category, actor and time range.
// @Tags movements
// @Produce json
// @Param id path string true "Wallet ID"
// @Param kind query string false "Movement kind (credit or debit)"
// @Param category query string false "Movement category"
// @Param actorId query string false "Acting user ID"
// @Param from query string false "Start of time range (RFC3339)"
// @Param to query string false "End of time range (RFC3339)"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.MovementResponse
// @Security BearerAuth
// @Router /wallets/{id}/movements [get]
func (h *WalletHandler) ListMovements(c *gin.Context) {
	filter := domain.MovementFilter{WalletID: c.Param("id")}
	filter.ActorID = c.Query("actorId")
	if kind := c.Query("kind"); kind != "" {
		filter.Kind = domain.MovementKind(kind)
	}
	if category := c.Query("category"); category != "" {
		filter.Category = domain.MovementCategory(category)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp, expected RFC3339"})
			return
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp, expected RFC3339"})
			return
		}
		filter.To = t
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	movements, err := h.walletService.ListMovements(c.Request.Context(), filter, limit, offset)
	if err != nil {
		respondWithError(c, err, "Failed to list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

// GetMovement godoc
// @Summary Get a movement by ID
// @Tags movements
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{id} [get]
func (h *WalletHandler) GetMovement(c *gin.Context) {
	movement, err := h.walletService.GetMovement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(*movement))
}

// GetEWasteRecord godoc
// @Summary Get the e-waste provenance record behind a movement
// @Tags movements
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} domain.EWasteRecord
// @Failure 404 {object} map[string]string "No record for this movement"
// @Security BearerAuth
// @Router /movements/{id}/ewaste [get]
func (h *WalletHandler) GetEWasteRecord(c *gin.Context) {
	record, err := h.walletService.GetEWasteRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch e-waste record")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetPricing godoc
// @Summary List the e-waste pricing catalog
// @Tags pricing
// @Produce json
// @Success 200 {array} dto.PricingEntry
// @Router /pricing [get]
func (h *WalletHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToPricingEntries(domain.EWastePricing))
}
