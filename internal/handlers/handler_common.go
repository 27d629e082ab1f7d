package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ecosetu/ewallet_backend/internal/apperrors"
	"github.com/ecosetu/ewallet_backend/internal/core/domain"
	"github.com/ecosetu/ewallet_backend/internal/middleware"
)

// RegisterValidations installs custom binding validations. "money" accepts a
// decimal string that remains strictly positive after rounding to 2 places.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			if err != nil {
				return false
			}
			return domain.RoundMoney(d).IsPositive()
		})
	}
}

// respondWithError maps service errors to HTTP responses. Error kinds
// identify the violated contract; user-facing wording stays out of the core.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid wallet token"})
	case errors.Is(err, apperrors.ErrTokenInactive), errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrWalletFrozen), errors.Is(err, apperrors.ErrInsufficientBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrIntegrityViolation):
		// Fatal: alert loudly, reveal nothing.
		logger.Error("Ledger integrity violation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal integrity error"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// actorFromCtx pulls the authenticated caller out of the request context.
func actorFromCtx(c *gin.Context) (string, domain.ActorRole, bool) {
	actorID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetActorRoleFromCtx(c.Request.Context())
	if !ok {
		return "", "", false
	}
	return actorID, role, true
}
