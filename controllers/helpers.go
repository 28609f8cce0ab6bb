package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcelonyc/nutrition-chat/logger"
	"github.com/marcelonyc/nutrition-chat/services"
)

// respondError translates service errors into HTTP responses. Anything
// outside the sentinel set is reported generically so internals stay private.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidCSV),
		errors.Is(err, services.ErrInvalidMacroSplit),
		errors.Is(err, services.ErrResetTokenInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrChatNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrGateway):
		logger.Error("llm gateway failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUserID reads the id the auth middleware stored.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}
