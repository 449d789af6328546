package middleware

import (
	"net/http"
	"strings"

	"github.com/rentdesk/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Keys used to store account information in gin.Context
const (
	AccountIDKey     = "account_id"
	AccountHeaderKey = "X-Account-ID"
)

// AccountValidator checks that an account exists and is active. Optional;
// when nil the middleware only validates the ID format.
type AccountValidator interface {
	ValidateAccount(accountID string) error
}

// AccountMiddlewareConfig holds configuration for account middleware
type AccountMiddlewareConfig struct {
	// SkipPaths are paths that don't require account context (e.g., health check)
	SkipPaths []string
	// Required determines if account context is mandatory
	Required bool
	// Validator is an optional validator to check if the account is active
	Validator AccountValidator
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultAccountConfig returns default account middleware configuration
func DefaultAccountConfig() AccountMiddlewareConfig {
	return AccountMiddlewareConfig{
		SkipPaths: []string{"/health", "/healthz", "/ready", "/api/v1/health"},
		Required:  true,
		Validator: nil,
		Logger:    nil,
	}
}

// AccountMiddleware extracts the caller's account from the X-Account-ID
// header. Every record in the system is partitioned by this ID; requests
// without it never reach a handler.
func AccountMiddleware() gin.HandlerFunc {
	return AccountMiddlewareWithConfig(DefaultAccountConfig())
}

// AccountMiddlewareWithConfig returns account middleware with custom configuration
func AccountMiddlewareWithConfig(cfg AccountMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
				c.Next()
				return
			}
		}

		accountID := c.GetHeader(AccountHeaderKey)

		if accountID != "" {
			if _, err := uuid.Parse(accountID); err != nil {
				respondUnauthorized(c, "Invalid account ID format")
				return
			}
		}

		if accountID == "" && cfg.Required {
			respondUnauthorized(c, "Account identification required")
			return
		}

		if accountID != "" && cfg.Validator != nil {
			if err := cfg.Validator.ValidateAccount(accountID); err != nil {
				log := cfg.Logger
				if log == nil {
					log = logger.FromContext(c.Request.Context())
				}
				log.Warn("Account validation failed",
					zap.String("account_id", accountID),
					zap.Error(err),
				)
				respondUnauthorized(c, "Invalid or inactive account")
				return
			}
		}

		if accountID != "" {
			c.Set(AccountIDKey, accountID)

			// Set in request context for service layer access
			ctx := c.Request.Context()
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithAccountID(ctx, log, accountID)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// respondUnauthorized sends an unauthorized response
func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}

// GetAccountID retrieves the account ID from gin.Context
func GetAccountID(c *gin.Context) string {
	if accountID, exists := c.Get(AccountIDKey); exists {
		if aid, ok := accountID.(string); ok {
			return aid
		}
	}
	return ""
}

// GetAccountUUID retrieves the account ID as UUID from gin.Context
func GetAccountUUID(c *gin.Context) (uuid.UUID, error) {
	accountID := GetAccountID(c)
	if accountID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(accountID)
}

// OptionalAccountMiddleware creates middleware that doesn't require an account
func OptionalAccountMiddleware() gin.HandlerFunc {
	cfg := DefaultAccountConfig()
	cfg.Required = false
	return AccountMiddlewareWithConfig(cfg)
}
