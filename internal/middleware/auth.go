package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamreg/backend/internal/auth"
	"github.com/teamreg/backend/pkg/token"
)

const (
	CurrentUserKey = "current_user"
	TimeZoneKey    = "time_zone"
)

// Principal resolves the bearer token into the signed-in user and stores
// it in the gin context. Requests without a token (or with a stale one)
// proceed anonymously; authorization happens per operation, not here.
func Principal(jwtSecret, defaultTimeZone string, db *gorm.DB, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tz := c.GetHeader("X-Time-Zone")
		if tz == "" {
			tz = defaultTimeZone
		}
		c.Set(TimeZoneKey, tz)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		claims, err := token.ValidateJWT(parts[1], jwtSecret)
		if err != nil {
			log.Debug("rejected bearer token", zap.Error(err))
			c.Next()
			return
		}

		cu, err := auth.LoadCurrentUser(db, claims.UserID)
		if err != nil {
			log.Error("loading principal failed", zap.String("user", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not resolve user"})
			return
		}
		if cu != nil {
			c.Set(CurrentUserKey, cu)
		}
		c.Next()
	}
}

// GetCurrentUser extracts the principal; nil means anonymous.
func GetCurrentUser(c *gin.Context) *auth.CurrentUser {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	cu, ok := v.(*auth.CurrentUser)
	if !ok {
		return nil
	}
	return cu
}

// GetTimeZone returns the request's effective time zone name.
func GetTimeZone(c *gin.Context) string {
	return c.GetString(TimeZoneKey)
}

// RequireUser guards REST endpoints that make no sense anonymously.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
