package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const tokenTTL = 12 * time.Hour

type session struct {
	adminID uint
	expires time.Time
}

var (
	tokensMu sync.RWMutex
	tokens   = map[string]session{}
)

// RegisterToken records a freshly issued admin token.
func RegisterToken(token string, adminID uint) {
	tokensMu.Lock()
	defer tokensMu.Unlock()
	tokens[token] = session{adminID: adminID, expires: time.Now().Add(tokenTTL)}
}

func RevokeToken(token string) {
	tokensMu.Lock()
	defer tokensMu.Unlock()
	delete(tokens, token)
}

// TokenFromRequest reads "Authorization: Bearer <token>".
func TokenFromRequest(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// RequireAdmin guards the /api/admin routes.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		tokensMu.RLock()
		s, ok := tokens[token]
		tokensMu.RUnlock()

		if !ok || time.Now().After(s.expires) {
			if ok {
				RevokeToken(token)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("adminID", s.adminID)
		c.Next()
	}
}
