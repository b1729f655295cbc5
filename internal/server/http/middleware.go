package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key under which the bearer middleware stores
// the authenticated user's id.
const userIDKey = "userID"

// authRequired extracts and verifies the bearer token and stores the
// resolved user id in the request context. Requests without a valid token
// are short-circuited with 401.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := s.bearerUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// bearerUserID parses the Authorization header and verifies the token.
// Returns false for a missing, malformed, tampered or expired token.
func (s *Server) bearerUserID(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	userID, err := s.users.VerifyAccessToken(parts[1])
	if err != nil {
		return "", false
	}

	return userID, true
}
