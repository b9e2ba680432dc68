package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the acting user's ID in the Gin context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// ActingUserMiddleware copies the user id injected by the auth gateway
// (X-User-ID header) into the Gin context. Authentication itself happens
// upstream; this core only needs the id for audit attribution.
func ActingUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(string(userIDKey), userID)
		}
		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
