package middleware

import (
	"net/http"
	"strings"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
	"github.com/Hieubkav/wincellarCloneBackend-sub000/services"
	"github.com/gin-gonic/gin"
)

// AdminAuth protects the CMS surface: it requires a valid admin bearer
// token and stores the verified claims on the context.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Bearer token required"))
			c.Abort()
			return
		}

		claims, err := services.VerifyAdminJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
