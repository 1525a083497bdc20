package users_middleware

import (
	"net/http"
	"strings"

	users_models "teamhub-backend/internal/features/users/models"
	users_services "teamhub-backend/internal/features/users/services"
	"teamhub-backend/internal/util/apperrors"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthMiddleware validates the Bearer token and stores the resolved
// user in the request context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "authorization header is missing"},
			)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "authorization header must be a Bearer token"},
			)
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(
				apperrors.HTTPStatus(err),
				gin.H{"error": err.Error()},
			)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) (*users_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	if !ok {
		return nil, false
	}

	return user, true
}
