package middleware

import (
	"net/http"
	"strings"

	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgNoToken     = "Not authorized, no token"
	MsgTokenFailed = "Not authorized, token failed"
	MsgNotAdmin    = "Not authorized as an admin"

	userContextKey = "user"
	bearerSchema   = "Bearer "
)

// TokenParser verifies access tokens
type TokenParser interface {
	Parse(token string) (*jwt.Claims, error)
}

// Protect requires a valid bearer token for an existing user and stores the user in the context
func Protect(tokens TokenParser, authService services.AuthService) gin.HandlerFunc {
	log := logger.GetLogger("http")

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerSchema) || strings.TrimSpace(authHeader[len(bearerSchema):]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgNoToken})
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(authHeader[len(bearerSchema):]))
		if err != nil {
			log.WithError(err).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgTokenFailed})
			return
		}

		id, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgTokenFailed})
			return
		}
		user, err := authService.GetUserByID(c.Request.Context(), id)
		if err != nil {
			log.WithError(err).WithField("user_id", claims.Subject).Debug("token user lookup failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgTokenFailed})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// Admin allows only users flagged as admin. It must run after Protect.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MsgNotAdmin})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by Protect
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok && user != nil
}
