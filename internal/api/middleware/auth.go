package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Employeest/employeest-be/internal/pkg/auth"
	"github.com/Employeest/employeest-be/internal/pkg/jwt"
	"github.com/Employeest/employeest-be/internal/repository"
	"github.com/Employeest/employeest-be/pkg/constants"
	"github.com/Employeest/employeest-be/pkg/responses"
)

const (
	ContextActorKey    = "actor"
	ContextTokenKeyKey = "token_key"
)

// AuthMiddleware validates the bearer token signature and its backing
// auth_tokens row. A logged-out token has no row and is rejected even while
// its signature is still valid.
func AuthMiddleware(tokenRepo repository.AuthTokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, 401, "missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, 401, "invalid Authorization header format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		if claims.Type != constants.JWTTypeAccess {
			responses.ErrorWithCode(c, 401, "invalid token type")
			c.Abort()
			return
		}

		if _, err := tokenRepo.FindByKey(claims.ID); err != nil {
			responses.Error(c, responses.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(ContextActorKey, auth.Actor{
			ID:      claims.UserID,
			Role:    claims.Role,
			IsStaff: claims.IsStaff,
		})
		c.Set(ContextTokenKeyKey, claims.ID)

		c.Next()
	}
}

// GetActor returns the authenticated actor stored by AuthMiddleware.
func GetActor(c *gin.Context) auth.Actor {
	if v, ok := c.Get(ContextActorKey); ok {
		if actor, ok := v.(auth.Actor); ok {
			return actor
		}
	}
	return auth.Actor{}
}

// GetTokenKey returns the key of the presented credential's backing row.
func GetTokenKey(c *gin.Context) string {
	return c.GetString(ContextTokenKeyKey)
}
