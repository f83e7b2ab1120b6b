package handler

import (
	"context"
	"net/http"
	"strings"

	"bazaar/marketplace-service/internal/app/marketplace/infrastructure"
	"bazaar/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	contextKeyEmail = "email"
	contextKeyUID   = "uid"

	unauthorizedMessage = "Unauthorized Access"
)

// RoleChecker определяет роль пользователя по email из коллекции users
type RoleChecker interface {
	HasRole(ctx context.Context, email string, roles ...string) (bool, error)
}

// AuthMiddleware проверяет bearer токены через внешний сервис идентификации
type AuthMiddleware struct {
	verifier infrastructure.IdentityVerifier
	roles    RoleChecker
}

func NewAuthMiddleware(verifier infrastructure.IdentityVerifier, roles RoleChecker) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		roles:    roles,
	}
}

// Authenticate проверяет токен и кладет email и uid в контекст Gin.
// Любой отказ дает один и тот же ответ 401, причина пишется только в лог
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c)
			return
		}

		identity, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log := logger.FromGin(c)
			log.Debug().Err(err).Msg("Token verification failed")
			abortUnauthorized(c)
			return
		}

		c.Set(contextKeyEmail, identity.Email)
		c.Set(contextKeyUID, identity.UID)

		c.Next()
	}
}

// RequireRole пропускает запрос, только если роль пользователя из токена входит в roles.
// Должен идти после Authenticate
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(contextKeyEmail)
		if email == "" {
			abortUnauthorized(c)
			return
		}

		allowed, err := m.roles.HasRole(c.Request.Context(), email, roles...)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			c.Abort()
			return
		}

		if !allowed {
			respondError(c, http.StatusForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context) {
	respondError(c, http.StatusUnauthorized, unauthorizedMessage)
	c.Abort()
}
