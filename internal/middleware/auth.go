package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"horas-api/internal/models"
	"horas-api/internal/service"
)

// Context keys set for authenticated requests.
const (
	ContextKeyClaims        = "claims"
	ContextKeyUsuarioID     = "usuario_id"
	ContextKeyFuncionarioID = "funcionario_id"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(tokens service.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token não fornecido."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Formato do token inválido."})
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				logger.Debug("Expired JWT token", zap.Error(err))
			} else {
				logger.Warn("Invalid JWT token", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado."})
			return
		}

		// Set user claims in context
		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUsuarioID, claims.UsuarioID)
		if claims.FuncionarioID != nil {
			c.Set(ContextKeyFuncionarioID, *claims.FuncionarioID)
		}

		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok
}
