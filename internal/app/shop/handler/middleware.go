package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopline/internal/app/shop/entity"
	"shopline/internal/app/shop/service"
	"shopline/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const (
	principalKey   = "principal"
	accessTokenKey = "access_token"
)

// AuthMiddleware проверяет access токен через AuthService
// (подпись, срок действия, черный список)
type AuthMiddleware struct {
	authService service.AuthServiceInterface
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(authService service.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate проверяет Bearer токен и кладет Principal в контекст запроса
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := m.authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(principalKey, claims.Principal())
		c.Set(accessTokenKey, tokenString)

		c.Next()
	}
}

// getPrincipal извлекает Principal запроса, установленный Authenticate
func getPrincipal(c *gin.Context) (entity.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return entity.Principal{}, false
	}

	principal, ok := value.(entity.Principal)
	return principal, ok
}

// MetricsMiddleware записывает HTTP метрики Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HttpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HttpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(started).Seconds())
	}
}
