package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"restaurant-booking/internal/domain/session"
	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/handler/httperr"
	"restaurant-booking/internal/pkg/cookie"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthenticated = errs.New("authentication required")
	ErrForbidden       = errs.New("insufficient permissions")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionKey = "session"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// Authenticate resolves the session for every request. A missing or invalid token
// leaves the request Anonymous; guards decide what Anonymous may do.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxSessionKey, m.resolve(c))
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := GetSession(c)
		if !state.IsAuthenticated() {
			state = m.resolve(c)
			c.Set(ctxSessionKey, state)
		}
		if !state.IsAuthenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrUnauthenticated, "Authentication required", nil)
			return
		}
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := GetSession(c)
		if !state.IsAuthenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrUnauthenticated, "Authentication required", nil)
			return
		}
		if !state.Allows(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) session.State {
	token := bearerOrCookie(c)
	if token == "" {
		return session.Anonymous()
	}
	principal, err := m.tokenValidator.ValidateToken(token)
	if err != nil {
		slog.Debug("token rejected", "error", err.Error(), "path", c.Request.URL.Path)
		return session.Anonymous()
	}
	return session.Authenticated(principal)
}

func bearerOrCookie(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return cookie.GetAccessToken(c)
}

// GetSession returns Anonymous when no auth middleware ran.
func GetSession(c *gin.Context) session.State {
	if v, exists := c.Get(ctxSessionKey); exists {
		if state, ok := v.(session.State); ok {
			return state
		}
	}
	return session.Anonymous()
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	return GetSession(c).Principal()
}

// SetSession is used by handlers after login and by tests.
func SetSession(c *gin.Context, state session.State) {
	c.Set(ctxSessionKey, state)
}
