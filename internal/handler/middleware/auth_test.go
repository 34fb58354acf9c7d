//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/cookie"
	"restaurant-booking/internal/pkg/jwt"
	"restaurant-booking/tests/common/httptest"
	usecasemock "restaurant-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
	viewer        user.Principal
	operator      user.Principal
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.viewer = user.Principal{ID: uuid.New(), Email: "viewer@example.com", Role: user.RoleViewer}
	s.operator = user.Principal{ID: uuid.New(), Email: "operator@example.com", Role: user.RoleOperator}

	mw := middleware.NewAuthMiddleware(s.mockValidator)
	s.router = gin.New()
	s.router.Use(mw.Authenticate())

	s.router.GET("/public", func(c *gin.Context) {
		state := middleware.GetSession(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": state.IsAuthenticated()})
	})
	s.router.GET("/staff", mw.RequireAuth(), func(c *gin.Context) {
		p, _ := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"email": p.Email})
	})
	s.router.POST("/decide", mw.RequireAuth(), mw.RequireRoleAtLeast(user.RoleOperator), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate() {
	s.Run("no token stays anonymous", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"authenticated":false}`, rec.Body.String())
	})

	s.Run("invalid token stays anonymous on public routes", func() {
		s.mockValidator.EXPECT().ValidateToken("garbage").Return(user.Principal{}, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/public", nil, "garbage")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"authenticated":false}`, rec.Body.String())
	})

	s.Run("bearer header wins over cookie", func() {
		s.mockValidator.EXPECT().ValidateToken("header-token").Return(s.viewer, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/staff", nil, cookies, "header-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"email":"viewer@example.com"}`, rec.Body.String())
	})

	s.Run("cookie is used without a header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(s.viewer, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/staff", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("401 for an expired token", func() {
		// Authenticate and RequireAuth each try once
		s.mockValidator.EXPECT().ValidateToken("expired").Return(user.Principal{}, jwt.ErrExpiredToken).Times(2)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff", nil, "expired")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	s.Run("viewer is forbidden", func() {
		s.mockValidator.EXPECT().ValidateToken("viewer-token").Return(s.viewer, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/decide", nil, "viewer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("operator passes", func() {
		s.mockValidator.EXPECT().ValidateToken("operator-token").Return(s.operator, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/decide", nil, "operator-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
