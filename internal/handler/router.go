package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/handler/api"
	"restaurant-booking/internal/handler/middleware"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Admin   *api.AdminHandler
	Auth    *api.AuthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, authMiddleware, m)
	setupRoutes(engine, cfg, h, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
	// every request carries a session; guards below decide what Anonymous may reach
	engine.Use(authMiddleware.Authenticate())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Booking.Calendar},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
		owner := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleViewer))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.List},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Admin.Get},
				{Method: http.MethodPost, Path: "/reservations/:id/approve", Handler: h.Admin.Approve, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPost, Path: "/reservations/:id/reject", Handler: h.Admin.Reject, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: h.Admin.Edit, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Admin.Delete, Mw: []gin.HandlerFunc{owner}},
				{Method: http.MethodGet, Path: "/blocked-dates", Handler: h.Admin.ListBlockedDates},
				{Method: http.MethodPost, Path: "/blocked-dates/toggle", Handler: h.Admin.ToggleBlockedDates, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodDelete, Path: "/blocked-dates/:date", Handler: h.Admin.UnblockDate, Mw: []gin.HandlerFunc{operator}},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Admin.Calendar},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
