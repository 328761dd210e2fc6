package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ticket-monarch/internal/handler/api"
	"ticket-monarch/internal/handler/middleware"
	"ticket-monarch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Funnel  *api.FunnelHandler
	Admin   *api.AdminHandler
	Session *middleware.SessionMiddleware
	AdminMw *middleware.AdminMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, funnelHandler *api.FunnelHandler, adminHandler *api.AdminHandler, session *middleware.SessionMiddleware, adminMw *middleware.AdminMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, Handlers{
		Funnel:  funnelHandler,
		Admin:   adminHandler,
		Session: session,
		AdminMw: adminMw,
	})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.NewRequestLogger(logger, cfg.Log).Handler())
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		pages := apiGroup.Group("")
		pages.Use(h.Session.Visitor())
		addRoutes(pages, []route{
			{Method: http.MethodGet, Path: "/concerts", Handler: h.Funnel.ListConcerts},
			{Method: http.MethodGet, Path: "/concerts/:id/sections", Handler: h.Funnel.SeatMap},
		})

		funnel := pages.Group("/funnel")
		addRoutes(funnel, []route{
			{Method: http.MethodPost, Path: "/selection", Handler: h.Funnel.SelectSection},
			{Method: http.MethodGet, Path: "/checkout", Handler: h.Funnel.OpenCheckout},
			{Method: http.MethodPatch, Path: "/checkout/fields", Handler: h.Funnel.ChangeField},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Funnel.Submit},
			{Method: http.MethodGet, Path: "/confirmation", Handler: h.Funnel.Confirmation},
			{Method: http.MethodDelete, Path: "/confirmation", Handler: h.Funnel.ReturnHome},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(h.AdminMw.RequireAdminKey())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
			{Method: http.MethodPost, Path: "/orders", Handler: h.Admin.CreateOrder},
			{Method: http.MethodPost, Path: "/orders/import", Handler: h.Admin.ImportOrders},
			{Method: http.MethodGet, Path: "/export", Handler: h.Admin.Export},
			{Method: http.MethodGet, Path: "/backend-health", Handler: h.Admin.BackendHealth},
		})
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
