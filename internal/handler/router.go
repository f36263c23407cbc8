package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery-preorder/internal/handler/api"
	"bakery-preorder/internal/handler/middleware"
	"bakery-preorder/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, orderHandler *api.OrderHandler, newsHandler *api.NewsHandler, feedHandler *api.FeedHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, orderHandler, newsHandler, feedHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, orderHandler *api.OrderHandler, newsHandler *api.NewsHandler, feedHandler *api.FeedHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.SubmitOrder},
			{Method: http.MethodGet, Path: "/offerings", Handler: orderHandler.ListOfferings},
			{Method: http.MethodGet, Path: "/news", Handler: newsHandler.ListUpdates},
			{Method: http.MethodGet, Path: "/news/events", Handler: newsHandler.ListEvents},
			{Method: http.MethodPut, Path: "/news/preview/:kind", Handler: newsHandler.SetPreview},
			{Method: http.MethodDelete, Path: "/news/preview/:kind", Handler: newsHandler.ClearPreview},
			{Method: http.MethodGet, Path: "/instagram", Handler: feedHandler.List},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
