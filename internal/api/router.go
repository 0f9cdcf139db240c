package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"monopoly-sim/internal/api/handlers"
	"monopoly-sim/internal/api/middleware"
	"monopoly-sim/internal/api/models"
	"monopoly-sim/internal/observability"

	"github.com/gin-gonic/gin"
)

// Options configures NewRouter. Zero values fall back to the environment defaults.
type Options struct {
	ScenarioDir string
	StaticDir   string
	Logger      *slog.Logger
	Metrics     *observability.Metrics
}

// NewRouter wires middleware, API routes, /metrics and the optional SPA.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(logger))

	scenarioHandler := handlers.NewScenarioHandler(opts.ScenarioDir, logger)
	outcomesHandler := handlers.NewOutcomesHandler(scenarioHandler, opts.Metrics, logger)
	liveHandler := handlers.NewLiveHandler(outcomesHandler, logger)
	controlHandler := handlers.NewControlHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := router.Group("/api/v1")
	{
		api.POST("/outcomes", outcomesHandler.Compute)
		api.GET("/outcomes", outcomesHandler.ComputeQuery)
		api.POST("/outcomes/compare", outcomesHandler.Compare)
		api.GET("/sweep", outcomesHandler.Sweep)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/:id", scenarioHandler.GetScenario)
		api.GET("/controls", controlHandler.ListControls)

		api.GET("/live", liveHandler.Serve)
	}

	mountStatic(router, opts.StaticDir, logger)
	return router
}

// mountStatic serves the built front-end and falls back to index.html for
// client-side routes. API paths still 404 as JSON.
func mountStatic(router *gin.Engine, staticDir string, logger *slog.Logger) {
	if staticDir == "" {
		staticDir = os.Getenv("STATIC_DIR")
	}
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	}

	if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
		logger.Info("static directory not found, skipping static file serving", "dir", staticDir)
		router.NoRoute(notFound)
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			notFound(c)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
	logger.Info("serving static files", "dir", staticDir)
}
