package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpH "github.com/vsinha/wallcalc/pkg/interfaces/http/handlers"
	httpMW "github.com/vsinha/wallcalc/pkg/interfaces/http/middleware"
)

type RouterConfig struct {
	Logger *zap.Logger

	AssemblyHandler     *httpH.AssemblyHandler
	OptimizationHandler *httpH.OptimizationHandler
	CatalogHandler      *httpH.CatalogHandler
	StatisticsHandler   *httpH.StatisticsHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Logger))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Assemblies
		if cfg.AssemblyHandler != nil {
			api.POST("/assemblies/analyze", cfg.AssemblyHandler.Analyze)
			api.POST("/assemblies/visualization", cfg.AssemblyHandler.Visualization)
			api.POST("/assemblies/export", cfg.AssemblyHandler.Export)
			api.GET("/assemblies", cfg.AssemblyHandler.List)
			api.GET("/assemblies/:name", cfg.AssemblyHandler.Get)
			api.GET("/assemblies/:name/analysis", cfg.AssemblyHandler.AnalyzeSaved)
			api.PUT("/assemblies/:name", cfg.AssemblyHandler.Save)
			api.DELETE("/assemblies/:name", cfg.AssemblyHandler.Delete)
		}

		// Optimization
		if cfg.OptimizationHandler != nil {
			api.POST("/optimize", cfg.OptimizationHandler.Optimize)
			api.GET("/optimize/presets", cfg.OptimizationHandler.Presets)
		}

		// Catalog
		if cfg.CatalogHandler != nil {
			api.GET("/materials", cfg.CatalogHandler.ListMaterials)
			api.POST("/materials", cfg.CatalogHandler.ImportMaterials)
			api.GET("/templates", cfg.CatalogHandler.ListTemplates)
		}

		// Statistics
		if cfg.StatisticsHandler != nil {
			api.GET("/statistics", cfg.StatisticsHandler.Get)
			api.DELETE("/statistics", cfg.StatisticsHandler.Reset)
		}
	}

	return r
}
