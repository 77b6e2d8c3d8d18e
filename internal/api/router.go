package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tracks-backend-go/internal/config"
	"github.com/jengzang/tracks-backend-go/internal/handler"
	"github.com/jengzang/tracks-backend-go/internal/middleware"
)

// Handlers 路由所需的处理器
type Handlers struct {
	Route  *handler.RouteHandler
	Place  *handler.PlaceHandler
	Ingest *handler.IngestHandler
}

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, h Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.RequestIDHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Tracks Backend API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}
	{
		// 路线绘制与导出
		route := api.Group("/route")
		{
			route.GET("", h.Route.GetRoute)
			route.GET("/days", h.Route.GetDays)
			route.GET("/filters", h.Route.GetFilters)
			route.GET("/geojson", h.Route.ExportGeoJSON)
			route.GET("/gpx", h.Route.ExportGPX)
		}

		// 地点详情
		api.GET("/places/:id", h.Place.GetPlace)

		// 数据上传，需要 JWT
		ingest := api.Group("", middleware.Auth(cfg.JWTSecret))
		{
			ingest.POST("/places", h.Ingest.PostPlaces)
			ingest.POST("/activities", h.Ingest.PostActivities)
		}
	}

	return r
}
