package routes

import (
	"net/http"
	"time"

	"github.com/BenViveiros/CleanCutYardWorks/internal/config"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/handler"
	"github.com/BenViveiros/CleanCutYardWorks/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter assembles the HTTP router: global middleware, the health
// endpoint and the /api surface.
func SetupRouter(
	cfg *config.Config,
	customerHandler *handler.CustomerHandler,
	quoteHandler *handler.QuoteHandler,
	dashboardHandler *handler.DashboardHandler,
) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		Requests:        cfg.RateLimit.Requests,
		Window:          time.Duration(cfg.RateLimit.Duration) * time.Second,
		CleanupInterval: 5 * time.Minute,
		EntryTTL:        10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		api.GET("/dashboard/stats", dashboardHandler.Stats)

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.List)
			customers.POST("", customerHandler.Create)
			customers.GET("/:id", customerHandler.Get)
			customers.PATCH("/:id", customerHandler.Update)
			customers.GET("/:id/stats", dashboardHandler.CustomerStats)
		}

		quotes := api.Group("/quotes")
		{
			quotes.GET("", quoteHandler.List)
			quotes.POST("/request", quoteHandler.Request)
			quotes.GET("/number/:quoteNumber", quoteHandler.GetByNumber)
			quotes.GET("/:id", quoteHandler.Get)
			quotes.PATCH("/:id", quoteHandler.Update)
			quotes.POST("/:id/approve", quoteHandler.Approve)
			quotes.POST("/:id/reject", quoteHandler.Reject)
			quotes.GET("/:id/items", quoteHandler.ListItems)
			quotes.POST("/:id/items", quoteHandler.AddItem)
		}

		quoteItems := api.Group("/quote-items")
		{
			quoteItems.PATCH("/:id", quoteHandler.UpdateItem)
			quoteItems.DELETE("/:id", quoteHandler.DeleteItem)
		}

		api.GET("/reports/metrics", dashboardHandler.ReportMetrics)
		api.GET("/calendar", dashboardHandler.Calendar)
	}

	return router
}
