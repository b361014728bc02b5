package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/toratita/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(auth *handlers.AuthHandler, records *handlers.RecordsHandler, reports *handlers.ReportsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	// The dashboard is served from wherever is convenient; any origin may call.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	api := r.Group("/api")
	{
		api.POST("/auth/login", auth.Login)

		api.POST("/production", records.CreateProduction)
		api.GET("/production", records.ListProductions)

		api.POST("/sellers", records.CreateSeller)
		api.GET("/sellers", records.ListSellers)

		api.POST("/distribution", records.CreateDistribution)
		api.GET("/distribution", records.ListDistributions)

		api.POST("/payments", records.CreatePayment)
		api.GET("/payments", records.ListPayments)

		api.POST("/expenses", records.CreateExpense)
		api.GET("/expenses", records.ListExpenses)

		api.POST("/losses", records.CreateLoss)
		api.GET("/losses", records.ListLosses)

		api.GET("/reports/weekly", reports.Weekly)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
