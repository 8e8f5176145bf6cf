package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sourcelane/rfq-backend/internal/handlers"
)

type RouterConfig struct {
	SupplierHandler *handlers.SupplierHandler
	RFQHandler      *handlers.RFQHandler
	EmailHandler    *handlers.EmailHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Suppliers
		api.GET("/suppliers", cfg.SupplierHandler.List)
		api.POST("/suppliers", cfg.SupplierHandler.Create)
		api.PUT("/suppliers/:id", cfg.SupplierHandler.Update)

		// RFQs
		api.GET("/rfqs", cfg.RFQHandler.List)
		api.POST("/rfqs", cfg.RFQHandler.Create)
		api.GET("/rfqs/:id", cfg.RFQHandler.Get)
		api.PUT("/rfqs/:id", cfg.RFQHandler.Update)
		api.GET("/rfqs/:id/quotes", cfg.RFQHandler.ListQuotes)

		// Email ingestion
		api.POST("/emails/process", cfg.EmailHandler.Process)
	}

	return router
}
