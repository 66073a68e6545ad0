package handler

import (
	"khqr-payment-gateway/internal/adapter/http/middleware"
	"khqr-payment-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	QRSvc          ports.QRService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	qrHandler := NewQRHandler(deps.QRSvc)
	qr := v1.Group("/qr")
	{
		qr.POST("", qrHandler.Generate)
		qr.GET("/:md5/status", qrHandler.CheckStatus)
		qr.GET("/:md5/info", qrHandler.GetTransactionInfo)
		qr.POST("/status/bulk", qrHandler.CheckBulkStatus)
	}

	return r
}
