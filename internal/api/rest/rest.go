package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// NFT endpoints
		v1.GET("/nfts/:address", handler.GetNft)
		v1.GET("/nfts", handler.ListNfts)

		// Activity feed
		v1.GET("/activities", handler.GetActivities)
	}
}
