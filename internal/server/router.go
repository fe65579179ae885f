package server

import (
	"construction-marketplace/internal/auth"
	handler "construction-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.MarketServiceInterface, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)       // request latency metrics

	marketHandler := handler.NewMarketHandler(service, tokens)
	authed := AuthRequired(tokens)

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/auth/token", marketHandler.IssueTokenHandler)

	projects := router.Group("/projects")
	{
		projects.GET("", marketHandler.ListProjectsHandler)
		projects.POST("", authed, marketHandler.CreateProjectHandler)
		projects.GET("/:project_id", marketHandler.GetProjectHandler)
		projects.GET("/:project_id/bids", marketHandler.GetProjectBidsHandler)
		projects.GET("/:project_id/events", marketHandler.GetProjectEventsHandler)
		projects.POST("/:project_id/milestones/:index", authed, marketHandler.MarkMilestoneHandler)
		projects.POST("/:project_id/complete", authed, marketHandler.CompleteProjectHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", authed, marketHandler.PlaceBidHandler)
		bids.GET("/:bid_id", marketHandler.GetBidHandler)
		bids.GET("/:bid_id/events", marketHandler.GetBidEventsHandler)
		bids.POST("/:bid_id/accept", authed, marketHandler.AcceptBidHandler)
	}

	treasury := router.Group("/treasury")
	{
		treasury.GET("", marketHandler.GetTreasuryHandler)
		treasury.POST("/withdraw", authed, marketHandler.WithdrawHandler)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/toggle-active", authed, marketHandler.ToggleActiveHandler)
	}

	router.GET("/events", marketHandler.GetEventsHandler)

	return router
}
