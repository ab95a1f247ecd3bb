package server

import (
	"domain-auction/internal/metrics"
	handler "domain-auction/services/auction/handler"
	"domain-auction/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// AuctionService is everything the HTTP surface calls on the ledger
type AuctionService interface {
	handler.BiddingServiceInterface
	handler.DomainServiceInterface
	handler.AccountServiceInterface
	handler.ReportServiceInterface
}

// RouterOptions carries the optional collaborators of the router. Nil fields
// leave the matching routes or middleware out.
type RouterOptions struct {
	WebSocket  gin.HandlerFunc
	BidLimiter *RateLimiter
	Metrics    metrics.Recorder
	Gatherer   prometheus.Gatherer
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(service AuctionService, opts RouterOptions) *gin.Engine {
	rec := opts.Metrics
	if rec == nil {
		rec = metrics.Nop{}
	}

	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())               // recover from panics
	router.Use(RequestIDMiddleware)          // correlate logs and error bodies
	router.Use(RequestLoggerMiddleware(rec)) // custom request logging

	biddingHandler := handler.NewBiddingHandler(service)
	domainHandler := handler.NewDomainHandler(service)
	accountHandler := handler.NewAccountHandler(service)
	reportHandler := handler.NewReportHandler(service)

	router.GET("/health", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"status": "healthy", "service": "domain-auction"}, "ok")
	})

	bids := router.Group("/bids")
	{
		bids.GET("", biddingHandler.ListBidsHandler)
		if opts.BidLimiter != nil {
			bids.POST("", opts.BidLimiter.Middleware(), biddingHandler.RecordBidHandler)
		} else {
			bids.POST("", biddingHandler.RecordBidHandler)
		}
	}

	domains := router.Group("/domains")
	{
		domains.GET("", domainHandler.ListDomainsHandler)
		domains.POST("", domainHandler.AddDomainHandler)
		domains.GET("/:domain_id", domainHandler.GetDomainHandler)
		domains.PATCH("/:domain_id", domainHandler.UpdateDomainHandler)
		domains.DELETE("/:domain_id", domainHandler.RemoveDomainHandler)
		domains.GET("/:domain_id/bids", biddingHandler.GetBidsByDomainHandler)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", accountHandler.RegisterHandler)
		auth.POST("/login", accountHandler.LoginHandler)
		auth.POST("/logout", accountHandler.LogoutHandler)
		auth.GET("/session", accountHandler.SessionHandler)
	}

	users := router.Group("/users")
	{
		users.GET("", accountHandler.ListUsersHandler)
		users.PATCH("/:user_id", accountHandler.UpdateUserHandler)
		users.DELETE("/:user_id", accountHandler.RemoveUserHandler)
		users.POST("/:user_id/reset-password", accountHandler.ResetPasswordHandler)
		users.GET("/:user_id/activity", accountHandler.GetUserActivityHandler)
		users.GET("/:user_id/bids", biddingHandler.GetBidsByUserHandler)
	}

	router.GET("/stats", reportHandler.StatisticsHandler)
	router.GET("/export/:kind", reportHandler.ExportHandler)

	notifications := router.Group("/notifications")
	{
		notifications.GET("", reportHandler.ListNotificationsHandler)
		notifications.DELETE("/:id", reportHandler.DismissNotificationHandler)
		notifications.POST("/:id/read", reportHandler.MarkNotificationReadHandler)
	}

	if opts.WebSocket != nil {
		router.GET("/ws", opts.WebSocket)
	}
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
	}

	return router
}
