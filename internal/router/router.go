package router

import (
	"net/http"
	"time"

	"linkhop/config"
	"linkhop/internal/handler"
	"linkhop/internal/middleware"
	"linkhop/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	User      *handler.UserHandler
	Link      *handler.LinkHandler
	Domain    *handler.DomainHandler
	Analytics *handler.AnalyticsHandler
	Redirect  *handler.RedirectHandler
	Stats     *handler.StatsHandler
}

func Router(log *zap.Logger, h Handlers, users middleware.UserLoader, limiter ratelimit.Limiter, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.JWTAuth(&cfg.JWT, users)
	optionalAuth := middleware.OptionalJWTAuth(&cfg.JWT, users)
	throttle := middleware.RateLimit(limiter, "auth", log)

	v1 := r.Group("/api/v1")
	{
		a := v1.Group("/auth")
		a.POST("/register", throttle, h.User.Register)
		a.POST("/login", throttle, h.User.Login)
		a.POST("/refresh", throttle, h.User.Refresh)
		a.POST("/logout", auth, h.User.Logout)

		profile := v1.Group("/profile", auth)
		profile.GET("/me", h.User.Profile)
		profile.PUT("/password", h.User.ChangePassword)
		profile.PUT("/plan", h.User.UpdatePlan)

		links := v1.Group("/links", auth)
		links.GET("", h.Link.ListLinks)
		links.POST("", h.Link.CreateLink)
		links.DELETE("/:id", h.Link.DeleteLink)
		links.GET("/:id/qr", h.Link.QRCode)
		links.GET("/:id/stats", h.Stats.LinkStats)

		domains := v1.Group("/domains", auth)
		domains.GET("", h.Domain.ListDomains)
		domains.POST("", h.Domain.AddDomain)
		domains.PUT("/:name", h.Domain.RenameDomain)

		v1.GET("/analytics", auth, h.Analytics.Analytics)
		v1.GET("/plans", optionalAuth, h.User.Plans)
	}

	r.GET("/r/:slug", h.Redirect.Direct)
	r.GET("/:domain/:slug", h.Redirect.Domain)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
