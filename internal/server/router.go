package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Deepsoni5/kucash-sub001/internal/auth"
	"github.com/Deepsoni5/kucash-sub001/internal/config"
	"github.com/Deepsoni5/kucash-sub001/internal/http/handlers"
	"github.com/Deepsoni5/kucash-sub001/internal/http/middleware"
	"github.com/Deepsoni5/kucash-sub001/internal/version"
	"github.com/Deepsoni5/kucash-sub001/internal/ws"
)

const maxRequestBodyBytes = 1 << 20

type Dependencies struct {
	Pinger             handlers.Pinger
	AuthHandler        *handlers.AuthHandler
	ApplicationHandler *handlers.ApplicationHandler
	DashboardHandler   *handlers.DashboardHandler
	ProfileHandler     *handlers.ProfileHandler
	PostHandler        *handlers.PostHandler
	ContactHandler     *handlers.ContactHandler
	AdminHandler       *handlers.AdminHandler
	WSHandler          *ws.Handler
	JWTManager         *auth.JWTManager
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestBodyLimit(maxRequestBodyBytes))
	r.Use(func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	})

	health := handlers.NewHealthHandler(deps.Pinger)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)

	if deps.PostHandler != nil {
		public := r.Group("/v1")
		public.GET("/posts", deps.PostHandler.ListPublished)
		public.GET("/posts/:slug", deps.PostHandler.GetBySlug)
		public.GET("/categories", deps.PostHandler.ListCategories)
	}
	if deps.ContactHandler != nil {
		r.POST("/v1/contact", deps.ContactHandler.Submit)
	}

	if deps.AuthHandler != nil && deps.JWTManager != nil {
		authGroup := r.Group("/v1/auth")
		authGroup.POST("/otp/request", deps.AuthHandler.RequestOTP)
		authGroup.POST("/otp/verify", deps.AuthHandler.VerifyOTP)
		authGroup.POST("/idp/exchange", deps.AuthHandler.ExchangeIDPToken)
		authGroup.POST("/refresh", deps.AuthHandler.Refresh)
		authGroup.POST("/logout", deps.AuthHandler.Logout)

		protected := authGroup.Group("")
		protected.Use(middleware.RequireAuth(deps.JWTManager))
		protected.GET("/me", deps.AuthHandler.Me)

		if deps.ProfileHandler != nil {
			profileGroup := r.Group("/v1/profile")
			profileGroup.Use(middleware.RequireAuth(deps.JWTManager))
			profileGroup.GET("", deps.ProfileHandler.Get)
			profileGroup.PUT("", deps.ProfileHandler.Update)
		}

		if deps.ApplicationHandler != nil {
			appGroup := r.Group("/v1/applications")
			appGroup.Use(middleware.RequireAuth(deps.JWTManager))
			appGroup.POST("", middleware.RequireRole(auth.RoleCustomer), deps.ApplicationHandler.Submit)
			appGroup.GET("", deps.ApplicationHandler.List)
			appGroup.GET("/:applicationId", deps.ApplicationHandler.Get)
			appGroup.POST("/:applicationId/decide", middleware.RequireRole(auth.RoleAgent, auth.RoleAdmin), deps.ApplicationHandler.Decide)
		}

		if deps.DashboardHandler != nil {
			dashGroup := r.Group("/v1/dashboard")
			dashGroup.Use(middleware.RequireAuth(deps.JWTManager))
			dashGroup.GET("/customer", middleware.RequireRole(auth.RoleCustomer), deps.DashboardHandler.Customer)
			dashGroup.GET("/agent", middleware.RequireRole(auth.RoleAgent), deps.DashboardHandler.Agent)
			dashGroup.GET("/admin", middleware.RequireRole(auth.RoleAdmin), deps.DashboardHandler.Admin)
			dashGroup.GET("/customers", middleware.RequireRole(auth.RoleAgent, auth.RoleAdmin), deps.DashboardHandler.Customers)
		}

		if deps.AdminHandler != nil {
			adminGroup := r.Group("/admin")
			adminGroup.Use(middleware.RequireAuth(deps.JWTManager), middleware.RequireRole(auth.RoleAdmin))
			adminGroup.GET("/users", deps.AdminHandler.ListUsers)
			adminGroup.GET("/contact-submissions", deps.AdminHandler.ListContactSubmissions)
			adminGroup.POST("/contact-submissions/:submissionId/handled", deps.AdminHandler.MarkContactHandled)
			adminGroup.POST("/customers/:userId/active", deps.AdminHandler.SetCustomerActive)
			if deps.PostHandler != nil {
				adminGroup.GET("/posts", deps.PostHandler.ListAll)
				adminGroup.POST("/posts", deps.PostHandler.Create)
				adminGroup.PUT("/posts/:postId", deps.PostHandler.Update)
				adminGroup.DELETE("/posts/:postId", deps.PostHandler.Delete)
				adminGroup.POST("/posts/:postId/publish", deps.PostHandler.SetPublished)
				adminGroup.POST("/categories", deps.PostHandler.CreateCategory)
			}
		}

		if deps.WSHandler != nil {
			r.GET("/v1/ws", middleware.RequireAuth(deps.JWTManager), deps.WSHandler.HandleWebSocket)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
