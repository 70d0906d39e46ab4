package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/post-service/config"
	"github.com/d60-Lab/post-service/internal/api/handler"
	"github.com/d60-Lab/post-service/internal/api/middleware"
)

// NewRouter 装配路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(otelgin.Middleware("post-service"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(middleware.ErrorHandler())

	if cfg.Server.TemplateDir != "" {
		r.LoadHTMLGlob(cfg.Server.TemplateDir + "/*")
	}

	r.GET("/", h.Home)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	post := r.Group("/post")
	{
		post.GET("/", middleware.IsLoggedIn(cfg.JWT.Secret), h.Compose)
		// 发帖身份取自令牌（有则用，没有按匿名入库，与既有行为一致）
		post.POST("/posting", middleware.Identity(cfg.JWT.Secret), h.Posting)
		post.GET("/hashtag", h.ByHashtag)
		post.GET("/like/:id", middleware.IsLoggedIn(cfg.JWT.Secret), h.Like)
		post.POST("/update/:id", h.Update)
		post.GET("/delete/:id", h.Delete)
		post.GET("/:id", middleware.Identity(cfg.JWT.Secret), h.Detail)
	}
	return r
}
