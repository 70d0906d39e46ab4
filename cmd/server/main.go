package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/d60-Lab/post-service/config"
	_ "github.com/d60-Lab/post-service/docs"
	"github.com/d60-Lab/post-service/internal/api"
	"github.com/d60-Lab/post-service/internal/api/handler"
	"github.com/d60-Lab/post-service/internal/repository"
	"github.com/d60-Lab/post-service/internal/service"
	"github.com/d60-Lab/post-service/pkg/database"
	"github.com/d60-Lab/post-service/pkg/logger"
	"github.com/d60-Lab/post-service/pkg/tracing"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// @title post-service API
// @version 1.0
// @description 帖子模块：发帖、标签、详情、点赞、改删
// @BasePath /
func main() {
	cfg := must(config.Load())
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			panic(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()
	if cfg.Trace.Endpoint != "" {
		shutdown := must(tracing.Init(ctx, "post-service", cfg.Trace.Endpoint))
		defer func() { _ = shutdown(ctx) }()
	}

	db := must(database.InitDB(cfg))

	postRepo := repository.NewPostRepository(db)
	hashtagRepo := repository.NewHashtagRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	postSvc := service.NewPostService(postRepo, hashtagRepo, commentRepo)

	var renderer handler.Renderer = handler.JSONRenderer{}
	if cfg.Server.TemplateDir != "" {
		renderer = handler.HTMLRenderer{}
	}
	h := handler.New(postSvc, renderer)
	r := api.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
