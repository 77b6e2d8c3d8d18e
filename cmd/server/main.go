package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/tracks-backend-go/internal/api"
	"github.com/jengzang/tracks-backend-go/internal/config"
	"github.com/jengzang/tracks-backend-go/internal/database"
	"github.com/jengzang/tracks-backend-go/internal/handler"
	"github.com/jengzang/tracks-backend-go/internal/logger"
	"github.com/jengzang/tracks-backend-go/internal/middleware"
	"github.com/jengzang/tracks-backend-go/internal/repository"
	"github.com/jengzang/tracks-backend-go/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "tracks-backend",
	})
	log := logger.Get()

	// 初始化数据库
	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	if err := handler.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 组装仓储、服务和处理器
	db := database.GetDB()
	places := repository.NewPlaceRepository(db)
	activities := repository.NewActivityRepository(db)

	handlers := api.Handlers{
		Route:  handler.NewRouteHandler(service.NewRouteService(places, activities, cfg.Location, cfg.HistoryDays)),
		Place:  handler.NewPlaceHandler(service.NewPlaceService(places, activities, cfg.Location)),
		Ingest: handler.NewIngestHandler(service.NewIngestService(places, activities)),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	go limiter.Run(ctx)

	// 初始化路由
	router := api.SetupRouter(cfg, handlers, limiter)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 启动服务器
	go func() {
		log.Info().Str("addr", cfg.Port).Str("db", cfg.DBPath).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
