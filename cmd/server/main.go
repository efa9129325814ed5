// Package main runs the Zoom scheduler bridge HTTP server with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hirescreen/zoom-bridge/config"
	"github.com/hirescreen/zoom-bridge/internal/meetings"
	"github.com/hirescreen/zoom-bridge/internal/middleware"
	"github.com/hirescreen/zoom-bridge/internal/zoomapi"
	"github.com/hirescreen/zoom-bridge/pkg/response"
)

const (
	serviceName    = "Zoom Scheduler Bridge"
	serviceVersion = "1.0.0"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	zoomClient := zoomapi.NewClient(cfg.Zoom, logger)
	meetingService := meetings.NewService(zoomClient, logger)
	meetingHandler := meetings.NewHandler(meetingService, cfg.Zoom, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	// Allow all origins so the prototyping frontend can call the bridge directly.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// Health
	router.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":  "OK",
			"service": serviceName,
			"version": serviceVersion,
		})
	})

	api := router.Group("/api/zoom")
	{
		api.GET("/status", meetingHandler.Status)
		api.POST("/create-meeting", meetingHandler.CreateMeeting)
		api.POST("/scheduler/book", meetingHandler.Book)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
