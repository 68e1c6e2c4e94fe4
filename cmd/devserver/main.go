package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/app"
	"max.ks1230/smart-receipts/internal/config"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/router"
	"max.ks1230/smart-receipts/internal/tracing"
)

const serviceName = "smart-receipts-dev"

func main() {
	_ = godotenv.Load()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	closer, err := tracing.Init(serviceName)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	application, err := app.New(ctx, conf)
	if err != nil {
		logger.Fatal("failed to init handlers", zap.Error(err))
	}
	defer application.Close()

	srv := &http.Server{
		Addr:    conf.App().DevServerAddr(),
		Handler: newEngine(application.Router),
	}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("dev server shutdown", zap.Error(err))
		}
	}()

	logger.Info("dev server listening", zap.String("addr", srv.Addr))
	if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("dev server failed", zap.Error(err))
	}
}

func newEngine(r *router.Router) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/handlers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"handlers": r.Names()})
	})
	engine.POST("/invoke/:name", func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := r.Invoke(c.Request.Context(), c.Param("name"), payload)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	})
	return engine
}
