package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/app"
	"max.ks1230/smart-receipts/internal/config"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/tracing"
)

const serviceName = "smart-receipts"

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

	application, err := app.New(context.Background(), conf)
	if err != nil {
		logger.Fatal("failed to init handlers", zap.Error(err))
	}
	defer application.Close()

	handler, err := application.Router.Lambda(conf.App().HandlerName())
	if err != nil {
		logger.Fatal("failed to select handler",
			zap.String("handler", conf.App().HandlerName()),
			zap.Strings("known", application.Router.Names()),
			zap.Error(err),
		)
	}

	lambda.Start(handler)
}
