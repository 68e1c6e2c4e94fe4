package awsconf

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
)

type config interface {
	Region() string
	EndpointURL() string
}

// Load resolves the shared AWS configuration once per process. Every
// service client is built from the result.
func Load(ctx context.Context, cfg config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region() != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region()))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "load aws config")
	}
	if cfg.EndpointURL() != "" {
		awsCfg.BaseEndpoint = aws.String(cfg.EndpointURL())
	}

	logger.Info("aws config loaded",
		zap.String("region", awsCfg.Region),
		zap.String("endpoint", cfg.EndpointURL()),
	)
	return awsCfg, nil
}
