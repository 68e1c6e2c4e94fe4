package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"max.ks1230/smart-receipts/internal/logger"
)

// Init installs a global jaeger tracer configured from JAEGER_* variables.
// JAEGER_DISABLED=true leaves a no-op tracer in place. The returned closer
// flushes pending spans.
func Init(serviceName string) (io.Closer, error) {
	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger config")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}
	if cfg.Sampler == nil || cfg.Sampler.Type == "" {
		cfg.Sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		}
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(zapAdapter{}))
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	return closer, nil
}

type zapAdapter struct{}

func (zapAdapter) Error(msg string) {
	logger.Error(msg)
}

func (zapAdapter) Infof(msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}
