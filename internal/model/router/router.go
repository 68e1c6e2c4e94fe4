package router

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/smart-receipts/internal/logger"
	"max.ks1230/smart-receipts/internal/model/response"
)

// Handler serves one named invocation. Failures are part of the returned
// response; handlers do not return Go errors.
type Handler func(ctx context.Context, payload []byte) response.Response

// LambdaHandler is the signature handed to lambda.Start.
type LambdaHandler func(ctx context.Context, payload json.RawMessage) (response.Response, error)

var ErrUnknownHandler = errors.New("unknown handler")

type Router struct {
	handlers map[string]Handler
}

func New() *Router {
	return &Router{handlers: make(map[string]Handler)}
}

func (r *Router) Register(name string, h Handler) {
	r.handlers[name] = h
}

func (r *Router) Names() []string {
	res := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (r *Router) Invoke(ctx context.Context, name string, payload []byte) (response.Response, error) {
	h, ok := r.handlers[name]
	if !ok {
		return response.Response{}, errors.Wrapf(ErrUnknownHandler, "%q", name)
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, name)
	defer span.Finish()

	logger.Info("invoke - start", zap.String("handler", name))
	start := time.Now()
	resp := h(ctx, payload)
	elapsed := time.Since(start)

	observeInvocation(name, resp.StatusCode, elapsed)
	ext.HTTPStatusCode.Set(span, uint16(resp.StatusCode))
	if resp.StatusCode >= http.StatusInternalServerError {
		ext.Error.Set(span, true)
	}
	logger.Info("invoke - end",
		zap.String("handler", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)
	return resp, nil
}

// Lambda binds the router to a single handler name for lambda.Start.
func (r *Router) Lambda(name string) (LambdaHandler, error) {
	if _, ok := r.handlers[name]; !ok {
		return nil, errors.Wrapf(ErrUnknownHandler, "%q", name)
	}
	return func(ctx context.Context, payload json.RawMessage) (response.Response, error) {
		defer logger.Sync()
		return r.Invoke(ctx, name, payload)
	}, nil
}
