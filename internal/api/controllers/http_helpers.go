package controllers

import (
	"context"
	"errors"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/curaious/linkfinder/internal/api/response"
)

// RequestContextKey is the user value under which the middleware stores the
// request's context.Context.
const RequestContextKey = "requestCtx"

// requestContext returns the context prepared by the middleware. fasthttp does
// not provide a standard context, so it falls back to Background.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if c, ok := ctx.UserValue(RequestContextKey).(context.Context); ok {
		return c
	}
	return context.Background()
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func writeError(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	response.NewResponse(stdCtx, nil).WithError(err).Write(ctx)
}

func writeOK(ctx *fasthttp.RequestCtx, stdCtx context.Context, data any) {
	response.NewResponse(stdCtx, data).Write(ctx)
}
