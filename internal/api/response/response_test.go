package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/curaious/linkfinder/internal/perrors"
)

func TestWritePassesDataThrough(t *testing.T) {
	var ctx fasthttp.RequestCtx
	NewResponse(context.Background(), []any{map[string]any{"url": json.Number("1")}}).Write(&ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `[{"url":1}]`, string(ctx.Response.Body()))
}

func TestWriteError(t *testing.T) {
	var ctx fasthttp.RequestCtx
	err := perrors.NewErrInvalidRequest("Image URL is missing", "No image URL provided", nil)
	NewResponse(context.Background(), nil).WithError(err).Write(&ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"No image URL provided"}`, string(ctx.Response.Body()))
}

func TestWriteUnknownErrorIsOpaque(t *testing.T) {
	var ctx fasthttp.RequestCtx
	NewResponse(context.Background(), nil).WithError(errors.New("dial tcp 10.0.0.1: refused")).Write(&ctx)

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(ctx.Response.Body()))
}
