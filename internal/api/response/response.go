package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/curaious/linkfinder/internal/perrors"
)

// Response writes either Data as the raw JSON body, or the public part of a
// perrors.Err.
type Response struct {
	ctx    context.Context
	data   any
	err    *perrors.Err
	status int
}

func NewResponse(ctx context.Context, data any) *Response {
	return &Response{
		ctx:    ctx,
		data:   data,
		status: http.StatusOK,
	}
}

// WithError sets the error for the response. Errors that are not perrors.Err
// become an opaque 500 so their text never reaches the caller.
func (r *Response) WithError(err error) *Response {
	var perr perrors.Err
	if !errors.As(err, &perr) {
		perr = perrors.NewErrInternalServerError("Unhandled error", http.StatusText(http.StatusInternalServerError), err)
	}
	perr.Print(r.ctx)

	r.err = &perr
	r.status = perr.HttpStatus()

	return r
}

// WithStatus will set the HTTP response status code.
//
// This is not a preferred way of setting status code.
//   - Try to use perrors.Err embedded with a status code whenever possible.
//   - Default is http.StatusOK and it need not be set explicitly.
func (r *Response) WithStatus(code int) *Response {
	r.status = code

	return r
}

// Write will set the `content-type` to `application/json` and write the response to the fasthttp context.
func (r *Response) Write(ctx *fasthttp.RequestCtx) {
	var payload any = r.data
	if r.err != nil {
		payload = r.err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.ErrorContext(r.ctx, "Unable to json encode response", slog.Any("error", err))
		ctx.SetStatusCode(http.StatusInternalServerError)
		return
	}

	ctx.Response.Header.Set("content-type", "application/json")
	ctx.SetStatusCode(r.status)
	ctx.SetBody(body)
}
