package controllers

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	"github.com/curaious/linkfinder/internal/perrors"
	"github.com/curaious/linkfinder/internal/services"
	"github.com/curaious/linkfinder/internal/services/links"
)

func RegisterLinksRoutes(r *router.Router, svc *services.Services) {
	// Find tutorial links for an image
	r.POST("/api/get-url", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		var body links.FindLinksRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, perrors.NewErrInvalidRequest("Invalid request body", links.MsgNoImageURL, err))
			return
		}

		results, err := svc.Links.FindLinks(stdCtx, &body)
		if err != nil {
			writeError(ctx, stdCtx, err)
			return
		}

		writeOK(ctx, stdCtx, results)
	})
}
