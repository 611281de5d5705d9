package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.Handler {
	befores := router.befores
	afters := router.afters
	closers := router.closers

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newRequestContext(router.ctx, w, r)
		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		var err error
		ctx, err = runMiddlewares(ctx, befores)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		var req Request
		if err := decodeRequest(r, method, &req); err != nil {
			xcontext.Logger(ctx).Debugf("Cannot decode request: %v", err)
			err = decodeError(err)
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		ctx = xcontext.WithResponse(ctx, resp)
		ctx, err = runMiddlewares(ctx, afters)
		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(ctx, w, err)
			return
		}

		writeResponse(ctx, w, resp)
	})
}

func runMiddlewares(ctx context.Context, middlewares []MiddlewareFunc) (context.Context, error) {
	for _, m := range middlewares {
		newCtx, err := m(ctx)
		if err != nil {
			return ctx, err
		}

		if newCtx != nil {
			ctx = newCtx
		}
	}

	return ctx, nil
}

func decodeRequest(r *http.Request, method string, req any) error {
	switch method {
	case http.MethodGet:
		query := map[string]any{}
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           req,
		})
		if err != nil {
			return err
		}

		return decoder.Decode(query)

	case http.MethodPost:
		if r.Body == nil {
			return errors.New("empty body")
		}

		err := json.NewDecoder(r.Body).Decode(req)
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}

		return err
	}

	return errors.New("unsupported method")
}

func decodeError(err error) error {
	result := errorx.New(errorx.BadRequest, "Invalid request")

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return result.WithDetails([]errorx.FieldError{{
			Field:   typeErr.Field,
			Message: "unexpected " + typeErr.Value,
		}})
	}

	return result
}
