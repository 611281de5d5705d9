package router

import (
	"context"
	"net/http"

	"github.com/questx-lab/raffle/pkg/xcontext"
)

// valuesContext lets the request context inherit values of the router context while keeping the
// deadline and cancellation of the request.
type valuesContext struct {
	context.Context
	values context.Context
}

func (c valuesContext) Value(key any) any {
	if v := c.Context.Value(key); v != nil {
		return v
	}

	return c.values.Value(key)
}

func newRequestContext(base context.Context, w http.ResponseWriter, req *http.Request) context.Context {
	var ctx context.Context = valuesContext{Context: req.Context(), values: base}
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithHTTPWriter(ctx, w)
	return ctx
}
