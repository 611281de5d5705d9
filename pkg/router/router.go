package router

import (
	"context"
	"net/http"
	"sync"

	"github.com/questx-lab/raffle/pkg/errorx"
	"github.com/questx-lab/raffle/pkg/xcontext"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc returns a new context to replace the current one of the request. Returning a nil
// context keeps the current one.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc is always called after the response is written, even if the request failed.
type CloserFunc func(ctx context.Context)

type Router struct {
	ctx    context.Context
	mux    *http.ServeMux
	routes *routeTable

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

type routeTable struct {
	mu      sync.Mutex
	entries map[string]*route
}

// New creates a router. The values of the given context (database, logger, configs, ...) are
// visible from the context of every request.
func New(ctx context.Context) *Router {
	return &Router{
		ctx:    ctx,
		mux:    http.NewServeMux(),
		routes: &routeTable{entries: map[string]*route{}},
	}
}

// Branch creates a child router sharing the same routes. Middlewares added to the branch don't
// affect its parent.
func (r *Router) Branch() *Router {
	return &Router{
		ctx:     r.ctx,
		mux:     r.mux,
		routes:  r.routes,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware ...MiddlewareFunc) {
	r.befores = append(r.befores, middleware...)
}

func (r *Router) After(middleware ...MiddlewareFunc) {
	r.afters = append(r.afters, middleware...)
}

func (r *Router) AddCloser(closer ...CloserFunc) {
	r.closers = append(r.closers, closer...)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.handle(http.MethodGet, pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.handle(http.MethodPost, pattern, wrapHandler(r, http.MethodPost, handler))
}

// Handler returns the http.Handler of all routes, wrapped with CORS headers for the allowed
// origins.
func (r *Router) Handler(allowedOrigins ...string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Apikey", "X-Client-Info"},
	}).Handler(r.mux)
}

func (r *Router) handle(method, pattern string, h http.Handler) {
	r.routes.mu.Lock()
	defer r.routes.mu.Unlock()

	entry, ok := r.routes.entries[pattern]
	if !ok {
		entry = &route{router: r, handlers: map[string]http.Handler{}}
		r.routes.entries[pattern] = entry
		r.mux.Handle(pattern, entry)
	}

	if _, ok := entry.handlers[method]; ok {
		panic("duplicated route " + method + " " + pattern)
	}

	entry.handlers[method] = h
}

type route struct {
	router   *Router
	handlers map[string]http.Handler
}

func (e *route) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if h, ok := e.handlers[req.Method]; ok {
		h.ServeHTTP(w, req)
		return
	}

	ctx := newRequestContext(e.router.ctx, w, req)
	err := errorx.New(errorx.MethodNotAllowed, "Method %s is not allowed", req.Method)
	ctx = xcontext.WithError(ctx, err)
	writeError(ctx, w, err)
	for _, closer := range e.router.closers {
		closer(ctx)
	}
}
