package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Handler is an endpoint that returns a payload to encode as JSON, or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router dispatches through httprouter, wrapping every route in the shared
// middleware stack captured at registration time.
type Router struct {
	hr          *httprouter.Router
	mws         []Middleware
	serverError http.Handler
}

// NewRouter returns a router with panic recovery, correlation IDs, access
// logging, and a /health endpoint. mws run after those on every route,
// including /health and the not found and method not allowed handlers.
func NewRouter(uuid Generator, mws ...Middleware) *Router {
	ro := &Router{
		hr: &httprouter.Router{
			RedirectTrailingSlash:  true,
			RedirectFixedPath:      true,
			HandleMethodNotAllowed: true,
			HandleOPTIONS:          true,
		},
	}
	ro.mws = append([]Middleware{
		ro.middlewareRecoverer,
		middlewareCorrelationID(uuid),
		middlewareLogging,
	}, mws...)

	ro.hr.NotFound = ro.wrap(jsonStatus(http.StatusNotFound, "endpoint not found"))
	ro.hr.MethodNotAllowed = ro.wrap(jsonStatus(http.StatusMethodNotAllowed, "method not allowed"))

	ro.Handle(http.MethodGet, "/health", jsonStatus(http.StatusOK, ""))

	return ro
}

// Use appends middleware to the shared stack. Routes registered earlier keep
// the stack they were registered with.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// NotFound replaces the handler for unmatched paths, wrapped in the current stack.
func (r *Router) NotFound(h http.Handler) {
	r.hr.NotFound = r.wrap(h)
}

// ServerError replaces the JSON body written after a recovered panic. It is
// looked up when the panic happens, so it also covers routes registered earlier.
func (r *Router) ServerError(h http.Handler) {
	r.serverError = h
}

func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.Handle(http.MethodGet, path, r.adapt(h), mws...)
}

func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.Handle(http.MethodPost, path, r.adapt(h), mws...)
}

// Handle registers a plain http.Handler, for endpoints that render something
// other than JSON.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, withRoute(path, r.wrap(h, mws...)))
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

// wrap applies a copy of the shared stack followed by route-level mws.
func (r *Router) wrap(h http.Handler, mws ...Middleware) http.Handler {
	all := make([]Middleware, 0, len(r.mws)+len(mws))
	all = append(all, r.mws...)
	all = append(all, mws...)
	return Chain(h, all...)
}

type routeKey struct{}

// withRoute records the registered pattern so logs group requests by route.
func withRoute(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		next.ServeHTTP(w, req.WithContext(context.WithValue(req.Context(), routeKey{}, pattern)))
	})
}

func (r *Router) adapt(h Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		resp, err := h(ctx, req)
		if err != nil {
			encodeError(ctx, w, err)
			return
		}
		encodeResponse(w, resp)
	})
}
