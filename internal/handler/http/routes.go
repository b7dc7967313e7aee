package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Custodian routes.
const (
	routeRegister = "/api/custodian/register"
	routeAuth     = "/api/custodian/auth"
	routeKeys     = "/api/custodian/keys"
	routeRecover  = "/api/custodian/recover"
	routeVersion  = "/api/version"
	routeMetrics  = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(routeRegister, h.register)
		r.Post(routeAuth, h.authenticate)
		r.Post(routeRecover, h.recover)
		r.Get(routeVersion, h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", routeMetrics, h.metrics.Handler())
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put(routeKeys, h.setKeys)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
