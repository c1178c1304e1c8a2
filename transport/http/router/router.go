package router

import (
	"net/http"
	"stay/internal/handlers/booking"
	"stay/internal/handlers/hotel"
	"stay/transport/http/middleware"
	"stay/transport/http/response"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Booking booking.Handler
	Hotel   hotel.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(mux *chi.Mux) {
	mux.Use(r.Middleware.CORS())
	mux.Use(r.Middleware.Tracing)
	mux.Use(r.Middleware.RateLimit())

	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "ok")
	})

	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
