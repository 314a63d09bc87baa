package router

import (
	"seastay/internal/handlers/availability"
	"seastay/internal/handlers/booking"
	"seastay/internal/handlers/photo"
	"seastay/internal/handlers/property"
	"seastay/internal/handlers/webhook"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property     property.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Webhook      webhook.Handler
	Photo        photo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Property.Router(router)
	r.DomainHandlers.Availability.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Webhook.Router(router)
	r.DomainHandlers.Photo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
