package booking

import (
	"net/http"
	"seastay/infras/otel"
	"seastay/internal/domains/booking/model/dto"
	"seastay/internal/domains/booking/service"
	"seastay/shared/constant"
	"seastay/shared/failure"
	"seastay/shared/validator"
	"seastay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/booking", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateCheckout)
		routerGroup.Get("/details", handler.GetDetails)
	})
}

// CreateCheckout validates the request and returns the hosted payment page
// for the stay. The booking itself is only written once payment completes.
func (handler *Handler) CreateCheckout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCheckout")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateCheckout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create checkout")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDetails returns the confirmed booking for a checkout session.
func (handler *Handler) GetDetails(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDetails")
	defer scope.End()

	sessionID := request.URL.Query().Get(constant.RequestParamSessionID)
	if sessionID == constant.Empty {
		response.WithError(writer, failure.MissingSessionID)

		return
	}

	res, err := handler.service.GetBySessionID(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to get booking details")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
