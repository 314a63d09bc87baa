package webhook

import (
	"io"
	"net/http"
	"seastay/infras/otel"
	"seastay/infras/payment"
	bookingDto "seastay/internal/domains/booking/model/dto"
	"seastay/internal/domains/booking/service"
	"seastay/shared/constant"
	"seastay/shared/failure"
	"seastay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// maxPayloadBytes bounds the webhook body read before signature verification.
const maxPayloadBytes = 1 << 16

type ReceivedResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	service  service.Booking
	provider payment.Provider
	otel     otel.Otel
}

func New(service service.Booking, provider payment.Provider, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		provider: provider,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhook/payment", handler.HandlePaymentEvent)
}

// HandlePaymentEvent verifies a provider notification and confirms the
// booking it pays for. Any verified event is acknowledged with 200 so the
// provider stops redelivering, including duplicates and sessions whose nights
// were taken in the meantime.
func (handler *Handler) HandlePaymentEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandlePaymentEvent")
	defer scope.End()

	payload, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, maxPayloadBytes))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read webhook payload")

		response.WithError(writer, failure.BadRequestFromString("failed to read webhook payload"))

		return
	}

	event, err := handler.provider.VerifyEvent(payload, request.Header.Get(constant.RequestHeaderStripeSignature))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if event.Type != payment.EventTypeCheckoutCompleted {
		log.Info().Str("eventType", event.Type).Msg("ignoring payment event")

		response.WithRawJSON(writer, http.StatusOK, ReceivedResponse{Received: true})

		return
	}

	result, err := handler.service.Confirm(ctx, bookingDto.PaymentSession{
		ID:       event.SessionID,
		Metadata: event.Metadata,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("sessionID", event.SessionID).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	if result.Created {
		scope.AddEvent("booking confirmed for session " + event.SessionID)
	}

	response.WithRawJSON(writer, http.StatusOK, ReceivedResponse{Received: true})
}
