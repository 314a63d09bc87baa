package availability

import (
	"net/http"
	"seastay/config"
	"seastay/infras/otel"
	"seastay/internal/domains/calendar/service"
	"seastay/shared/constant"
	"seastay/shared/failure"
	"seastay/shared/timezone"
	"seastay/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Calendar, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
}

// GetAvailability returns per-date availability and nightly prices. Without an
// explicit range it covers today through the default window, and without a
// propertyId it falls back to the configured property.
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := request.URL.Query()

	propertyID := query.Get(constant.RequestParamPropertyID)
	if propertyID == constant.Empty {
		propertyID = handler.cfg.App.PropertyID
	}

	if propertyID == constant.Empty {
		response.WithError(writer, failure.MissingPropertyID)

		return
	}

	from, to, err := parseRange(query.Get(constant.RequestParamStartDate), query.Get(constant.RequestParamEndDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Resolve(ctx, propertyID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to resolve availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func parseRange(startParam, endParam string) (from, to time.Time, err error) {
	// Normalized to a UTC date so defaults compare cleanly with parsed params.
	local := timezone.Today()
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	from = today
	to = today.AddDate(0, 0, constant.DefaultAvailabilityWindowDays)

	if startParam != constant.Empty {
		from, err = time.Parse(constant.DateOnlyFormat, startParam)
		if err != nil {
			return from, to, failure.InvalidDateParam
		}
	}

	if endParam != constant.Empty {
		to, err = time.Parse(constant.DateOnlyFormat, endParam)
		if err != nil {
			return from, to, failure.InvalidDateParam
		}
	}

	if to.Before(from) {
		return from, to, failure.BadRequestFromString("end date must not be before start date")
	}

	return from, to, nil
}
