package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"seastay/config"
	"seastay/infras/otel"
	"seastay/infras/payment"
	"seastay/infras/postgres"
	"seastay/internal/domains/booking/model"
	"seastay/internal/domains/booking/model/dto"
	"seastay/internal/domains/booking/repository"
	calendarRepository "seastay/internal/domains/calendar/repository"
	calendarService "seastay/internal/domains/calendar/service"
	propertyModel "seastay/internal/domains/property/model"
	propertyRepository "seastay/internal/domains/property/repository"
	"seastay/internal/events"
	"seastay/shared"
	"seastay/shared/cache"
	"seastay/shared/constant"
	"seastay/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBySession = "booking:session"
)

// Sentinels used to abort the confirmation transaction. Postgres aborts the
// whole transaction on the unique violation, so the duplicate has to be
// re-read outside of it.
var (
	errDuplicateSession  = errors.New("payment session already recorded")
	errConcurrentBooking = errors.New("nights taken by a concurrent booking")
)

// ConfirmResult reports what a verified payment event did. Exactly one of the
// three outcomes holds: a booking was created, the session was already
// recorded (Created false, Booking set), or the nights were taken in the
// meantime (ConflictingDates set, no booking).
type ConfirmResult struct {
	Booking          dto.BookingResponse
	Created          bool
	ConflictingDates []string
}

type Booking interface {
	// CreateCheckout validates the request, prices the stay and issues a
	// hosted checkout session carrying the booking parameters as metadata.
	// No rows are written; the booking exists only after the payment event.
	CreateCheckout(ctx context.Context, req dto.CreateBookingRequest) (dto.CheckoutResponse, error)
	// Confirm turns a verified completed session into a booking. Safe to call
	// any number of times with the same session.
	Confirm(ctx context.Context, session dto.PaymentSession) (ConfirmResult, error)
	GetBySessionID(ctx context.Context, sessionID string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	calendarRepo calendarRepository.Calendar
	calendarSvc  calendarService.Calendar
	propertyRepo propertyRepository.Property
	db           *postgres.Connection
	provider     payment.Provider
	publisher    events.Publisher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	calendarRepo calendarRepository.Calendar,
	calendarSvc calendarService.Calendar,
	propertyRepo propertyRepository.Property,
	db *postgres.Connection,
	provider payment.Provider,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		calendarRepo: calendarRepo,
		calendarSvc:  calendarSvc,
		propertyRepo: propertyRepo,
		db:           db,
		provider:     provider,
		publisher:    publisher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateCheckout(ctx context.Context, req dto.CreateBookingRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCheckout")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	property, err := s.getProperty(ctx, req.PropertyID)
	if err != nil {
		return res, err
	}

	conflicts, err := s.calendarRepo.BookedDates(ctx, req.PropertyID, checkIn, checkOut)
	if err != nil {
		log.Error().Err(err).Str("propertyID", req.PropertyID).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if len(conflicts) > 0 {
		return res, failure.DatesUnavailable(conflicts) //nolint:wrapcheck
	}

	quote, err := s.calendarSvc.Quote(ctx, req.PropertyID, checkIn, checkOut)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	session, err := s.provider.CreateCheckoutSession(ctx, payment.CheckoutParams{
		AmountMinor:   calendarService.MinorUnits(quote.Total),
		ProductName:   property.Name,
		Description:   fmt.Sprintf("%s to %s, %d nights", req.CheckIn, req.CheckOut, quote.Nights),
		CustomerEmail: req.GuestInfo.Email,
		Metadata:      req.SessionMetadata(quote.Total),
	})
	if err != nil {
		log.Error().Err(err).Str("propertyID", req.PropertyID).Msg("failed to create checkout session")

		return res, fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Info().
		Str("sessionID", session.ID).
		Str("propertyID", req.PropertyID).
		Int("nights", quote.Nights).
		Msg("checkout session created")

	return dto.CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, session dto.PaymentSession) (result ConfirmResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := session.ToModel()
	if err != nil {
		return result, err //nolint:wrapcheck
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.confirmTx(ctx, tx, booking, &result)
	})

	switch {
	case errors.Is(err, errDuplicateSession):
		existing, getErr := s.repo.GetBySessionID(ctx, session.ID)
		if getErr != nil {
			return result, fmt.Errorf("failed to get booking for duplicate session: %w", getErr)
		}

		result.Booking.FromModel(existing)
		result.Created = false
	case errors.Is(err, errConcurrentBooking):
		conflicts, getErr := s.calendarRepo.BookedDates(ctx, booking.PropertyID, booking.CheckIn, booking.CheckOut)
		if getErr != nil {
			return result, fmt.Errorf("failed to get conflicting dates: %w", getErr)
		}

		result.ConflictingDates = conflicts
	case err != nil:
		return result, fmt.Errorf("failed to confirm booking: %w", err)
	}

	s.afterConfirm(ctx, booking, result)

	return result, nil
}

// confirmTx holds the confirmation invariants: the idempotency lookup, the
// locked availability re-check, the booking insert and the calendar marking
// all happen on one snapshot.
func (s *serviceImpl) confirmTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking, result *ConfirmResult) error {
	existing, err := s.repo.GetBySessionIDTx(ctx, tx, booking.PaymentSessionID)
	if err != nil {
		return err
	}

	if existing.ID != constant.Empty {
		result.Booking.FromModel(existing)
		result.Created = false

		return nil
	}

	conflicts, err := s.calendarRepo.BookedDatesTx(ctx, tx, booking.PropertyID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		return err
	}

	if len(conflicts) > 0 {
		result.ConflictingDates = conflicts

		return errConcurrentBooking
	}

	if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
		if postgres.IsUniqueViolation(err) {
			return errDuplicateSession
		}

		return err
	}

	nights := booking.Nights()

	marked, err := s.calendarRepo.MarkBookedTx(ctx, tx, booking.PropertyID, nights)
	if err != nil {
		return err
	}

	// A night created booked by a concurrent confirmation between our locked
	// re-check and the upsert updates zero rows here.
	if marked != int64(len(nights)) {
		return errConcurrentBooking
	}

	result.Booking.FromModel(booking)
	result.Created = true

	return nil
}

func (s *serviceImpl) afterConfirm(ctx context.Context, booking model.Booking, result ConfirmResult) {
	c := context.WithoutCancel(ctx)

	switch {
	case result.Created:
		log.Info().
			Str("bookingID", booking.ID).
			Str("sessionID", booking.PaymentSessionID).
			Msg("booking confirmed")

		s.calendarSvc.Invalidate(c)

		go s.publisher.BookingConfirmed(c, booking)
	case len(result.ConflictingDates) > 0:
		log.Warn().
			Str("sessionID", booking.PaymentSessionID).
			Strs("conflictingDates", result.ConflictingDates).
			Msg("paid session rejected, nights no longer available")

		go s.publisher.BookingRejected(c, booking, result.ConflictingDates)
	default:
		log.Info().
			Str("sessionID", booking.PaymentSessionID).
			Msg("duplicate payment event ignored")
	}
}

func (s *serviceImpl) GetBySessionID(ctx context.Context, sessionID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySessionID")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBySession, sessionID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getProperty(ctx context.Context, propertyID string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found") //nolint:wrapcheck
	}

	return property, nil
}
