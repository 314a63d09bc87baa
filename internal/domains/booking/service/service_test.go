package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"seastay/config"
	otelMocks "seastay/infras/otel/mocks"
	"seastay/infras/payment"
	paymentMocks "seastay/infras/payment/mocks"
	"seastay/infras/postgres"
	bookingMocks "seastay/internal/domains/booking/mocks"
	"seastay/internal/domains/booking/model"
	"seastay/internal/domains/booking/model/dto"
	"seastay/internal/domains/booking/service"
	calendarMocks "seastay/internal/domains/calendar/mocks"
	calendarDto "seastay/internal/domains/calendar/model/dto"
	propertyMocks "seastay/internal/domains/property/mocks"
	propertyModel "seastay/internal/domains/property/model"
	eventMocks "seastay/internal/events/mocks"
	"seastay/shared/cache"
	cacheMocks "seastay/shared/cache/mocks"
	"seastay/shared/constant"
	"seastay/shared/failure"
)

type fixture struct {
	repo         *bookingMocks.MockBooking
	calendarRepo *calendarMocks.MockCalendar
	calendarSvc  *calendarMocks.MockCalendarService
	propertyRepo *propertyMocks.MockProperty
	provider     *paymentMocks.MockProvider
	publisher    *eventMocks.MockPublisher
	cache        *cacheMocks.MockRedisCache
	sqlMock      sqlmock.Sqlmock
	svc          service.Booking
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	rawDB, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	t.Cleanup(func() { rawDB.Close() })

	db := sqlx.NewDb(rawDB, "postgres")

	f := &fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		calendarRepo: calendarMocks.NewMockCalendar(ctrl),
		calendarSvc:  calendarMocks.NewMockCalendarService(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		provider:     paymentMocks.NewMockProvider(ctrl),
		publisher:    eventMocks.NewMockPublisher(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
		sqlMock:      sqlMock,
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(
		f.repo,
		f.calendarRepo,
		f.calendarSvc,
		f.propertyRepo,
		&postgres.Connection{Read: db, Write: db},
		f.provider,
		f.publisher,
		cfg,
		f.cache,
		otelMocks.NewOtel(),
	)

	return f
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PropertyID: "prop-1",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Adults:     2,
		Children:   1,
		GuestInfo: dto.GuestInfo{
			Name:  "Jane Walker",
			Email: "jane@example.com",
		},
	}
}

func paidSession() dto.PaymentSession {
	return dto.PaymentSession{
		ID: "cs_test_123",
		Metadata: map[string]string{
			dto.MetadataKeyPropertyID: "prop-1",
			dto.MetadataKeyCheckIn:    "2024-06-01",
			dto.MetadataKeyCheckOut:   "2024-06-04",
			dto.MetadataKeyAdults:     "2",
			dto.MetadataKeyChildren:   "1",
			dto.MetadataKeyGuestName:  "Jane Walker",
			dto.MetadataKeyGuestEmail: "jane@example.com",
			dto.MetadataKeyTotalPrice: "350",
		},
	}
}

func TestBookingService_CreateCheckout(t *testing.T) {
	oceanView := propertyModel.Property{
		ID:        "prop-1",
		Name:      "Ocean View Villa",
		BasePrice: decimal.RequireFromString("100"),
	}

	t.Run("issues session with quoted amount and metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
		f.calendarRepo.EXPECT().BookedDates(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
			Return([]string{}, nil)
		f.calendarSvc.EXPECT().Quote(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
			Return(calendarDto.Quote{Total: decimal.RequireFromString("350"), Nights: 3}, nil)
		f.provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params payment.CheckoutParams) (payment.CheckoutSession, error) {
				assert.Equal(t, int64(35000), params.AmountMinor)
				assert.Equal(t, "Ocean View Villa", params.ProductName)
				assert.Equal(t, "jane@example.com", params.CustomerEmail)
				assert.Equal(t, "prop-1", params.Metadata[dto.MetadataKeyPropertyID])
				assert.Equal(t, "2024-06-01", params.Metadata[dto.MetadataKeyCheckIn])
				assert.Equal(t, "2024-06-04", params.Metadata[dto.MetadataKeyCheckOut])
				assert.Equal(t, "350", params.Metadata[dto.MetadataKeyTotalPrice])

				return payment.CheckoutSession{ID: "cs_test_123", URL: "https://pay.example.com/cs_test_123"}, nil
			})

		res, err := f.svc.CreateCheckout(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_123", res.SessionID)
		assert.Equal(t, "https://pay.example.com/cs_test_123", res.URL)
	})

	t.Run("rejects overlap with booked nights", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
		f.calendarRepo.EXPECT().BookedDates(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return([]string{"2024-06-02", "2024-06-03"}, nil)

		_, err := f.svc.CreateCheckout(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))

		dates, ok := failure.IsDatesUnavailable(err)
		assert.True(t, ok)
		assert.Equal(t, []string{"2024-06-02", "2024-06-03"}, dates)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		req := validRequest()
		req.CheckIn = "June 1st"

		_, err := f.svc.CreateCheckout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		req := validRequest()
		req.CheckIn = "2024-06-04"
		req.CheckOut = "2024-06-01"

		_, err := f.svc.CreateCheckout(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown property", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(propertyModel.Property{}, nil)

		_, err := f.svc.CreateCheckout(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
		f.calendarRepo.EXPECT().BookedDates(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return([]string{}, nil)
		f.calendarSvc.EXPECT().Quote(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return(calendarDto.Quote{Total: decimal.RequireFromString("350"), Nights: 3}, nil)
		f.provider.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(payment.CheckoutSession{}, errors.New("provider unavailable"))

		_, err := f.svc.CreateCheckout(context.Background(), validRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_Confirm(t *testing.T) {
	t.Run("creates booking and marks nights", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()

		f.repo.EXPECT().GetBySessionIDTx(gomock.Any(), gomock.Any(), "cs_test_123").
			Return(model.Booking{}, nil)
		f.calendarRepo.EXPECT().BookedDatesTx(gomock.Any(), gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
			Return([]string{}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, booking model.Booking) error {
				assert.Equal(t, "cs_test_123", booking.PaymentSessionID)
				assert.Equal(t, model.StatusConfirmed, booking.Status)
				assert.True(t, booking.TotalPrice.Equal(decimal.RequireFromString("350")))

				return nil
			})
		f.calendarRepo.EXPECT().MarkBookedTx(gomock.Any(), gomock.Any(), "prop-1",
			[]time.Time{day(2024, 6, 1), day(2024, 6, 2), day(2024, 6, 3)}).
			Return(int64(3), nil)
		f.calendarSvc.EXPECT().Invalidate(gomock.Any())

		var wg sync.WaitGroup

		wg.Add(1)

		f.publisher.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).
			Do(func(context.Context, model.Booking) { wg.Done() })

		result, err := f.svc.Confirm(context.Background(), paidSession())

		wg.Wait()

		assert.NoError(t, err)
		assert.True(t, result.Created)
		assert.Empty(t, result.ConflictingDates)
		assert.Equal(t, "cs_test_123", result.Booking.PaymentSessionID)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("repeated event is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectCommit()

		existing := model.Booking{
			ID:               "booking-1",
			PropertyID:       "prop-1",
			CheckIn:          day(2024, 6, 1),
			CheckOut:         day(2024, 6, 4),
			Status:           model.StatusConfirmed,
			PaymentSessionID: "cs_test_123",
		}

		f.repo.EXPECT().GetBySessionIDTx(gomock.Any(), gomock.Any(), "cs_test_123").
			Return(existing, nil)

		result, err := f.svc.Confirm(context.Background(), paidSession())

		assert.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "booking-1", result.Booking.ID)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("nights taken since checkout are acknowledged without a booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		f.repo.EXPECT().GetBySessionIDTx(gomock.Any(), gomock.Any(), "cs_test_123").
			Return(model.Booking{}, nil)
		f.calendarRepo.EXPECT().BookedDatesTx(gomock.Any(), gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
			Return([]string{"2024-06-02"}, nil)
		f.calendarRepo.EXPECT().BookedDates(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
			Return([]string{"2024-06-02"}, nil)

		var wg sync.WaitGroup

		wg.Add(1)

		f.publisher.EXPECT().BookingRejected(gomock.Any(), gomock.Any(), []string{"2024-06-02"}).
			Do(func(context.Context, model.Booking, []string) { wg.Done() })

		result, err := f.svc.Confirm(context.Background(), paidSession())

		wg.Wait()

		assert.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, []string{"2024-06-02"}, result.ConflictingDates)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("unique violation on insert resolves to the existing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		f.repo.EXPECT().GetBySessionIDTx(gomock.Any(), gomock.Any(), "cs_test_123").
			Return(model.Booking{}, nil)
		f.calendarRepo.EXPECT().BookedDatesTx(gomock.Any(), gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return([]string{}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		existing := model.Booking{
			ID:               "booking-1",
			PropertyID:       "prop-1",
			CheckIn:          day(2024, 6, 1),
			CheckOut:         day(2024, 6, 4),
			Status:           model.StatusConfirmed,
			PaymentSessionID: "cs_test_123",
		}

		f.repo.EXPECT().GetBySessionID(gomock.Any(), "cs_test_123").Return(existing, nil)

		result, err := f.svc.Confirm(context.Background(), paidSession())

		assert.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "booking-1", result.Booking.ID)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("partial calendar marking aborts the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.sqlMock.ExpectBegin()
		f.sqlMock.ExpectRollback()

		f.repo.EXPECT().GetBySessionIDTx(gomock.Any(), gomock.Any(), "cs_test_123").
			Return(model.Booking{}, nil)
		f.calendarRepo.EXPECT().BookedDatesTx(gomock.Any(), gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return([]string{}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.calendarRepo.EXPECT().MarkBookedTx(gomock.Any(), gomock.Any(), "prop-1", gomock.Any()).
			Return(int64(2), nil)
		f.calendarRepo.EXPECT().BookedDates(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
			Return([]string{"2024-06-03"}, nil)

		var wg sync.WaitGroup

		wg.Add(1)

		f.publisher.EXPECT().BookingRejected(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(context.Context, model.Booking, []string) { wg.Done() })

		result, err := f.svc.Confirm(context.Background(), paidSession())

		wg.Wait()

		assert.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, []string{"2024-06-03"}, result.ConflictingDates)
		assert.NoError(t, f.sqlMock.ExpectationsWereMet())
	})

	t.Run("malformed metadata is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		session := paidSession()
		session.Metadata[dto.MetadataKeyTotalPrice] = "a lot"

		_, err := f.svc.Confirm(context.Background(), session)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_GetBySessionID(t *testing.T) {
	t.Run("returns stored booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		f.repo.EXPECT().GetBySessionID(gomock.Any(), "cs_test_123").
			Return(model.Booking{
				ID:               "booking-1",
				PropertyID:       "prop-1",
				CheckIn:          day(2024, 6, 1),
				CheckOut:         day(2024, 6, 4),
				TotalPrice:       decimal.RequireFromString("350"),
				Status:           model.StatusConfirmed,
				PaymentSessionID: "cs_test_123",
			}, nil)

		res, err := f.svc.GetBySessionID(context.Background(), "cs_test_123")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "2024-06-01", res.CheckIn)
		assert.Equal(t, "2024-06-04", res.CheckOut)
		assert.InDelta(t, 350.0, res.TotalPrice, 0.0001)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(t, ctrl)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		f.repo.EXPECT().GetBySessionID(gomock.Any(), "cs_missing").
			Return(model.Booking{}, nil)

		_, err := f.svc.GetBySessionID(context.Background(), "cs_missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
