package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"seastay/config"
	"seastay/infras/kafka"
	"seastay/internal/domains/booking/model"
	"seastay/shared/constant"

	"github.com/rs/zerolog/log"
)

// BookingConfirmedEvent is published after a booking row is committed.
type BookingConfirmedEvent struct {
	BookingID        string  `json:"booking_id"`
	PropertyID       string  `json:"property_id"`
	PaymentSessionID string  `json:"payment_session_id"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	GuestEmail       string  `json:"guest_email"`
	TotalPrice       float64 `json:"total_price"`
}

// BookingRejectedEvent is published when a paid session loses the availability
// re-check. Downstream consumers handle the refund and guest notification.
type BookingRejectedEvent struct {
	PaymentSessionID string   `json:"payment_session_id"`
	PropertyID       string   `json:"property_id"`
	ConflictingDates []string `json:"conflicting_dates"`
}

type Publisher interface {
	BookingConfirmed(ctx context.Context, booking model.Booking)
	BookingRejected(ctx context.Context, booking model.Booking, conflictingDates []string)
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
	}
}

// BookingConfirmed publishes on a best-effort basis: the booking is already
// committed, so a broker failure is logged rather than surfaced to the
// payment provider.
func (p *kafkaPublisher) BookingConfirmed(ctx context.Context, booking model.Booking) {
	event := BookingConfirmedEvent{
		BookingID:        booking.ID,
		PropertyID:       booking.PropertyID,
		PaymentSessionID: booking.PaymentSessionID,
		CheckIn:          booking.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:         booking.CheckOut.Format(constant.DateOnlyFormat),
		GuestEmail:       booking.GuestEmail,
		TotalPrice:       booking.TotalPrice.InexactFloat64(),
	}

	message := kafka.Message{Key: booking.PaymentSessionID, Value: event}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingConfirmed, message); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking confirmed event")
	}
}

func (p *kafkaPublisher) BookingRejected(ctx context.Context, booking model.Booking, conflictingDates []string) {
	event := BookingRejectedEvent{
		PaymentSessionID: booking.PaymentSessionID,
		PropertyID:       booking.PropertyID,
		ConflictingDates: conflictingDates,
	}

	message := kafka.Message{Key: booking.PaymentSessionID, Value: event}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingRejected, message); err != nil {
		log.Error().Err(err).Str("sessionID", booking.PaymentSessionID).Msg("failed to publish booking rejected event")
	}
}
