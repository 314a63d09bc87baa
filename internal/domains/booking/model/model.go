package model

import (
	"seastay/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldPropertyID       = "property_id"
	FieldCheckIn          = "check_in"
	FieldCheckOut         = "check_out"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldStatus           = "status"
	FieldPaymentSessionID = "payment_session_id"
)

const (
	StatusConfirmed = "confirmed"
)

// Booking is a paid, confirmed stay. Rows only come into existence through a
// verified payment event; there is no pending state in the store.
type Booking struct {
	ID               string          `db:"id"`
	PropertyID       string          `db:"property_id"`
	CheckIn          time.Time       `db:"check_in"`
	CheckOut         time.Time       `db:"check_out"`
	Adults           int             `db:"adults"`
	Children         int             `db:"children"`
	GuestName        string          `db:"guest_name"`
	GuestEmail       string          `db:"guest_email"`
	GuestPhone       string          `db:"guest_phone"`
	TotalPrice       decimal.Decimal `db:"total_price"`
	Status           string          `db:"status"`
	PaymentSessionID string          `db:"payment_session_id"`
	model.Metadata
}

// Nights returns each night of the stay, check-in included and check-out
// excluded.
func (b Booking) Nights() []time.Time {
	var nights []time.Time
	for night := b.CheckIn; night.Before(b.CheckOut); night = night.AddDate(0, 0, 1) {
		nights = append(nights, night)
	}

	return nights
}
