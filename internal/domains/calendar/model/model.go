package model

import (
	"seastay/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "calendar_days"
	EntityName = "calendar_day"

	FieldPropertyID = "property_id"
	FieldDate       = "date"
	FieldStatus     = "status"
	FieldPrice      = "price"
)

const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
	StatusBlocked   = "blocked"
)

// CalendarDay is one night of one property. A row only exists for nights that
// deviate from the default: booked, blocked, or priced differently from the
// property's base price. Absence of a row means open at base price.
type CalendarDay struct {
	PropertyID string              `db:"property_id"`
	Date       time.Time           `db:"date"`
	Status     string              `db:"status"`
	Price      decimal.NullDecimal `db:"price"`
	model.Metadata
}

// Bookable reports whether the night can still be sold.
func (d CalendarDay) Bookable() bool {
	return d.Status != StatusBooked && d.Status != StatusBlocked
}
