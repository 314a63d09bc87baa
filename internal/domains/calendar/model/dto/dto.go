package dto

import (
	"github.com/shopspring/decimal"
)

// DayInfo is one resolved night: whether it can be booked and what it costs.
type DayInfo struct {
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// AvailabilityResponse maps every date in the requested range (yyyy-MM-dd) to
// its resolved availability and nightly price.
type AvailabilityResponse struct {
	PropertyID string             `json:"property_id"`
	BasePrice  float64            `json:"base_price"`
	Dates      map[string]DayInfo `json:"dates"`
}

// Quote is the deterministic total for a stay, kept as an exact decimal so the
// amount shown to the guest and the amount charged cannot drift apart.
type Quote struct {
	Total  decimal.Decimal
	Nights int
}
