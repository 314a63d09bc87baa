package model

import (
	"seastay/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID        = "id"
	FieldOwnerID   = "owner_id"
	FieldName      = "name"
	FieldBasePrice = "base_price"
)

// Property is the single unit this deployment rents out. BasePrice is the
// fallback nightly rate for any night without a calendar override.
type Property struct {
	ID          string          `db:"id"`
	OwnerID     string          `db:"owner_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Location    string          `db:"location"`
	Amenities   pq.StringArray  `db:"amenities"`
	BasePrice   decimal.Decimal `db:"base_price"`
	model.Metadata
}
