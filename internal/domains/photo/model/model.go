package model

import "seastay/shared/model"

const (
	TableName  = "property_photos"
	EntityName = "photo"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldPosition   = "position"
)

type Photo struct {
	ID         string `db:"id"`
	PropertyID string `db:"property_id"`
	URL        string `db:"url"`
	Caption    string `db:"caption"`
	Position   int    `db:"position"`
	model.Metadata
}
