package dto

import (
	"seastay/internal/domains/property/model"

	gDto "seastay/shared/dto"
)

type PropertyResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
	BasePrice   float64  `json:"base_price"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Amenities = model.Amenities
	r.BasePrice = model.BasePrice.InexactFloat64()
	r.Metadata.FromModel(model.Metadata)
}
