package dto

import (
	"mime/multipart"
	"seastay/internal/domains/photo/model"
	gDto "seastay/shared/dto"
	gModel "seastay/shared/model"
	"seastay/shared/timezone"

	"github.com/google/uuid"
)

type UploadPhotoRequest struct {
	Image    *multipart.FileHeader `json:"image"    validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	Caption  string                `json:"caption"  validate:"omitempty,max=200"`
	Position int                   `json:"position" validate:"min=0"`
}

func (u *UploadPhotoRequest) ToModel(propertyID, url string) model.Photo {
	return model.Photo{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		URL:        url,
		Caption:    u.Caption,
		Position:   u.Position,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type PhotoResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	URL        string `json:"url"`
	Caption    string `json:"caption,omitempty"`
	Position   int    `json:"position"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.URL = model.URL
	r.Caption = model.Caption
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos []PhotoResponse `json:"photos"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo) {
	r.Photos = make([]PhotoResponse, len(models))
	for i, mod := range models {
		r.Photos[i].FromModel(mod)
	}
}
