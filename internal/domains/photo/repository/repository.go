package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"seastay/infras/otel"
	"seastay/infras/postgres"
	"seastay/internal/domains/photo/model"
	gDto "seastay/shared/dto"
	gRepo "seastay/shared/repository"
)

type Photo interface {
	Insert(ctx context.Context, photo model.Photo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Photo, error)
	GetAllByProperty(ctx context.Context, propertyID string) ([]model.Photo, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Photo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Photo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Photo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllByProperty(ctx context.Context, propertyID string) ([]model.Photo, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, filter, model.FieldPosition) //nolint:wrapcheck
}
