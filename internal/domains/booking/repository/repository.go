package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"seastay/infras/otel"
	"seastay/infras/postgres"
	"seastay/internal/domains/booking/model"
	"seastay/shared/constant"
	gDto "seastay/shared/dto"
	"seastay/shared/logger"
	gRepo "seastay/shared/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	GetBySessionID(ctx context.Context, sessionID string) (model.Booking, error)
	// GetBySessionIDTx is the idempotency lookup inside the confirmation
	// transaction.
	GetBySessionIDTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (model.Booking, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetBySessionID(ctx context.Context, sessionID string) (model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPaymentSessionID,
				Operator: gDto.FilterOperatorEq,
				Value:    sessionID,
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBySessionIDTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetBySessionIDTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(repo.InsertColumns, ", "), model.TableName, model.FieldPaymentSessionID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &booking, query, sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to get booking by session ID (%s): %w", model.EntityName, err)
	}

	return booking, nil
}
