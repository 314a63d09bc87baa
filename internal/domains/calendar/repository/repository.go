package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"seastay/infras/otel"
	"seastay/infras/postgres"
	"seastay/internal/domains/calendar/model"
	"seastay/shared/constant"
	gDto "seastay/shared/dto"
	"seastay/shared/logger"
	gRepo "seastay/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Calendar interface {
	// GetRange returns every calendar row for the property with
	// from <= date <= to.
	GetRange(ctx context.Context, propertyID string, from, to time.Time) ([]model.CalendarDay, error)
	// BookedDates returns the booked nights in [from, to) as yyyy-MM-dd strings.
	BookedDates(ctx context.Context, propertyID string, from, to time.Time) ([]string, error)
	// BookedDatesTx is BookedDates inside a transaction, locking every row in
	// the range so a concurrent confirmation cannot change them underneath us.
	BookedDatesTx(ctx context.Context, tx *sqlx.Tx, propertyID string, from, to time.Time) ([]string, error)
	// MarkBookedTx flips the given nights to booked, creating rows for nights
	// that have none. Rows already booked are left untouched, so the returned
	// count falling short of len(nights) means another booking won the race.
	MarkBookedTx(ctx context.Context, tx *sqlx.Tx, propertyID string, nights []time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CalendarDay]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Calendar {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CalendarDay](model.EntityName, model.TableName, model.FieldDate, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetRange(ctx context.Context, propertyID string, from, to time.Time) ([]model.CalendarDay, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to.Format(constant.DateOnlyFormat),
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, filter, model.FieldDate) //nolint:wrapcheck
}

const bookedDatesQuery = `SELECT date FROM calendar_days
WHERE property_id = $1 AND status = $2 AND date >= $3 AND date < $4
ORDER BY date`

func (repo *repositoryImpl) BookedDates(ctx context.Context, propertyID string, from, to time.Time) (dates []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".calendar_day.BookedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, bookedDatesQuery)

	var rows []time.Time

	err = repo.db.Read.SelectContext(ctx, &rows, bookedDatesQuery,
		propertyID, model.StatusBooked, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get booked dates (%s): %w", model.EntityName, err)
	}

	return formatDates(rows), nil
}

const lockedBookedDatesQuery = `SELECT date FROM calendar_days
WHERE property_id = $1 AND status = $2 AND date >= $3 AND date < $4
ORDER BY date
FOR UPDATE`

func (repo *repositoryImpl) BookedDatesTx(ctx context.Context, tx *sqlx.Tx, propertyID string, from, to time.Time) (dates []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".calendar_day.BookedDatesTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockedBookedDatesQuery)

	var rows []time.Time

	err = tx.SelectContext(ctx, &rows, lockedBookedDatesQuery,
		propertyID, model.StatusBooked, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get booked dates (%s): %w", model.EntityName, err)
	}

	return formatDates(rows), nil
}

// The WHERE on the conflict action keeps already-booked rows untouched, so two
// transactions racing for the same nights cannot both come out with the full
// count: the loser blocks on the winner's rows and then updates zero of them.
const markBookedQuery = `INSERT INTO calendar_days (property_id, date, status, created_at, modified_at)
VALUES ($1, $2, $3, NOW(), NOW())
ON CONFLICT (property_id, date)
DO UPDATE SET status = EXCLUDED.status, modified_at = NOW()
WHERE calendar_days.status != EXCLUDED.status`

func (repo *repositoryImpl) MarkBookedTx(ctx context.Context, tx *sqlx.Tx, propertyID string, nights []time.Time) (marked int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".calendar_day.MarkBookedTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, markBookedQuery)

	for _, night := range nights {
		res, err := tx.ExecContext(ctx, markBookedQuery, propertyID, night.Format(constant.DateOnlyFormat), model.StatusBooked)
		if err != nil {
			logger.ErrorWithStack(err)

			return marked, fmt.Errorf("failed to mark night booked (%s): %w", model.EntityName, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return marked, fmt.Errorf("failed to mark night booked (%s): %w", model.EntityName, err)
		}

		marked += affected
	}

	return marked, nil
}

func formatDates(rows []time.Time) []string {
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Format(constant.DateOnlyFormat)
	}

	return dates
}
