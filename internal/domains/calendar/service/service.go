package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Calendar=MockCalendarService

import (
	"context"
	"fmt"
	"seastay/config"
	"seastay/infras/otel"
	"seastay/internal/domains/calendar/model"
	"seastay/internal/domains/calendar/model/dto"
	"seastay/internal/domains/calendar/repository"
	propertyModel "seastay/internal/domains/property/model"
	propertyRepository "seastay/internal/domains/property/repository"
	"seastay/shared"
	"seastay/shared/cache"
	"seastay/shared/constant"
	"seastay/shared/failure"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheResolve = "calendar:resolve"
)

var minorUnitFactor = decimal.NewFromInt(100)

type Calendar interface {
	// Resolve returns availability and nightly price for every date in
	// [from, to], both bounds included. Nights without a calendar row come
	// back available at the property's base price.
	Resolve(ctx context.Context, propertyID string, from, to time.Time) (dto.AvailabilityResponse, error)
	// Quote totals the nightly prices over [checkIn, checkOut), the checkout
	// day itself never being charged.
	Quote(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (dto.Quote, error)
	// Invalidate drops every cached availability range. Called after a
	// confirmed booking changes the calendar.
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo         repository.Calendar
	propertyRepo propertyRepository.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Calendar, propertyRepo propertyRepository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Calendar {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, propertyID string, from, to time.Time) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheResolve, propertyID, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	property, err := s.getProperty(ctx, propertyID)
	if err != nil {
		return res, err
	}

	days, err := s.repo.GetRange(ctx, propertyID, from, to)
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get calendar range")

		return res, fmt.Errorf("failed to resolve availability: %w", err)
	}

	res = dto.AvailabilityResponse{
		PropertyID: propertyID,
		BasePrice:  property.BasePrice.InexactFloat64(),
		Dates:      resolveDates(property.BasePrice, from, to, days),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Quote(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (quote dto.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkOut.After(checkIn) {
		return quote, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	property, err := s.getProperty(ctx, propertyID)
	if err != nil {
		return quote, err
	}

	lastNight := checkOut.AddDate(0, 0, -1)

	days, err := s.repo.GetRange(ctx, propertyID, checkIn, lastNight)
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get calendar range")

		return quote, fmt.Errorf("failed to quote stay: %w", err)
	}

	prices := map[string]decimal.Decimal{}

	for _, day := range days {
		if day.Price.Valid {
			prices[day.Date.Format(constant.DateOnlyFormat)] = day.Price.Decimal
		}
	}

	total := decimal.Zero

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		price, ok := prices[night.Format(constant.DateOnlyFormat)]
		if !ok {
			price = property.BasePrice
		}

		total = total.Add(price)
		quote.Nights++
	}

	quote.Total = total

	return quote, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheResolve)
}

func (s *serviceImpl) getProperty(ctx context.Context, propertyID string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found") // nolint:wrapcheck
	}

	return property, nil
}

func resolveDates(basePrice decimal.Decimal, from, to time.Time, days []model.CalendarDay) map[string]dto.DayInfo {
	dates := map[string]dto.DayInfo{}

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		dates[date.Format(constant.DateOnlyFormat)] = dto.DayInfo{
			Available: true,
			Price:     basePrice.InexactFloat64(),
		}
	}

	for _, day := range days {
		price := basePrice
		if day.Price.Valid {
			price = day.Price.Decimal
		}

		dates[day.Date.Format(constant.DateOnlyFormat)] = dto.DayInfo{
			Available: day.Bookable(),
			Price:     price.InexactFloat64(),
		}
	}

	return dates
}

// MinorUnits converts an amount to integer minor units (cents), rounding half
// away from zero so 10.005 charges 1001 rather than 1000.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}
