package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"seastay/config"
	"seastay/infras/otel/mocks"
	calendarMocks "seastay/internal/domains/calendar/mocks"
	"seastay/internal/domains/calendar/model"
	"seastay/internal/domains/calendar/service"
	propertyMocks "seastay/internal/domains/property/mocks"
	propertyModel "seastay/internal/domains/property/model"
	"seastay/shared/cache"
	cacheMocks "seastay/shared/cache/mocks"
	"seastay/shared/failure"
	gModel "seastay/shared/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func priced(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func TestCalendarService_Resolve(t *testing.T) {
	oceanView := propertyModel.Property{
		ID:        "prop-1",
		Name:      "Ocean View Villa",
		BasePrice: decimal.RequireFromString("100"),
		Metadata:  gModel.Metadata{},
	}

	tests := []struct {
		name       string
		propertyID string
		from, to   time.Time
		setupMock  func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty)
		wantErr    bool
		check      func(t *testing.T, res map[string]bool, prices map[string]float64)
	}{
		{
			name:       "dates without rows default to available at base price",
			propertyID: "prop-1",
			from:       day(2024, 6, 1),
			to:         day(2024, 6, 3),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
				repo.EXPECT().GetRange(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 3)).
					Return([]model.CalendarDay{}, nil)
			},
			check: func(t *testing.T, available map[string]bool, prices map[string]float64) {
				assert.Len(t, available, 3)
				for _, date := range []string{"2024-06-01", "2024-06-02", "2024-06-03"} {
					assert.True(t, available[date])
					assert.InDelta(t, 100.0, prices[date], 0.0001)
				}
			},
		},
		{
			name:       "calendar rows overlay status and price",
			propertyID: "prop-1",
			from:       day(2024, 6, 1),
			to:         day(2024, 6, 4),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
				repo.EXPECT().GetRange(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 4)).
					Return([]model.CalendarDay{
						{PropertyID: "prop-1", Date: day(2024, 6, 2), Status: model.StatusAvailable, Price: priced("150")},
						{PropertyID: "prop-1", Date: day(2024, 6, 3), Status: model.StatusBooked},
						{PropertyID: "prop-1", Date: day(2024, 6, 4), Status: model.StatusBlocked, Price: priced("80")},
					}, nil)
			},
			check: func(t *testing.T, available map[string]bool, prices map[string]float64) {
				assert.True(t, available["2024-06-01"])
				assert.InDelta(t, 100.0, prices["2024-06-01"], 0.0001)

				assert.True(t, available["2024-06-02"])
				assert.InDelta(t, 150.0, prices["2024-06-02"], 0.0001)

				assert.False(t, available["2024-06-03"])
				assert.InDelta(t, 100.0, prices["2024-06-03"], 0.0001)

				assert.False(t, available["2024-06-04"])
				assert.InDelta(t, 80.0, prices["2024-06-04"], 0.0001)
			},
		},
		{
			name:       "unknown property",
			propertyID: "missing",
			from:       day(2024, 6, 1),
			to:         day(2024, 6, 3),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(propertyModel.Property{}, nil)
			},
			wantErr: true,
		},
		{
			name:       "repository error",
			propertyID: "prop-1",
			from:       day(2024, 6, 1),
			to:         day(2024, 6, 3),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
				repo.EXPECT().GetRange(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := calendarMocks.NewMockCalendar(ctrl)
			mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
			mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			cfg := &config.Config{}
			cfg.Cache.TTL = 60

			tt.setupMock(mockRepo, mockPropertyRepo)

			svc := service.New(mockRepo, mockPropertyRepo, cfg, mockCache, mockOtel)

			res, err := svc.Resolve(context.Background(), tt.propertyID, tt.from, tt.to)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.propertyID, res.PropertyID)

			available := map[string]bool{}
			prices := map[string]float64{}

			for date, info := range res.Dates {
				available[date] = info.Available
				prices[date] = info.Price
			}

			tt.check(t, available, prices)
		})
	}
}

func TestCalendarService_Quote(t *testing.T) {
	oceanView := propertyModel.Property{
		ID:        "prop-1",
		Name:      "Ocean View Villa",
		BasePrice: decimal.RequireFromString("100"),
	}

	tests := []struct {
		name       string
		checkIn    time.Time
		checkOut   time.Time
		setupMock  func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty)
		wantErr    bool
		wantTotal  string
		wantNights int
	}{
		{
			name:     "sums base and override nights, checkout day excluded",
			checkIn:  day(2024, 6, 1),
			checkOut: day(2024, 6, 4),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
				repo.EXPECT().GetRange(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 3)).
					Return([]model.CalendarDay{
						{PropertyID: "prop-1", Date: day(2024, 6, 2), Status: model.StatusAvailable, Price: priced("150")},
					}, nil)
			},
			wantTotal:  "350",
			wantNights: 3,
		},
		{
			name:     "single night",
			checkIn:  day(2024, 6, 1),
			checkOut: day(2024, 6, 2),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {
				propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(oceanView, nil)
				repo.EXPECT().GetRange(gomock.Any(), "prop-1", day(2024, 6, 1), day(2024, 6, 1)).
					Return([]model.CalendarDay{}, nil)
			},
			wantTotal:  "100",
			wantNights: 1,
		},
		{
			name:      "check-out not after check-in",
			checkIn:   day(2024, 6, 4),
			checkOut:  day(2024, 6, 4),
			setupMock: func(repo *calendarMocks.MockCalendar, propertyRepo *propertyMocks.MockProperty) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := calendarMocks.NewMockCalendar(ctrl)
			mockPropertyRepo := propertyMocks.NewMockProperty(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}

			tt.setupMock(mockRepo, mockPropertyRepo)

			svc := service.New(mockRepo, mockPropertyRepo, cfg, mockCache, mockOtel)

			quote, err := svc.Quote(context.Background(), "prop-1", tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, quote.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total = %s, want %s", quote.Total, tt.wantTotal)
			assert.Equal(t, tt.wantNights, quote.Nights)
		})
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{name: "whole amount", amount: "350", want: 35000},
		{name: "cents preserved", amount: "123.45", want: 12345},
		{name: "sub-cent rounds half up", amount: "10.005", want: 1001},
		{name: "sub-cent rounds down", amount: "10.004", want: 1000},
		{name: "zero", amount: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.MinorUnits(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
