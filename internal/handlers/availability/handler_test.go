package availability_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"seastay/config"
	"seastay/infras/otel/mocks"
	calendarMocks "seastay/internal/domains/calendar/mocks"
	"seastay/internal/domains/calendar/model/dto"
	"seastay/internal/handlers/availability"
	"seastay/shared/constant"
)

func TestAvailabilityHandler_GetAvailability(t *testing.T) {
	resolved := dto.AvailabilityResponse{
		PropertyID: "prop-1",
		BasePrice:  100,
		Dates: map[string]dto.DayInfo{
			"2024-06-01": {Available: true, Price: 100},
		},
	}

	tests := []struct {
		name          string
		target        string
		cfgPropertyID string
		setupMock     func(svc *calendarMocks.MockCalendarService)
		wantStatus    int
	}{
		{
			name:   "explicit property and range",
			target: "/availability?propertyId=prop-1&startDate=2024-06-01&endDate=2024-06-10",
			setupMock: func(svc *calendarMocks.MockCalendarService) {
				svc.EXPECT().Resolve(gomock.Any(), "prop-1",
					time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)).
					Return(resolved, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "missing propertyId falls back to the configured property",
			target:        "/availability",
			cfgPropertyID: "prop-cfg",
			setupMock: func(svc *calendarMocks.MockCalendarService) {
				svc.EXPECT().Resolve(gomock.Any(), "prop-cfg", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ string, from, to time.Time) (dto.AvailabilityResponse, error) {
						assert.Equal(t, constant.DefaultAvailabilityWindowDays, int(to.Sub(from).Hours()/24))
						return resolved, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no propertyId anywhere",
			target:     "/availability",
			setupMock:  func(svc *calendarMocks.MockCalendarService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed start date",
			target:     "/availability?propertyId=prop-1&startDate=junk",
			setupMock:  func(svc *calendarMocks.MockCalendarService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "end date before start date",
			target:     "/availability?propertyId=prop-1&startDate=2024-06-10&endDate=2024-06-01",
			setupMock:  func(svc *calendarMocks.MockCalendarService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := calendarMocks.NewMockCalendarService(ctrl)
			test.setupMock(svc)

			cfg := &config.Config{}
			cfg.App.PropertyID = test.cfgPropertyID

			handler := availability.New(svc, cfg, mocks.NewOtel())

			request := httptest.NewRequest(http.MethodGet, test.target, nil)
			recorder := httptest.NewRecorder()

			handler.GetAvailability(recorder, request)

			assert.Equal(t, test.wantStatus, recorder.Code)
		})
	}
}
