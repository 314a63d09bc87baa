package shared_test

import (
	"reflect"
	"seastay/shared"
	"seastay/shared/dto"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "calendar:resolve",
			parts:    nil,
			expected: "calendar:resolve",
		},
		{
			name:     "single part",
			prefix:   "property:get",
			parts:    []string{"prop-1"},
			expected: "property:get:prop-1",
		},
		{
			name:     "multiple parts",
			prefix:   "calendar:resolve",
			parts:    []string{"prop-1", "2024-06-01", "2024-06-10"},
			expected: "calendar:resolve:prop-1:2024-06-01:2024-06-10",
		},
		{
			name:     "wildcard part",
			prefix:   "photo:list",
			parts:    []string{"*"},
			expected: "photo:list:*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      "123",
			fieldID: "property_id",
			table:   "properties",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "property_id",
						Value:    "123",
						Operator: dto.FilterOperatorEq,
						Table:    "properties",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
		{
			name:    "filter with session id",
			id:      "cs_test_a1b2c3",
			fieldID: "payment_session_id",
			table:   "bookings",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "payment_session_id",
						Value:    "cs_test_a1b2c3",
						Operator: dto.FilterOperatorEq,
						Table:    "bookings",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}
