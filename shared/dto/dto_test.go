package dto_test

import (
	"seastay/shared/constant"
	"seastay/shared/dto"
	"seastay/shared/model"
	"seastay/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := timezone.Format(createdAt, constant.DateFormat)
	expectedModifiedAt := timezone.Format(modifiedAt, constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "equality with table",
			filter: dto.Filter{
				Field:    "property_id",
				Value:    "prop-1",
				Operator: dto.FilterOperatorEq,
				Table:    "calendar_days",
			},
			expectedSQL:  "calendar_days.property_id = :property_id",
			expectedArgs: map[string]any{"property_id": "prop-1"},
		},
		{
			name: "equality without table",
			filter: dto.Filter{
				Field:    "payment_session_id",
				Value:    "cs_test_1",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "payment_session_id = :payment_session_id",
			expectedArgs: map[string]any{"payment_session_id": "cs_test_1"},
		},
		{
			name: "custom arg name disambiguates repeated columns",
			filter: dto.Filter{
				ArgName:  "date_from",
				Field:    "date",
				Value:    "2024-06-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedSQL:  "date >= :date_from",
			expectedArgs: map[string]any{"date_from": "2024-06-01"},
		},
		{
			name: "less operator",
			filter: dto.Filter{
				ArgName:  "date_to",
				Field:    "date",
				Value:    "2024-06-10",
				Operator: dto.FilterOperatorLess,
			},
			expectedSQL:  "date < :date_to",
			expectedArgs: map[string]any{"date_to": "2024-06-10"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "status",
				Value:    "booked",
				Operator: "like",
			},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for name, value := range tt.expectedArgs {
				if args[name] != value {
					t.Errorf("expected arg %s to be %v, got %v", name, value, args[name])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "property_id",
				Value:    "prop-1",
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				ArgName:  "date_from",
				Field:    "date",
				Value:    "2024-06-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			dto.Filter{
				ArgName:  "date_to",
				Field:    "date",
				Value:    "2024-06-10",
				Operator: dto.FilterOperatorLess,
			},
		},
	}

	sql, args := group.GetWhereClause()

	expected := "(property_id = :property_id AND date >= :date_from AND date < :date_to)"
	if sql != expected {
		t.Errorf("expected clause %q, got %q", expected, sql)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	sql, args := group.GetWhereClause()

	if sql != "" {
		t.Errorf("expected empty clause, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
