package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"seastay/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidDateParam",
			failure: failure.InvalidDateParam,
			code:    http.StatusBadRequest,
			message: "invalid date parameter, expected yyyy-MM-dd",
		},
		{
			name:    "MissingPropertyID",
			failure: failure.MissingPropertyID,
			code:    http.StatusBadRequest,
			message: "missing property ID",
		},
		{
			name:    "MissingSessionID",
			failure: failure.MissingSessionID,
			code:    http.StatusBadRequest,
			message: "missing session ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if f.Code != expectedF.Code || f.Message != expectedF.Message {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("property")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusNotFound {
			t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
		}
		if f.Message != "property" {
			t.Errorf("expected message to be 'property', got %s", f.Message)
		}
	}
}

func TestDatesUnavailable(t *testing.T) {
	dates := []string{"2024-06-01", "2024-06-02"}

	err := failure.DatesUnavailable(dates)

	f, ok := err.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}
	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}
	if f.Message != "some dates are not available" {
		t.Errorf("unexpected message %s", f.Message)
	}

	got, ok := failure.IsDatesUnavailable(err)
	if !ok {
		t.Error("expected IsDatesUnavailable to match")
	}
	if len(got) != 2 || got[0] != "2024-06-01" || got[1] != "2024-06-02" {
		t.Errorf("unexpected conflicting dates %v", got)
	}
}

func TestIsDatesUnavailable_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
		{
			name: "failure without details",
			err:  failure.BadRequestFromString("bad input"),
		},
		{
			name: "wrapped non-failure",
			err:  fmt.Errorf("outer: %w", errors.New("inner")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if dates, ok := failure.IsDatesUnavailable(tt.err); ok {
				t.Errorf("expected no match, got %v", dates)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("booking"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("lookup: %w", failure.BadRequestFromString("bad")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "plain error defaults to 500",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}

func TestGetDetails(t *testing.T) {
	withDetails := failure.DatesUnavailable([]string{"2024-06-01"})

	details := failure.GetDetails(withDetails)
	dates, ok := details.([]string)
	if !ok || len(dates) != 1 {
		t.Errorf("expected details to carry the dates, got %v", details)
	}

	if details := failure.GetDetails(errors.New("boom")); details != nil {
		t.Errorf("expected nil details for plain error, got %v", details)
	}
}
