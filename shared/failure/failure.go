package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Details carries structured context for the caller, such as the list of
// conflicting dates on a booking rejection.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

var InvalidDateParam = &Failure{Code: http.StatusBadRequest, Message: "invalid date parameter, expected yyyy-MM-dd"}
var MissingPropertyID = &Failure{Code: http.StatusBadRequest, Message: "missing property ID"}
var MissingSessionID = &Failure{Code: http.StatusBadRequest, Message: "missing session ID"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// DatesUnavailable returns the rejection for a date range that overlaps
// already-booked nights. The conflicting dates ride along in Details so the
// guest can be shown exactly which nights are taken.
func DatesUnavailable(dates []string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "some dates are not available",
		Details: dates,
	}
}

// IsDatesUnavailable reports whether err is a DatesUnavailable rejection and
// returns the conflicting dates when it is.
func IsDatesUnavailable(err error) ([]string, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		if dates, ok := fail.Details.([]string); ok {
			return dates, true
		}
	}

	return nil, false
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetDetails returns the structured details of an error interface, if any.
func GetDetails(err error) any {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Details
	}

	return nil
}
