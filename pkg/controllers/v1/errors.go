package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/envelope-zero/ledger/pkg/ledger"
	"github.com/envelope-zero/ledger/pkg/models"
)

var (
	errBudgetIDParameter = errors.New("the budget parameter must be set")
	errAccountGroup      = errors.New("the group parameter must be one of budget, tracking")
)

// errNotFound is returned when a resource to delete does not exist.
func errNotFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

// status returns the appropriate status for an error
func status(err error) int {
	var validationError ledger.ValidationError
	if errors.As(err, &validationError) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// ResponseError contains the error of a response, if any occurred.
type ResponseError struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Field *string `json:"field,omitempty" example:"name"`                                // The field that failed validation, if the error is a validation error
}

func newResponseError(err error) ResponseError {
	s := err.Error()
	r := ResponseError{Error: &s}

	var validationError ledger.ValidationError
	if errors.As(err, &validationError) {
		r.Field = &validationError.Field
	}

	return r
}
