package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure carries the HTTP status a service error should surface with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError       = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ConfirmationRequired = &Failure{Code: http.StatusPreconditionRequired, Message: "this operation requires confirm=true"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func BadRequestf(format string, args ...any) error {
	return BadRequestFromString(fmt.Sprintf(format, args...))
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// NotFound takes the entity name, e.g. "table not found".
func NotFound(entityName string) error {
	return &Failure{Code: http.StatusNotFound, Message: entityName}
}

// Conflict is used for double bookings, taken table numbers and rooms still in use.
func Conflict(message string) error {
	return &Failure{Code: http.StatusConflict, Message: message}
}

// GetCode falls back to 500 for errors that are not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// HasCode reports whether err carries the given failure code.
func HasCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
