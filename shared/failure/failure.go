package failure

import (
	"errors"
	"net/http"
)

// Kinds refine conflict and gateway responses so callers can tell
// "already done" apart from "try different parameters".
const (
	KindValidation           = "validation"
	KindNotFound             = "not_found"
	KindDuplicateKey         = "duplicate_key"
	KindCapacityExceeded     = "capacity_exceeded"
	KindConcurrencyExhausted = "concurrency_exhausted"
	KindExternalService      = "external_service"
	KindInternal             = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(kind, message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    kind,
		Message: message,
	}
}

// CapacityExceeded marks a reservation that asked for more rooms than remain.
func CapacityExceeded(message string) error {
	return Conflict(KindCapacityExceeded, message)
}

// ConcurrencyExhausted marks a reservation that lost the optimistic-lock
// retry loop on a contended availability row.
func ConcurrencyExhausted(message string) error {
	return Conflict(KindConcurrencyExhausted, message)
}

// ExternalService marks a failed call to a collaborating service.
func ExternalService(msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindExternalService,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given failure kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
