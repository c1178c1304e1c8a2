package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"stay/shared/failure"
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("invalid date range"),
			code: http.StatusBadRequest,
			kind: failure.KindValidation,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("booking not found"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict(failure.KindDuplicateKey, "request already processed"),
			code: http.StatusConflict,
			kind: failure.KindDuplicateKey,
		},
		{
			name: "CapacityExceeded",
			err:  failure.CapacityExceeded("only 1 room left"),
			code: http.StatusConflict,
			kind: failure.KindCapacityExceeded,
		},
		{
			name: "ConcurrencyExhausted",
			err:  failure.ConcurrencyExhausted("concurrency conflict"),
			code: http.StatusConflict,
			kind: failure.KindConcurrencyExhausted,
		},
		{
			name: "ExternalService",
			err:  failure.ExternalService("inventory unreachable"),
			code: http.StatusBadGateway,
			kind: failure.KindExternalService,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
			kind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, code)
			}
			if kind := failure.GetKind(tt.err); kind != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, kind)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if result := failure.BadRequest(nil); result != nil {
		t.Errorf("expected nil, got %v", result)
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("reserving rooms: %w", failure.CapacityExceeded("no rooms left"))

	if code := failure.GetCode(wrapped); code != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, code)
	}

	if !failure.IsKind(wrapped, failure.KindCapacityExceeded) {
		t.Error("expected wrapped error to keep its capacity_exceeded kind")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, code)
	}
}
