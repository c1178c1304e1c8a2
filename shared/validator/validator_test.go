package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared/validator"
)

type reservationPayload struct {
	HotelID  string `json:"hotel_id" validate:"required,uuid4"`
	Guests   int    `json:"guests"   validate:"required,min=1,max=100"`
	CheckIn  string `json:"check_in" validate:"required,dateonly"`
	CheckOut string `json:"check_out" validate:"required,dateonly"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"hotel_id":"0c7025d5-2aa1-4f3a-9d35-9c0f30f1d1a9","guests":2,"check_in":"2025-12-01","check_out":"2025-12-03"}`,
			wantErr: false,
		},
		{
			name:    "malformed json",
			body:    `{"hotel_id":`,
			wantErr: true,
		},
		{
			name:    "missing hotel id",
			body:    `{"guests":2,"check_in":"2025-12-01","check_out":"2025-12-03"}`,
			wantErr: true,
		},
		{
			name:    "zero guests",
			body:    `{"hotel_id":"0c7025d5-2aa1-4f3a-9d35-9c0f30f1d1a9","guests":0,"check_in":"2025-12-01","check_out":"2025-12-03"}`,
			wantErr: true,
		},
		{
			name:    "bad date format",
			body:    `{"hotel_id":"0c7025d5-2aa1-4f3a-9d35-9c0f30f1d1a9","guests":2,"check_in":"01-12-2025","check_out":"2025-12-03"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reservationPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-12-01", "dateonly"))
	assert.Error(t, validator.ValidateVar("yesterday", "dateonly"))
	assert.Error(t, validator.ValidateVar("", "required"))
}
