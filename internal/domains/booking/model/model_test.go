package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/booking/model"
)

func TestNewReference(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		reference := model.NewReference()

		assert.Len(t, reference, 15)
		assert.True(t, strings.HasPrefix(reference, "BK-"))
		assert.Equal(t, strings.ToUpper(reference), reference)
		assert.False(t, seen[reference])

		seen[reference] = true
	}
}

func TestBooking_Nights(t *testing.T) {
	booking := model.Booking{
		CheckIn:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 3, booking.Nights())
}
