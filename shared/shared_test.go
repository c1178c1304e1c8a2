package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stay/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:BK-123", shared.BuildCacheKey("booking:get", "BK-123"))
	assert.Equal(t, "hotel", shared.BuildCacheKey("hotel"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc", "id", "bookings")

	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "bookings.id = :id")
	assert.Equal(t, "abc", args["id"])
}
