package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/pricing/model"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func TestRoomPricing_RateFor(t *testing.T) {
	pricing := model.RoomPricing{
		ID:             "pricing-1",
		RoomCategoryID: "category-1",
		BaseRate:       100,
		Seasons: []model.SeasonalRate{
			{Rate: 150, StartDate: date("2025-12-20"), EndDate: date("2025-12-31")},
			{Rate: 120, StartDate: date("2025-12-28"), EndDate: date("2026-01-05")},
		},
	}

	tests := []struct {
		name string
		date string
		want float64
	}{
		{name: "before any season", date: "2025-11-15", want: 100},
		{name: "inside first season", date: "2025-12-25", want: 150},
		{name: "inclusive start bound", date: "2025-12-20", want: 150},
		{name: "inclusive end bound", date: "2025-12-31", want: 150},
		{name: "overlap resolves to first match", date: "2025-12-29", want: 150},
		{name: "second season only", date: "2026-01-03", want: 120},
		{name: "after all seasons", date: "2026-02-01", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.RateFor(date(tt.date)))
		})
	}
}

func TestRoomPricing_RateFor_NoSeasons(t *testing.T) {
	pricing := model.RoomPricing{BaseRate: 75}

	assert.Equal(t, 75.0, pricing.RateFor(date("2025-12-01")))
}
