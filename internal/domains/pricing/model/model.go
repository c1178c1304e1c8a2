package model

import "time"

const (
	TableName         = "room_pricings"
	SeasonalTableName = "seasonal_rates"
	EntityName        = "pricing"

	FieldID             = "id"
	FieldRoomCategoryID = "room_category_id"
	FieldBaseRate       = "base_rate"
)

type RoomPricing struct {
	ID             string  `db:"id"`
	RoomCategoryID string  `db:"room_category_id"`
	BaseRate       float64 `db:"base_rate"`
	Seasons        []SeasonalRate
}

type SeasonalRate struct {
	ID            string    `db:"id"`
	RoomPricingID string    `db:"room_pricing_id"`
	Rate          float64   `db:"rate"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
}

// RateFor resolves the nightly rate for a date: the first seasonal window
// whose inclusive bounds contain the date wins, otherwise the base rate.
// Overlapping windows have no defined precedence beyond first match.
func (p RoomPricing) RateFor(date time.Time) float64 {
	for _, season := range p.Seasons {
		if !date.Before(season.StartDate) && !date.After(season.EndDate) {
			return season.Rate
		}
	}

	return p.BaseRate
}
