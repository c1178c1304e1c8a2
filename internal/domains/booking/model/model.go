package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	LineTableName  = "booking_room_lines"
	LineEntityName = "bookingRoomLine"

	FieldID             = "id"
	FieldReference      = "reference"
	FieldIdempotencyKey = "idempotency_key"
	FieldHotelID        = "hotel_id"
	FieldUserID         = "user_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldBookingID      = "booking_id"

	referenceLength = 12
	referencePrefix = "BK-"
)

// Booking is immutable once created. There is no update or cancel path.
type Booking struct {
	ID             string    `db:"id"`
	Reference      string    `db:"reference"`
	IdempotencyKey string    `db:"idempotency_key"`
	HotelID        string    `db:"hotel_id"`
	UserID         string    `db:"user_id"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	Guests         int       `db:"guests"`
	TotalCost      float64   `db:"total_cost"`
	CreatedAt      time.Time `db:"created_at"`
}

func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

type BookingRoomLine struct {
	ID             string  `db:"id"`
	BookingID      string  `db:"booking_id"`
	RoomCategoryID string  `db:"room_category_id"`
	Quantity       int     `db:"quantity"`
	RateApplied    float64 `db:"rate_applied"`
	Subtotal       float64 `db:"subtotal"`
}

// NewReference returns a short human-shareable booking reference.
func NewReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return referencePrefix + raw[:referenceLength]
}
