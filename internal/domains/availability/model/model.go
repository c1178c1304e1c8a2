package model

import (
	"time"
)

const (
	TableName  = "room_availabilities"
	EntityName = "roomAvailability"

	FieldID             = "id"
	FieldHotelID        = "hotel_id"
	FieldRoomCategoryID = "room_category_id"
	FieldDate           = "date"
	FieldTotalCount     = "total_count"
	FieldBookedCount    = "booked_count"
	FieldVersion        = "version"
)

type RoomAvailability struct {
	ID             string    `db:"id"`
	HotelID        string    `db:"hotel_id"`
	RoomCategoryID string    `db:"room_category_id"`
	Date           time.Time `db:"date"`
	TotalCount     int       `db:"total_count"`
	BookedCount    int       `db:"booked_count"`
	Version        string    `db:"version"`
}

// Available reports how many rooms remain bookable on this date.
func (m RoomAvailability) Available() int {
	return m.TotalCount - m.BookedCount
}
