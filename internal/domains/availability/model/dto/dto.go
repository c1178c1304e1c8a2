package dto

import (
	"fmt"
	"stay/shared/constant"
	"time"
)

type RoomItem struct {
	RoomCategoryID string
	Quantity       int
}

// ReserveRequest is the internal allocator contract. Dates are
// midnight-normalized, check-out exclusive.
type ReserveRequest struct {
	HotelID  string
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    []RoomItem
}

func (r ReserveRequest) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

type ReservedRoom struct {
	RoomCategoryID string  `json:"room_category_id"`
	Quantity       int     `json:"quantity"`
	RateApplied    float64 `json:"rate_applied"`
	Subtotal       float64 `json:"subtotal"`
}

type ReservationReceipt struct {
	HotelID   string
	CheckIn   time.Time
	CheckOut  time.Time
	Nights    int
	Rooms     []ReservedRoom
	TotalCost float64
}

type RoomItemPayload struct {
	RoomCategoryID string `json:"room_category_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"min=0"`
}

type SummaryRequest struct {
	HotelID  string            `json:"hotel_id" validate:"required"`
	Guests   int               `json:"guests" validate:"required,min=1"`
	CheckIn  string            `json:"check_in" validate:"required,dateonly"`
	CheckOut string            `json:"check_out" validate:"required,dateonly"`
	Rooms    []RoomItemPayload `json:"rooms" validate:"required,min=1,dive"`
}

func (r SummaryRequest) ToReserveRequest() (ReserveRequest, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, r.CheckIn)
	if err != nil {
		return ReserveRequest{}, fmt.Errorf("failed to parse check in date: %w", err)
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, r.CheckOut)
	if err != nil {
		return ReserveRequest{}, fmt.Errorf("failed to parse check out date: %w", err)
	}

	rooms := make([]RoomItem, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, RoomItem{RoomCategoryID: room.RoomCategoryID, Quantity: room.Quantity})
	}

	return ReserveRequest{
		HotelID:  r.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
	}, nil
}

type CheckRequest struct {
	HotelID         string   `json:"hotel_id" validate:"required"`
	RoomCategoryIDs []string `json:"room_category_ids" validate:"required,min=1"`
	Guests          int      `json:"guests" validate:"min=0"`
	CheckIn         string   `json:"check_in" validate:"required,dateonly"`
	CheckOut        string   `json:"check_out" validate:"required,dateonly"`
}

type CheckResponse struct {
	Available bool `json:"available"`
}

type SummaryResponse struct {
	HotelID   string         `json:"hotel_id"`
	CheckIn   string         `json:"check_in"`
	CheckOut  string         `json:"check_out"`
	Nights    int            `json:"nights"`
	TotalCost float64        `json:"total_cost"`
	Rooms     []ReservedRoom `json:"rooms"`
}

func (s *SummaryResponse) FromReceipt(receipt ReservationReceipt) {
	s.HotelID = receipt.HotelID
	s.CheckIn = receipt.CheckIn.Format(constant.DateOnlyFormat)
	s.CheckOut = receipt.CheckOut.Format(constant.DateOnlyFormat)
	s.Nights = receipt.Nights
	s.TotalCost = receipt.TotalCost
	s.Rooms = receipt.Rooms
}
