package dto

import (
	"fmt"
	availabilityDto "stay/internal/domains/availability/model/dto"
	"stay/internal/domains/booking/model"
	hotelDto "stay/internal/domains/hotel/model/dto"
	"stay/shared/constant"
	"time"

	"github.com/google/uuid"
)

type ReservationRequest struct {
	HotelID  string                            `json:"hotel_id" validate:"required"`
	UserID   string                            `json:"user_id" validate:"required"`
	Guests   int                               `json:"guests" validate:"required,min=1"`
	CheckIn  string                            `json:"check_in" validate:"required,dateonly"`
	CheckOut string                            `json:"check_out" validate:"required,dateonly"`
	Rooms    []availabilityDto.RoomItemPayload `json:"rooms" validate:"required,min=1,dive"`
}

func (r ReservationRequest) ToReserveRequest() (availabilityDto.ReserveRequest, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, r.CheckIn)
	if err != nil {
		return availabilityDto.ReserveRequest{}, fmt.Errorf("failed to parse check in date: %w", err)
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, r.CheckOut)
	if err != nil {
		return availabilityDto.ReserveRequest{}, fmt.Errorf("failed to parse check out date: %w", err)
	}

	rooms := make([]availabilityDto.RoomItem, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, availabilityDto.RoomItem{RoomCategoryID: room.RoomCategoryID, Quantity: room.Quantity})
	}

	return availabilityDto.ReserveRequest{
		HotelID:  r.HotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
	}, nil
}

// ToModel derives the booking row and its lines from a capacity-confirmed receipt.
func (r ReservationRequest) ToModel(idempotencyKey string, receipt availabilityDto.ReservationReceipt) (model.Booking, []model.BookingRoomLine) {
	booking := model.Booking{
		ID:             uuid.NewString(),
		Reference:      model.NewReference(),
		IdempotencyKey: idempotencyKey,
		HotelID:        r.HotelID,
		UserID:         r.UserID,
		CheckIn:        receipt.CheckIn,
		CheckOut:       receipt.CheckOut,
		Guests:         r.Guests,
		TotalCost:      receipt.TotalCost,
		CreatedAt:      time.Now().UTC(),
	}

	lines := make([]model.BookingRoomLine, 0, len(receipt.Rooms))
	for _, room := range receipt.Rooms {
		lines = append(lines, model.BookingRoomLine{
			ID:             uuid.NewString(),
			BookingID:      booking.ID,
			RoomCategoryID: room.RoomCategoryID,
			Quantity:       room.Quantity,
			RateApplied:    room.RateApplied,
			Subtotal:       room.Subtotal,
		})
	}

	return booking, lines
}

type ReservationResponse struct {
	Reference string                         `json:"reference"`
	HotelID   string                         `json:"hotel_id"`
	CheckIn   string                         `json:"check_in"`
	CheckOut  string                         `json:"check_out"`
	Guests    int                            `json:"guests"`
	TotalCost float64                        `json:"total_cost"`
	CreatedAt time.Time                      `json:"created_at"`
	Rooms     []availabilityDto.ReservedRoom `json:"rooms"`
	Created   bool                           `json:"-"`
}

func (r *ReservationResponse) FromModel(booking model.Booking, lines []model.BookingRoomLine) {
	r.Reference = booking.Reference
	r.HotelID = booking.HotelID
	r.CheckIn = booking.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = booking.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = booking.Guests
	r.TotalCost = booking.TotalCost
	r.CreatedAt = booking.CreatedAt
	r.Rooms = make([]availabilityDto.ReservedRoom, 0, len(lines))

	for _, line := range lines {
		r.Rooms = append(r.Rooms, availabilityDto.ReservedRoom{
			RoomCategoryID: line.RoomCategoryID,
			Quantity:       line.Quantity,
			RateApplied:    line.RateApplied,
			Subtotal:       line.Subtotal,
		})
	}
}

// BookingCreatedEvent is the payload published after a booking commits.
type BookingCreatedEvent struct {
	Reference string    `json:"reference"`
	HotelID   string    `json:"hotel_id"`
	UserID    string    `json:"user_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Guests    int       `json:"guests"`
	TotalCost float64   `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *BookingCreatedEvent) FromModel(booking model.Booking) {
	e.Reference = booking.Reference
	e.HotelID = booking.HotelID
	e.UserID = booking.UserID
	e.CheckIn = booking.CheckIn.Format(constant.DateOnlyFormat)
	e.CheckOut = booking.CheckOut.Format(constant.DateOnlyFormat)
	e.Guests = booking.Guests
	e.TotalCost = booking.TotalCost
	e.CreatedAt = booking.CreatedAt
}

type BookingDetailsResponse struct {
	Reference     string                         `json:"reference"`
	HotelID       string                         `json:"hotel_id"`
	HotelName     string                         `json:"hotel_name"`
	HotelImageURL string                         `json:"hotel_image_url"`
	CheckIn       string                         `json:"check_in"`
	CheckOut      string                         `json:"check_out"`
	Guests        int                            `json:"guests"`
	TotalCost     float64                        `json:"total_cost"`
	CreatedAt     time.Time                      `json:"created_at"`
	Rooms         []availabilityDto.ReservedRoom `json:"rooms"`
}

func (r *BookingDetailsResponse) FromModel(booking model.Booking, lines []model.BookingRoomLine, hotel hotelDto.HotelSummary) {
	r.Reference = booking.Reference
	r.HotelID = booking.HotelID
	r.HotelName = hotel.Name
	r.HotelImageURL = hotel.ImageURL
	r.CheckIn = booking.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = booking.CheckOut.Format(constant.DateOnlyFormat)
	r.Guests = booking.Guests
	r.TotalCost = booking.TotalCost
	r.CreatedAt = booking.CreatedAt
	r.Rooms = make([]availabilityDto.ReservedRoom, 0, len(lines))

	for _, line := range lines {
		r.Rooms = append(r.Rooms, availabilityDto.ReservedRoom{
			RoomCategoryID: line.RoomCategoryID,
			Quantity:       line.Quantity,
			RateApplied:    line.RateApplied,
			Subtotal:       line.Subtotal,
		})
	}
}
