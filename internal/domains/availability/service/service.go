package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/availability/model/dto"
	"stay/internal/domains/availability/repository"
	hotelModel "stay/internal/domains/hotel/model"
	hotelRepository "stay/internal/domains/hotel/repository"
	pricingModel "stay/internal/domains/pricing/model"
	pricingRepository "stay/internal/domains/pricing/repository"
	"stay/shared"
	"stay/shared/constant"
	"stay/shared/failure"
	"time"
)

// Availability allocates room capacity across a date range. Reserve is
// all-or-nothing inside a single transaction; contended rows are
// retried through a bounded compare-and-swap loop.
type Availability interface {
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.ReservationReceipt, error)
	Check(ctx context.Context, req dto.CheckRequest) (dto.CheckResponse, error)
	Summary(ctx context.Context, req dto.SummaryRequest) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo        repository.Availability
	pricingRepo pricingRepository.Pricing
	hotelRepo   hotelRepository.Hotel
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Availability,
	pricingRepo pricingRepository.Pricing,
	hotelRepo hotelRepository.Hotel,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:        repo,
		pricingRepo: pricingRepo,
		hotelRepo:   hotelRepo,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.ReservationReceipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !req.CheckOut.After(req.CheckIn) {
		return res, failure.BadRequestFromString("check out date must be after check in date") // nolint:wrapcheck
	}

	pricings, err := s.pricingByCategory(ctx, req.Rooms)
	if err != nil {
		return res, err
	}

	err = s.repo.ReserveWithin(ctx, func(tx repository.ReserveTx) error {
		for _, room := range req.Rooms {
			if room.Quantity == 0 {
				continue
			}

			for date := req.CheckIn; date.Before(req.CheckOut); date = date.AddDate(0, 0, 1) {
				if err := s.bookNight(ctx, tx, req.HotelID, room, date); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	return s.buildReceipt(req, pricings), nil
}

// bookNight decrements one (category, date) row, retrying on version
// mismatch with fresh reads up to the compare-and-swap bound.
func (s *serviceImpl) bookNight(ctx context.Context, tx repository.ReserveTx, hotelID string, room dto.RoomItem, date time.Time) error {
	for attempt := 1; ; attempt++ {
		row, err := tx.Get(ctx, hotelID, room.RoomCategoryID, date)
		if err != nil {
			return err
		}

		if row.ID == constant.Empty {
			return failure.BadRequestFromString(fmt.Sprintf("No availability for category %s on %s.",
				room.RoomCategoryID, date.Format(constant.DateOnlyFormat))) // nolint:wrapcheck
		}

		if remaining := row.Available(); remaining < room.Quantity {
			return failure.CapacityExceeded(capacityMessage(room.RoomCategoryID, date, remaining)) // nolint:wrapcheck
		}

		swapped, err := tx.CompareAndBook(ctx, row.ID, row.Version, row.BookedCount+room.Quantity)
		if err != nil {
			return err
		}

		if swapped {
			return nil
		}

		if attempt >= constant.CasRetryLimit {
			return failure.ConcurrencyExhausted(fmt.Sprintf("Concurrency conflict for room %s on %s.",
				room.RoomCategoryID, date.Format(constant.DateOnlyFormat))) // nolint:wrapcheck
		}
	}
}

func (s *serviceImpl) Check(ctx context.Context, req dto.CheckRequest) (res dto.CheckResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, err := time.Parse(constant.DateOnlyFormat, req.CheckIn)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return dto.CheckResponse{Available: false}, nil
	}

	categories, err := s.repo.AvailableCategories(ctx, req.HotelID, req.RoomCategoryIDs, checkIn, checkOut)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	available := make(map[string]bool, len(categories))
	for _, categoryID := range categories {
		available[categoryID] = true
	}

	for _, categoryID := range req.RoomCategoryIDs {
		if !available[categoryID] {
			return dto.CheckResponse{Available: false}, nil
		}
	}

	return dto.CheckResponse{Available: true}, nil
}

func (s *serviceImpl) Summary(ctx context.Context, req dto.SummaryRequest) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	reserveReq, err := req.ToReserveRequest()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !reserveReq.CheckOut.After(reserveReq.CheckIn) {
		return res, failure.BadRequestFromString("check out date must be after check in date") // nolint:wrapcheck
	}

	exist, err := s.hotelRepo.Exist(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if !exist {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	pricings, err := s.pricingByCategory(ctx, reserveReq.Rooms)
	if err != nil {
		return res, err
	}

	res.FromReceipt(s.buildReceipt(reserveReq, pricings))

	return res, nil
}

func (s *serviceImpl) pricingByCategory(ctx context.Context, rooms []dto.RoomItem) (map[string]pricingModel.RoomPricing, error) {
	categoryIDs := make([]string, 0, len(rooms))
	for _, room := range rooms {
		categoryIDs = append(categoryIDs, room.RoomCategoryID)
	}

	pricings, err := s.pricingRepo.GetByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	byCategory := make(map[string]pricingModel.RoomPricing, len(pricings))
	for _, pricing := range pricings {
		byCategory[pricing.RoomCategoryID] = pricing
	}

	for _, room := range rooms {
		if _, ok := byCategory[room.RoomCategoryID]; !ok {
			return nil, failure.BadRequestFromString(fmt.Sprintf("Unknown room category %s.", room.RoomCategoryID)) // nolint:wrapcheck
		}
	}

	return byCategory, nil
}

// buildReceipt prices the stay with the flat base rate across all
// nights. Seasonal overrides are intentionally not reapplied per night
// in this aggregate.
func (s *serviceImpl) buildReceipt(req dto.ReserveRequest, pricings map[string]pricingModel.RoomPricing) dto.ReservationReceipt {
	nights := req.Nights()
	rooms := make([]dto.ReservedRoom, 0, len(req.Rooms))

	var total float64

	for _, room := range req.Rooms {
		rate := pricings[room.RoomCategoryID].BaseRate
		subtotal := rate * float64(room.Quantity) * float64(nights)
		total += subtotal

		rooms = append(rooms, dto.ReservedRoom{
			RoomCategoryID: room.RoomCategoryID,
			Quantity:       room.Quantity,
			RateApplied:    rate,
			Subtotal:       subtotal,
		})
	}

	return dto.ReservationReceipt{
		HotelID:   req.HotelID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Nights:    nights,
		Rooms:     rooms,
		TotalCost: total,
	}
}

func capacityMessage(roomCategoryID string, date time.Time, remaining int) string {
	day := date.Format(constant.DateOnlyFormat)

	switch {
	case remaining <= 0:
		return fmt.Sprintf("No rooms left for category %s on %s.", roomCategoryID, day)
	case remaining == 1:
		return fmt.Sprintf("Only 1 room left for category %s on %s.", roomCategoryID, day)
	default:
		return fmt.Sprintf("Only %d rooms left for category %s on %s.", remaining, roomCategoryID, day)
	}
}
