package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"net/http"
	"stay/config"
	"stay/infras/kafka"
	"stay/infras/otel"
	availabilityService "stay/internal/domains/availability/service"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	hotelDto "stay/internal/domains/hotel/model/dto"
	hotelService "stay/internal/domains/hotel/service"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking   = "booking:ref"
	cacheListBookings = "booking:list"

	unknownHotelName = "Unknown Hotel"
)

// Booking sequences idempotency guard, capacity allocation, and the
// durable booking record.
type Booking interface {
	Reserve(ctx context.Context, req dto.ReservationRequest, idempotencyKey string) (dto.ReservationResponse, error)
	GetByReference(ctx context.Context, reference string) (dto.BookingDetailsResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.BookingDetailsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	availability availabilityService.Availability
	hotel        hotelService.Hotel
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	availability availabilityService.Availability,
	hotel hotelService.Hotel,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		hotel:        hotel,
		kafka:        kafkaClient,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Reserve creates at most one booking per idempotency key. A key seen
// before returns the prior booking as a duplicate result, not an error.
// Capacity already decremented by the allocator is not released when a
// later persist step fails.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReservationRequest, idempotencyKey string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.GetByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if existing.ID != constant.Empty {
		return s.duplicateResult(ctx, existing)
	}

	reserveReq, err := req.ToReserveRequest()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	receipt, err := s.availability.Reserve(ctx, reserveReq)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking, lines := req.ToModel(idempotencyKey, receipt)

	err = s.repo.Create(ctx, booking, lines)
	if errors.Is(err, repository.ErrDuplicate) {
		winner, getErr := s.repo.GetByIdempotencyKey(ctx, idempotencyKey)
		if getErr != nil {
			return res, getErr // nolint:wrapcheck
		}

		if winner.ID == constant.Empty {
			return res, failure.InternalError(errors.New("winning booking not found after duplicate key conflict")) // nolint:wrapcheck
		}

		return s.duplicateResult(ctx, winner)
	}

	if err != nil {
		return res, err // nolint:wrapcheck
	}

	s.publishCreated(ctx, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheListBookings, booking.UserID))
	}()

	res.FromModel(booking, lines)
	res.Created = true

	return res, nil
}

func (s *serviceImpl) duplicateResult(ctx context.Context, booking model.Booking) (dto.ReservationResponse, error) {
	var res dto.ReservationResponse

	lines, err := s.repo.GetLines(ctx, []string{booking.ID})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	res.FromModel(booking, lines)
	res.Created = false

	return res, nil
}

func (s *serviceImpl) publishCreated(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingCreatedEvent{}
		event.FromModel(booking)

		message := kafka.Message{Key: booking.Reference, Value: event}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.BookingCreated, message); err != nil {
			log.Error().Err(err).Str("reference", booking.Reference).Msg("failed to publish booking created event")
		}
	}()
}

func (s *serviceImpl) GetByReference(ctx context.Context, reference string) (res dto.BookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByReference")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, reference)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.GetByReference(ctx, reference)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	lines, err := s.repo.GetLines(ctx, []string{booking.ID})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	hotel, err := s.hotel.GetSummary(ctx, booking.HotelID)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			return res, err // nolint:wrapcheck
		}

		return res, failure.ExternalService("failed to load hotel for booking") // nolint:wrapcheck
	}

	res.FromModel(booking, lines, hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking details to cache")
		}
	}()

	return res, nil
}

// ListByUser returns bookings newest first. A hotel that cannot be
// resolved degrades that booking to a placeholder name instead of
// failing the whole list.
func (s *serviceImpl) ListByUser(ctx context.Context, userID string) (res []dto.BookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	bookings, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	bookingIDs := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
	}

	lines, err := s.repo.GetLines(ctx, bookingIDs)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	linesByBooking := make(map[string][]model.BookingRoomLine, len(bookings))
	for _, line := range lines {
		linesByBooking[line.BookingID] = append(linesByBooking[line.BookingID], line)
	}

	hotels := make(map[string]hotelDto.HotelSummary, len(bookings))

	res = make([]dto.BookingDetailsResponse, 0, len(bookings))

	for _, booking := range bookings {
		hotel, ok := hotels[booking.HotelID]
		if !ok {
			var lookupErr error

			hotel, lookupErr = s.hotel.GetSummary(ctx, booking.HotelID)
			if lookupErr != nil {
				log.Warn().Err(lookupErr).Str("hotelID", booking.HotelID).Msg("failed to resolve hotel for booking list")

				hotel = hotelDto.HotelSummary{HotelID: booking.HotelID, Name: unknownHotelName}
			}

			hotels[booking.HotelID] = hotel
		}

		var details dto.BookingDetailsResponse
		details.FromModel(booking, linesByBooking[booking.ID], hotel)

		res = append(res, details)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking list to cache")
		}
	}()

	return res, nil
}
