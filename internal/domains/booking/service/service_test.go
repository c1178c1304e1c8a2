package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/config"
	kafkaMocks "stay/infras/kafka/mocks"
	"stay/infras/otel/mocks"
	availabilityDto "stay/internal/domains/availability/model/dto"
	availabilityMocks "stay/internal/domains/availability/service/mocks"
	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	"stay/internal/domains/booking/repository"
	bookingMocks "stay/internal/domains/booking/repository/mocks"
	"stay/internal/domains/booking/service"
	hotelDto "stay/internal/domains/hotel/model/dto"
	hotelMocks "stay/internal/domains/hotel/service/mocks"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/failure"
)

type bookingFixture struct {
	repo         *bookingMocks.MockBooking
	availability *availabilityMocks.MockAvailability
	hotel        *hotelMocks.MockHotel
	kafka        *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockAvailability := availabilityMocks.NewMockAvailability(ctrl)
	mockHotel := hotelMocks.NewMockHotel(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topic.BookingCreated = "booking.created"

	svc := service.New(mockRepo, mockAvailability, mockHotel, mockKafka, cfg, mockCache, mockOtel)

	return bookingFixture{
		repo:         mockRepo,
		availability: mockAvailability,
		hotel:        mockHotel,
		kafka:        mockKafka,
		cache:        mockCache,
		svc:          svc,
	}
}

var (
	reservationReq = dto.ReservationRequest{
		HotelID:  "hotel-1",
		UserID:   "user-1",
		Guests:   2,
		CheckIn:  "2025-12-01",
		CheckOut: "2025-12-03",
		Rooms:    []availabilityDto.RoomItemPayload{{RoomCategoryID: "cat-a", Quantity: 2}},
	}

	receipt = availabilityDto.ReservationReceipt{
		HotelID:  "hotel-1",
		CheckIn:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC),
		Nights:   2,
		Rooms: []availabilityDto.ReservedRoom{
			{RoomCategoryID: "cat-a", Quantity: 2, RateApplied: 100, Subtotal: 400},
		},
		TotalCost: 400,
	}

	priorBooking = model.Booking{
		ID:             "bk-id-1",
		Reference:      "BK-AAAAAAAAAAAA",
		IdempotencyKey: "key-1",
		HotelID:        "hotel-1",
		UserID:         "user-1",
		CheckIn:        time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC),
		Guests:         2,
		TotalCost:      400,
		CreatedAt:      time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC),
	}

	priorLines = []model.BookingRoomLine{
		{ID: "ln-1", BookingID: "bk-id-1", RoomCategoryID: "cat-a", Quantity: 2, RateApplied: 100, Subtotal: 400},
	}
)

func TestBookingService_Reserve_Created(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "key-1").
		Return(model.Booking{}, nil)
	f.availability.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(receipt, nil)

	var saved model.Booking

	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking, lines []model.BookingRoomLine) error {
			saved = booking

			assert.Len(t, lines, 1)
			assert.Equal(t, booking.ID, lines[0].BookingID)

			return nil
		})

	published := make(chan struct{})

	f.kafka.EXPECT().
		SendMessages(gomock.Any(), "booking.created", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...any) error {
			close(published)

			return nil
		})

	invalidated := make(chan struct{})

	f.cache.EXPECT().
		Clear(gomock.Any(), "booking:list:user-1*").
		DoAndReturn(func(_ context.Context, _ string) error {
			close(invalidated)

			return nil
		})

	res, err := f.svc.Reserve(context.Background(), reservationReq, "key-1")

	assert.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, saved.Reference, res.Reference)
	assert.Equal(t, float64(400), res.TotalCost)
	assert.Equal(t, "key-1", saved.IdempotencyKey)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("booking created event was not published")
	}

	select {
	case <-invalidated:
	case <-time.After(time.Second):
		t.Fatal("booking list cache was not invalidated")
	}
}

func TestBookingService_Reserve_DuplicateKey(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "key-1").
		Return(priorBooking, nil)
	f.repo.EXPECT().
		GetLines(gomock.Any(), []string{"bk-id-1"}).
		Return(priorLines, nil)

	res, err := f.svc.Reserve(context.Background(), reservationReq, "key-1")

	assert.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "BK-AAAAAAAAAAAA", res.Reference)
	assert.Equal(t, float64(400), res.TotalCost)
}

func TestBookingService_Reserve_DuplicateRace(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "key-1").
		Return(model.Booking{}, nil)
	f.availability.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(receipt, nil)
	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(repository.ErrDuplicate)
	f.repo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "key-1").
		Return(priorBooking, nil)
	f.repo.EXPECT().
		GetLines(gomock.Any(), []string{"bk-id-1"}).
		Return(priorLines, nil)

	res, err := f.svc.Reserve(context.Background(), reservationReq, "key-1")

	assert.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, "BK-AAAAAAAAAAAA", res.Reference)
}

func TestBookingService_Reserve_AllocatorFailure(t *testing.T) {
	f := newBookingFixture(t)

	f.repo.EXPECT().
		GetByIdempotencyKey(gomock.Any(), "key-1").
		Return(model.Booking{}, nil)
	f.availability.EXPECT().
		Reserve(gomock.Any(), gomock.Any()).
		Return(availabilityDto.ReservationReceipt{}, failure.CapacityExceeded("No rooms left for category cat-a on 2025-12-01."))

	_, err := f.svc.Reserve(context.Background(), reservationReq, "key-1")

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.Equal(t, failure.KindCapacityExceeded, failure.GetKind(err))
}

func TestBookingService_GetByReference(t *testing.T) {
	hotelSummary := hotelDto.HotelSummary{
		HotelID:  "hotel-1",
		Name:     "Grand Plaza",
		ImageURL: "https://img.example/hotel-1.jpg",
	}

	t.Run("enriches with hotel details", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetByReference(gomock.Any(), "BK-AAAAAAAAAAAA").
			Return(priorBooking, nil)
		f.repo.EXPECT().
			GetLines(gomock.Any(), []string{"bk-id-1"}).
			Return(priorLines, nil)
		f.hotel.EXPECT().
			GetSummary(gomock.Any(), "hotel-1").
			Return(hotelSummary, nil)

		cached := make(chan struct{})

		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				close(cached)

				return nil
			})

		res, err := f.svc.GetByReference(context.Background(), "BK-AAAAAAAAAAAA")

		assert.NoError(t, err)
		assert.Equal(t, "Grand Plaza", res.HotelName)
		assert.Equal(t, "2025-12-01", res.CheckIn)
		assert.Len(t, res.Rooms, 1)

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("booking details were not cached")
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetByReference(gomock.Any(), "BK-MISSING00000").
			Return(model.Booking{}, nil)

		_, err := f.svc.GetByReference(context.Background(), "BK-MISSING00000")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("hotel lookup failure is a hard failure", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetByReference(gomock.Any(), "BK-AAAAAAAAAAAA").
			Return(priorBooking, nil)
		f.repo.EXPECT().
			GetLines(gomock.Any(), []string{"bk-id-1"}).
			Return(priorLines, nil)
		f.hotel.EXPECT().
			GetSummary(gomock.Any(), "hotel-1").
			Return(hotelDto.HotelSummary{}, errors.New("catalog unreachable"))

		_, err := f.svc.GetByReference(context.Background(), "BK-AAAAAAAAAAAA")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
		assert.Equal(t, failure.KindExternalService, failure.GetKind(err))
	})
}

func TestBookingService_ListByUser(t *testing.T) {
	secondBooking := model.Booking{
		ID:        "bk-id-2",
		Reference: "BK-BBBBBBBBBBBB",
		HotelID:   "hotel-2",
		UserID:    "user-1",
		CheckIn:   time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2025, 12, 11, 0, 0, 0, 0, time.UTC),
		Guests:    1,
		TotalCost: 80,
		CreatedAt: time.Date(2025, 11, 25, 9, 0, 0, 0, time.UTC),
	}

	t.Run("degrades to placeholder when a hotel cannot be resolved", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "booking:list:user-1", gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetByUser(gomock.Any(), "user-1").
			Return([]model.Booking{secondBooking, priorBooking}, nil)
		f.repo.EXPECT().
			GetLines(gomock.Any(), []string{"bk-id-2", "bk-id-1"}).
			Return(priorLines, nil)
		f.hotel.EXPECT().
			GetSummary(gomock.Any(), "hotel-2").
			Return(hotelDto.HotelSummary{}, errors.New("catalog unreachable"))
		f.hotel.EXPECT().
			GetSummary(gomock.Any(), "hotel-1").
			Return(hotelDto.HotelSummary{HotelID: "hotel-1", Name: "Grand Plaza"}, nil)

		cached := make(chan struct{})

		f.cache.EXPECT().
			Save(gomock.Any(), "booking:list:user-1", gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				close(cached)

				return nil
			})

		res, err := f.svc.ListByUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Unknown Hotel", res[0].HotelName)
		assert.Equal(t, "Grand Plaza", res[1].HotelName)

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("booking list was not cached")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		f := newBookingFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "booking:list:user-1", gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetByUser(gomock.Any(), "user-1").
			Return(nil, nil)
		f.repo.EXPECT().
			GetLines(gomock.Any(), []string{}).
			Return(nil, nil)

		cached := make(chan struct{})

		f.cache.EXPECT().
			Save(gomock.Any(), "booking:list:user-1", gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				close(cached)

				return nil
			})

		res, err := f.svc.ListByUser(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Empty(t, res)

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("booking list was not cached")
		}
	})
}
