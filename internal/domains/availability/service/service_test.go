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
	"stay/infras/otel/mocks"
	"stay/internal/domains/availability/model"
	"stay/internal/domains/availability/model/dto"
	"stay/internal/domains/availability/repository"
	availabilityMocks "stay/internal/domains/availability/repository/mocks"
	"stay/internal/domains/availability/service"
	hotelMocks "stay/internal/domains/hotel/repository/mocks"
	pricingModel "stay/internal/domains/pricing/model"
	pricingMocks "stay/internal/domains/pricing/repository/mocks"
	"stay/shared/failure"
)

var (
	checkIn  = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
)

func reserveWithinPassthrough(tx repository.ReserveTx) func(ctx context.Context, fn func(repository.ReserveTx) error) error {
	return func(_ context.Context, fn func(repository.ReserveTx) error) error {
		return fn(tx)
	}
}

func TestAvailabilityService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockTx := availabilityMocks.NewMockReserveTx(ctrl)
	mockPricing := pricingMocks.NewMockPricing(ctrl)
	mockHotel := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPricing, mockHotel, cfg, mockOtel)

	pricings := []pricingModel.RoomPricing{
		{ID: "p1", RoomCategoryID: "cat-a", BaseRate: 100},
		{ID: "p2", RoomCategoryID: "cat-b", BaseRate: 50},
	}

	row := func(id string, booked int, version string) model.RoomAvailability {
		return model.RoomAvailability{
			ID:             id,
			HotelID:        "hotel-1",
			RoomCategoryID: "cat-a",
			TotalCount:     5,
			BookedCount:    booked,
			Version:        version,
		}
	}

	tests := []struct {
		name      string
		req       dto.ReserveRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantKind  string
		wantMsg   string
		wantTotal float64
	}{
		{
			name: "reserves every night and prices with flat base rate",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms: []dto.RoomItem{
					{RoomCategoryID: "cat-a", Quantity: 2},
					{RoomCategoryID: "cat-b", Quantity: 0},
				},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a", "cat-b"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
					Return(row("av-1", 0, "v1"), nil)
				mockTx.EXPECT().
					CompareAndBook(gomock.Any(), "av-1", "v1", 2).
					Return(true, nil)
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn.AddDate(0, 0, 1)).
					Return(row("av-2", 1, "v2"), nil)
				mockTx.EXPECT().
					CompareAndBook(gomock.Any(), "av-2", "v2", 3).
					Return(true, nil)
			},
			wantTotal: 400,
		},
		{
			name: "check out before check in",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkOut,
				CheckOut: checkIn,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
			wantKind:  failure.KindValidation,
		},
		{
			name: "unknown room category",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-x", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-x"}).
					Return(nil, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantKind: failure.KindValidation,
			wantMsg:  "Unknown room category cat-x.",
		},
		{
			name: "missing availability row",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
					Return(model.RoomAvailability{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
			wantKind: failure.KindValidation,
			wantMsg:  "No availability for category cat-a on 2025-12-01.",
		},
		{
			name: "capacity exceeded with remaining count",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 3}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
					Return(row("av-1", 3, "v1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: failure.KindCapacityExceeded,
			wantMsg:  "Only 2 rooms left for category cat-a on 2025-12-01.",
		},
		{
			name: "no rooms left",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
					Return(row("av-1", 5, "v1"), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: failure.KindCapacityExceeded,
			wantMsg:  "No rooms left for category cat-a on 2025-12-01.",
		},
		{
			name: "version conflict retried with fresh read",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkIn.AddDate(0, 0, 1),
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				gomock.InOrder(
					mockTx.EXPECT().
						Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
						Return(row("av-1", 0, "v1"), nil),
					mockTx.EXPECT().
						CompareAndBook(gomock.Any(), "av-1", "v1", 1).
						Return(false, nil),
					mockTx.EXPECT().
						Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
						Return(row("av-1", 1, "v2"), nil),
					mockTx.EXPECT().
						CompareAndBook(gomock.Any(), "av-1", "v2", 2).
						Return(true, nil),
				)
			},
			wantTotal: 100,
		},
		{
			name: "retries exhausted on contended row",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkIn.AddDate(0, 0, 1),
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					DoAndReturn(reserveWithinPassthrough(mockTx))
				mockTx.EXPECT().
					Get(gomock.Any(), "hotel-1", "cat-a", checkIn).
					Return(row("av-1", 0, "v1"), nil).
					Times(3)
				mockTx.EXPECT().
					CompareAndBook(gomock.Any(), "av-1", "v1", 1).
					Return(false, nil).
					Times(3)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
			wantKind: failure.KindConcurrencyExhausted,
			wantMsg:  "Concurrency conflict for room cat-a on 2025-12-01.",
		},
		{
			name: "repository error rolls the whole range back",
			req: dto.ReserveRequest{
				HotelID:  "hotel-1",
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Rooms:    []dto.RoomItem{{RoomCategoryID: "cat-a", Quantity: 1}},
			},
			setupMock: func() {
				mockPricing.EXPECT().
					GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
					Return(pricings, nil)
				mockRepo.EXPECT().
					ReserveWithin(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			receipt, err := svc.Reserve(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, receipt.TotalCost)

			var sum float64
			for _, room := range receipt.Rooms {
				assert.Equal(t, room.RateApplied*float64(room.Quantity)*float64(receipt.Nights), room.Subtotal)
				sum += room.Subtotal
			}

			assert.Equal(t, receipt.TotalCost, sum)
		})
	}
}

func TestAvailabilityService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockPricing := pricingMocks.NewMockPricing(ctrl)
	mockHotel := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPricing, mockHotel, cfg, mockOtel)

	tests := []struct {
		name          string
		req           dto.CheckRequest
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "every category has capacity",
			req: dto.CheckRequest{
				HotelID:         "hotel-1",
				RoomCategoryIDs: []string{"cat-a", "cat-b"},
				CheckIn:         "2025-12-01",
				CheckOut:        "2025-12-03",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					AvailableCategories(gomock.Any(), "hotel-1", []string{"cat-a", "cat-b"}, checkIn, checkOut).
					Return([]string{"cat-a", "cat-b"}, nil)
			},
			wantAvailable: true,
		},
		{
			name: "one category missing a night",
			req: dto.CheckRequest{
				HotelID:         "hotel-1",
				RoomCategoryIDs: []string{"cat-a", "cat-b"},
				CheckIn:         "2025-12-01",
				CheckOut:        "2025-12-03",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					AvailableCategories(gomock.Any(), "hotel-1", []string{"cat-a", "cat-b"}, checkIn, checkOut).
					Return([]string{"cat-a"}, nil)
			},
			wantAvailable: false,
		},
		{
			name: "inverted range is not available",
			req: dto.CheckRequest{
				HotelID:         "hotel-1",
				RoomCategoryIDs: []string{"cat-a"},
				CheckIn:         "2025-12-03",
				CheckOut:        "2025-12-01",
			},
			setupMock:     func() {},
			wantAvailable: false,
		},
		{
			name: "repository error",
			req: dto.CheckRequest{
				HotelID:         "hotel-1",
				RoomCategoryIDs: []string{"cat-a"},
				CheckIn:         "2025-12-01",
				CheckOut:        "2025-12-03",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					AvailableCategories(gomock.Any(), "hotel-1", []string{"cat-a"}, checkIn, checkOut).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Check(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
		})
	}
}

func TestAvailabilityService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := availabilityMocks.NewMockAvailability(ctrl)
	mockPricing := pricingMocks.NewMockPricing(ctrl)
	mockHotel := hotelMocks.NewMockHotel(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockPricing, mockHotel, cfg, mockOtel)

	req := dto.SummaryRequest{
		HotelID:  "hotel-1",
		Guests:   2,
		CheckIn:  "2025-12-01",
		CheckOut: "2025-12-03",
		Rooms:    []dto.RoomItemPayload{{RoomCategoryID: "cat-a", Quantity: 2}},
	}

	t.Run("prices the stay without touching inventory", func(t *testing.T) {
		mockHotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockPricing.EXPECT().
			GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
			Return([]pricingModel.RoomPricing{{ID: "p1", RoomCategoryID: "cat-a", BaseRate: 100}}, nil)

		res, err := svc.Summary(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
		assert.Equal(t, float64(400), res.TotalCost)
		assert.Equal(t, "2025-12-01", res.CheckIn)
	})

	t.Run("seasonal rate on one night does not change the aggregate", func(t *testing.T) {
		seasonal := pricingModel.RoomPricing{
			ID:             "p1",
			RoomCategoryID: "cat-a",
			BaseRate:       100,
			Seasons: []pricingModel.SeasonalRate{
				{
					ID:            "s1",
					RoomPricingID: "p1",
					Rate:          150,
					StartDate:     time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
					EndDate:       time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
				},
			},
		}

		// The resolver sees the override for the covered night.
		assert.Equal(t, 150.0, seasonal.RateFor(time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)))

		mockHotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockPricing.EXPECT().
			GetByCategoryIDs(gomock.Any(), []string{"cat-a"}).
			Return([]pricingModel.RoomPricing{seasonal}, nil)

		threeNights := dto.SummaryRequest{
			HotelID:  "hotel-1",
			Guests:   2,
			CheckIn:  "2025-12-01",
			CheckOut: "2025-12-04",
			Rooms:    []dto.RoomItemPayload{{RoomCategoryID: "cat-a", Quantity: 1}},
		}

		res, err := svc.Summary(context.Background(), threeNights)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, float64(300), res.TotalCost)
		assert.Equal(t, float64(100), res.Rooms[0].RateApplied)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		mockHotel.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Summary(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
