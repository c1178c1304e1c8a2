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
	"stay/internal/domains/hotel/model"
	"stay/internal/domains/hotel/model/dto"
	hotelMocks "stay/internal/domains/hotel/repository/mocks"
	"stay/internal/domains/hotel/service"
	cacheMocks "stay/shared/cache/mocks"
	"stay/shared/failure"
)

func TestHotelService_GetSummary(t *testing.T) {
	hotel := model.Hotel{
		ID:       "hotel-1",
		Name:     "Grand Plaza",
		City:     "Jakarta",
		Country:  "Indonesia",
		ImageURL: "https://img.example/hotel-1.jpg",
	}

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := hotelMocks.NewMockHotel(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}
		cfg.Cache.TTL = 3600

		svc := service.New(mockRepo, cfg, mockCache, mockOtel)

		mockCache.EXPECT().
			Get(gomock.Any(), "hotel:get:hotel-1", gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(hotel, nil)

		cached := make(chan struct{})

		mockCache.EXPECT().
			Save(gomock.Any(), "hotel:get:hotel-1", gomock.Any(), 3600).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				close(cached)

				return nil
			})

		res, err := svc.GetSummary(context.Background(), "hotel-1")

		assert.NoError(t, err)
		assert.Equal(t, "Grand Plaza", res.Name)
		assert.Equal(t, "hotel-1", res.HotelID)

		select {
		case <-cached:
		case <-time.After(time.Second):
			t.Fatal("hotel summary was not cached")
		}
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := hotelMocks.NewMockHotel(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}

		svc := service.New(mockRepo, cfg, mockCache, mockOtel)

		mockCache.EXPECT().
			Get(gomock.Any(), "hotel:get:hotel-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				summary, _ := value.(*dto.HotelSummary)
				summary.HotelID = "hotel-1"
				summary.Name = "Grand Plaza"

				return nil
			})

		res, err := svc.GetSummary(context.Background(), "hotel-1")

		assert.NoError(t, err)
		assert.Equal(t, "Grand Plaza", res.Name)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockRepo := hotelMocks.NewMockHotel(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}

		svc := service.New(mockRepo, cfg, mockCache, mockOtel)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Hotel{}, nil)

		_, err := svc.GetSummary(context.Background(), "hotel-x")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
