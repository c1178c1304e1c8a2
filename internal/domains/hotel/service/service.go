package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/config"
	"stay/infras/otel"
	"stay/internal/domains/hotel/model"
	"stay/internal/domains/hotel/model/dto"
	"stay/internal/domains/hotel/repository"
	"stay/shared"
	"stay/shared/cache"
	"stay/shared/constant"
	"stay/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel = "hotel:get"
)

type Hotel interface {
	GetSummary(ctx context.Context, hotelID string) (dto.HotelSummary, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetSummary(ctx context.Context, hotelID string) (res dto.HotelSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, hotelID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotelID", hotelID).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel summary to cache")
		}
	}()

	return res, nil
}
