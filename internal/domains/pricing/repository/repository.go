package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/pricing/model"
	"stay/shared/constant"
	"stay/shared/logger"

	"github.com/jmoiron/sqlx"
)

type Pricing interface {
	GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]model.RoomPricing, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetByCategoryIDs(ctx context.Context, categoryIDs []string) ([]model.RoomPricing, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetByCategoryIDs", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	if len(categoryIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT id, room_category_id, base_rate FROM %s WHERE room_category_id IN (?)", model.TableName),
		categoryIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var pricings []model.RoomPricing

	if err := repo.db.Read.SelectContext(ctx, &pricings, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	if len(pricings) == 0 {
		return pricings, nil
	}

	seasons, err := repo.getSeasons(ctx, pricings)
	if err != nil {
		return nil, err
	}

	byPricing := map[string][]model.SeasonalRate{}
	for _, season := range seasons {
		byPricing[season.RoomPricingID] = append(byPricing[season.RoomPricingID], season)
	}

	for i := range pricings {
		pricings[i].Seasons = byPricing[pricings[i].ID]
	}

	return pricings, nil
}

func (repo *repositoryImpl) getSeasons(ctx context.Context, pricings []model.RoomPricing) ([]model.SeasonalRate, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.getSeasons", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	pricingIDs := make([]string, len(pricings))
	for i, pricing := range pricings {
		pricingIDs[i] = pricing.ID
	}

	query, args, err := sqlx.In(
		fmt.Sprintf("SELECT id, room_pricing_id, rate, start_date, end_date FROM %s WHERE room_pricing_id IN (?)", model.SeasonalTableName),
		pricingIDs,
	)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var seasons []model.SeasonalRate

	if err := repo.db.Read.SelectContext(ctx, &seasons, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get seasonal rates (%s): %w", model.EntityName, err)
	}

	return seasons, nil
}
