package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"

	"github.com/lib/pq"
)

// ErrDuplicate marks an insert that lost the idempotency race. The
// caller re-queries by key to resolve the winning booking.
var ErrDuplicate = errors.New("booking already exists for idempotency key")

type Booking interface {
	Create(ctx context.Context, booking model.Booking, lines []model.BookingRoomLine) error
	GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (model.Booking, error)
	GetByReference(ctx context.Context, reference string) (model.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]model.Booking, error)
	GetLines(ctx context.Context, bookingIDs []string) ([]model.BookingRoomLine, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	lines gRepo.Repository[model.BookingRoomLine]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.BookingRoomLine](model.LineEntityName, model.LineTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking, lines []model.BookingRoomLine) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, sqltx, booking); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}

		return err // nolint:wrapcheck
	}

	if err = repo.lines.InsertBulkTx(ctx, sqltx, lines); err != nil {
		return err // nolint:wrapcheck
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(idempotencyKey, model.FieldIdempotencyKey, model.TableName)) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetByReference(ctx context.Context, reference string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(reference, model.FieldReference, model.TableName)) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	return repo.GetAll(ctx, params, shared.FilterByID(userID, model.FieldUserID, model.TableName)) // nolint:wrapcheck
}

func (repo *repositoryImpl) GetLines(ctx context.Context, bookingIDs []string) ([]model.BookingRoomLine, error) {
	if len(bookingIDs) == 0 {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    model.LineTableName,
			},
		},
	}

	return repo.lines.GetAll(ctx, gDto.QueryParams{}, filter) // nolint:wrapcheck
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
