package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/availability/model"
	"stay/shared/constant"
	"stay/shared/logger"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReserveTx exposes the per-row operations available inside a
// reservation transaction. CompareAndBook only writes when the version
// read by Get is still current.
type ReserveTx interface {
	Get(ctx context.Context, hotelID, roomCategoryID string, date time.Time) (model.RoomAvailability, error)
	CompareAndBook(ctx context.Context, id, version string, bookedCount int) (bool, error)
}

type Availability interface {
	ReserveWithin(ctx context.Context, fn func(tx ReserveTx) error) error
	AvailableCategories(ctx context.Context, hotelID string, roomCategoryIDs []string, checkIn, checkOut time.Time) ([]string, error)
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ExtendWindow(ctx context.Context, from, until time.Time) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) ReserveWithin(ctx context.Context, fn func(tx ReserveTx) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ReserveWithin")
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

	if err = fn(&reserveTx{tx: sqltx, otel: repo.otel}); err != nil {
		return err
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) AvailableCategories(ctx context.Context, hotelID string, roomCategoryIDs []string, checkIn, checkOut time.Time) (res []string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".AvailableCategories")
	defer scope.End()
	defer scope.TraceIfError(err)

	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE %s = ? AND %s IN (?) AND %s >= ? AND %s < ? AND %s - %s > 0
		GROUP BY %s
		HAVING COUNT(DISTINCT %s) = ?`,
		model.FieldRoomCategoryID, model.TableName,
		model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate, model.FieldDate,
		model.FieldTotalCount, model.FieldBookedCount,
		model.FieldRoomCategoryID, model.FieldDate)

	query, args, err := sqlx.In(query, hotelID, roomCategoryIDs, checkIn, checkOut, nights)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to build query (%s): %w", model.EntityName, err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to select available categories (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (repo *repositoryImpl) PruneBefore(ctx context.Context, cutoff time.Time) (deleted int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".PruneBefore")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s < $1", model.TableName, model.FieldDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, cutoff)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prune availability rows (%s): %w", model.EntityName, err)
	}

	deleted, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count pruned rows (%s): %w", model.EntityName, err)
	}

	return deleted, nil
}

// ExtendWindow materializes availability rows up to the horizon by
// carrying forward each pair's most recent total_count. Existing rows
// are left untouched.
func (repo *repositoryImpl) ExtendWindow(ctx context.Context, from, until time.Time) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ExtendWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		SELECT gen_random_uuid(), latest.hotel_id, latest.room_category_id, series.day::date, latest.total_count, 0, gen_random_uuid()
		FROM (
			SELECT DISTINCT ON (%s, %s) %s, %s, %s
			FROM %s
			ORDER BY %s, %s, %s DESC
		) latest
		CROSS JOIN generate_series($1::date, $2::date, interval '1 day') AS series(day)
		ON CONFLICT (%s, %s, %s) DO NOTHING`,
		model.TableName,
		model.FieldID, model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate, model.FieldTotalCount, model.FieldBookedCount, model.FieldVersion,
		model.FieldHotelID, model.FieldRoomCategoryID, model.FieldHotelID, model.FieldRoomCategoryID, model.FieldTotalCount,
		model.TableName,
		model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate,
		model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, from, until); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to extend availability window (%s): %w", model.EntityName, err)
	}

	return nil
}

type reserveTx struct {
	tx   *sqlx.Tx
	otel otel.Otel
}

func (r *reserveTx) Get(ctx context.Context, hotelID, roomCategoryID string, date time.Time) (res model.RoomAvailability, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3",
		model.FieldID, model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate, model.FieldTotalCount, model.FieldBookedCount, model.FieldVersion,
		model.TableName, model.FieldHotelID, model.FieldRoomCategoryID, model.FieldDate)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.tx.GetContext(ctx, &res, query, hotelID, roomCategoryID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RoomAvailability{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get availability row (%s): %w", model.EntityName, err)
	}

	return res, nil
}

func (r *reserveTx) CompareAndBook(ctx context.Context, id, version string, bookedCount int) (swapped bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CompareAndBook")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 AND %s = $4",
		model.TableName, model.FieldBookedCount, model.FieldVersion, model.FieldID, model.FieldVersion)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.tx.ExecContext(ctx, query, bookedCount, uuid.NewString(), id, version)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to book availability row (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check booked rows (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}
