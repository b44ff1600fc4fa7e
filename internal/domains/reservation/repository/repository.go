package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"pureheart/infras/otel"
	"pureheart/infras/postgres"
	"pureheart/internal/domains/reservation/model"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	gRepo "pureheart/shared/repository"
	"pureheart/shared/timezone"

	"github.com/jmoiron/sqlx"
)

var ErrTableUnavailable = errors.New("table not found or inactive")

// Guard inspects the live bookings of the table on the date while its row is
// locked. A non-nil error aborts the write.
type Guard func(booked []model.Reservation) error

type Reservation interface {
	Get(ctx context.Context, id string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetByDate(ctx context.Context, date string) ([]model.Reservation, error)
	Book(ctx context.Context, reservation model.Reservation, guard Guard) error
	Rebook(ctx context.Context, reservation model.Reservation, user string, guard Guard) error
	UpdateStatus(ctx context.Context, id, status, user string) error
}

type repositoryImpl struct {
	reservations gRepo.Repository[model.Reservation]
	tables       gRepo.Repository[model.TableLock]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		reservations: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		tables:       gRepo.NewRepository[model.TableLock](model.EntityNameTable, model.TableNameTables, model.FieldID, db, otel),
		otel:         otel,
	}
}

func byID(table, id string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(table, model.FieldID, id))
}

func notCancelled() gDto.Filter {
	return gDto.Filter{
		Table:    model.TableName,
		Field:    model.FieldStatus,
		Value:    constant.ReservationStatusCancelled,
		Operator: gDto.FilterOperatorNotEq,
	}
}

func bookedOn(tableID, date string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldTableID, tableID),
		gDto.Eq(model.TableName, model.FieldReservationDate, date),
		notCancelled(),
	)
}

var startOrder = gDto.QueryParams{SortBy: "start_hour", SortDir: gDto.SortDirAsc}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Reservation, error) {
	return r.reservations.Get(ctx, byID(model.TableName, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error) {
	return r.reservations.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.reservations.Count(ctx, filter) //nolint:wrapcheck
}

// GetByDate lists every reservation on the date that still holds its table.
func (r *repositoryImpl) GetByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	return r.reservations.GetAll(ctx, startOrder, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.TableName, model.FieldReservationDate, date),
		notCancelled(),
	))
}

// Book inserts the reservation once guard accepts the table's bookings for the
// date. The table row stays locked until commit, so concurrent bookings of one
// table are checked one after another.
func (r *repositoryImpl) Book(ctx context.Context, reservation model.Reservation, guard Guard) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.reservations.RunInTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := r.lockTable(ctx, sqltx, reservation, guard); err != nil {
			return err
		}

		return r.reservations.InsertTx(ctx, sqltx, reservation) //nolint:wrapcheck
	})
}

// Rebook moves an existing reservation to new values under the same lock as Book.
func (r *repositoryImpl) Rebook(ctx context.Context, reservation model.Reservation, user string, guard Guard) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Rebook")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.reservations.RunInTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := r.lockTable(ctx, sqltx, reservation, guard); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldTableID:         reservation.TableID,
			model.FieldReservationDate: reservation.Day(),
			model.FieldStartHour:       reservation.StartHour,
			model.FieldDuration:        reservation.Duration,
			model.FieldGuestsCount:     reservation.GuestsCount,
			model.FieldFirstName:       reservation.FirstName,
			model.FieldLastName:        reservation.LastName,
			model.FieldPhone:           reservation.Phone,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   user,
		}

		return r.reservations.UpdateTx(ctx, sqltx, fields, byID(model.TableName, reservation.ID)) //nolint:wrapcheck
	})
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id, status, user string) error {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return r.reservations.Update(ctx, fields, byID(model.TableName, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) lockTable(ctx context.Context, sqltx *sqlx.Tx, reservation model.Reservation, guard Guard) error {
	tables, err := r.tables.LockTx(ctx, sqltx, byID(model.TableNameTables, reservation.TableID))
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(tables) == 0 || !tables[0].IsActive {
		return ErrTableUnavailable
	}

	booked, err := r.reservations.GetAllTx(ctx, sqltx, bookedOn(reservation.TableID, reservation.Day()))
	if err != nil {
		return err //nolint:wrapcheck
	}

	return guard(booked)
}
