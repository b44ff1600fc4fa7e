package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"pureheart/infras/otel"
	"pureheart/infras/postgres"
	"pureheart/internal/domains/layout/model"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	gRepo "pureheart/shared/repository"
	"pureheart/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Layout interface {
	GetLayout(ctx context.Context, roomID string) (model.Layout, error)
	GetTables(ctx context.Context, roomID string) ([]model.Table, error)
	GetTable(ctx context.Context, id string) (model.Table, error)
	GetStaticItem(ctx context.Context, id string) (model.StaticItem, error)
	GetWall(ctx context.Context, id string) (model.Wall, error)
	InsertTable(ctx context.Context, table model.Table) error
	InsertStaticItem(ctx context.Context, item model.StaticItem) error
	InsertWall(ctx context.Context, wall model.Wall) error
	UpdateTable(ctx context.Context, id string, fields map[string]any) error
	UpdateStaticItem(ctx context.Context, id string, fields map[string]any) error
	UpdateWall(ctx context.Context, id string, fields map[string]any) error
	DeactivateTable(ctx context.Context, id string, user string) error
	DeleteStaticItem(ctx context.Context, id string) error
	DeleteWall(ctx context.Context, id string) error
	ReplaceLayout(ctx context.Context, layout model.Layout, user string) error
	ClearLayout(ctx context.Context, roomID string, user string) error
}

type repositoryImpl struct {
	tables   gRepo.Repository[model.Table]
	statics  gRepo.Repository[model.StaticItem]
	walls    gRepo.Repository[model.Wall]
	bookings gRepo.Repository[model.Booking]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Layout {
	return &repositoryImpl{
		tables:   gRepo.NewRepository[model.Table](model.EntityNameTable, model.TableNameTables, model.FieldID, db, otel),
		statics:  gRepo.NewRepository[model.StaticItem](model.EntityNameStaticItem, model.TableNameStaticItems, model.FieldID, db, otel),
		walls:    gRepo.NewRepository[model.Wall](model.EntityNameWall, model.TableNameWalls, model.FieldID, db, otel),
		bookings: gRepo.NewRepository[model.Booking](model.EntityNameBooking, model.TableNameBookings, model.FieldID, db, otel),
		otel:     otel,
	}
}

func activeTables(roomID string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableNameTables, model.FieldRoomID, roomID),
		gDto.Filter{
			Table:    model.TableNameTables,
			Field:    model.FieldIsActive,
			ArgName:  "active_only",
			Value:    true,
			Operator: gDto.FilterOperatorEq,
		},
	)
}

func inRoom(table, roomID string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(table, model.FieldRoomID, roomID))
}

func byID(table, id string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(table, model.FieldID, id))
}

var (
	tablesOrder = gDto.QueryParams{SortBy: "type_id, table_number", SortDir: gDto.SortDirAsc}
	placedOrder = gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
)

func (r *repositoryImpl) GetLayout(ctx context.Context, roomID string) (res model.Layout, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".layout.GetLayout")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.RoomID = roomID

	if res.Tables, err = r.GetTables(ctx, roomID); err != nil {
		return res, err
	}

	if res.StaticItems, err = r.statics.GetAll(ctx, placedOrder, inRoom(model.TableNameStaticItems, roomID)); err != nil {
		return res, err //nolint:wrapcheck
	}

	if res.Walls, err = r.walls.GetAll(ctx, placedOrder, inRoom(model.TableNameWalls, roomID)); err != nil {
		return res, err //nolint:wrapcheck
	}

	return res, nil
}

// GetTables lists the active tables of a room.
func (r *repositoryImpl) GetTables(ctx context.Context, roomID string) ([]model.Table, error) {
	return r.tables.GetAll(ctx, tablesOrder, activeTables(roomID)) //nolint:wrapcheck
}

// GetTable returns the table even when it is no longer active.
func (r *repositoryImpl) GetTable(ctx context.Context, id string) (model.Table, error) {
	return r.tables.Get(ctx, byID(model.TableNameTables, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetStaticItem(ctx context.Context, id string) (model.StaticItem, error) {
	return r.statics.Get(ctx, byID(model.TableNameStaticItems, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetWall(ctx context.Context, id string) (model.Wall, error) {
	return r.walls.Get(ctx, byID(model.TableNameWalls, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertTable(ctx context.Context, table model.Table) error {
	return r.tables.Insert(ctx, table) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertStaticItem(ctx context.Context, item model.StaticItem) error {
	return r.statics.Insert(ctx, item) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertWall(ctx context.Context, wall model.Wall) error {
	return r.walls.Insert(ctx, wall) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateTable(ctx context.Context, id string, fields map[string]any) error {
	return r.tables.Update(ctx, fields, byID(model.TableNameTables, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStaticItem(ctx context.Context, id string, fields map[string]any) error {
	return r.statics.Update(ctx, fields, byID(model.TableNameStaticItems, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateWall(ctx context.Context, id string, fields map[string]any) error {
	return r.walls.Update(ctx, fields, byID(model.TableNameWalls, id)) //nolint:wrapcheck
}

// DeactivateTable hides the table from the layout. Reservations keep pointing at it.
func (r *repositoryImpl) DeactivateTable(ctx context.Context, id string, user string) error {
	return r.tables.Update(ctx, deactivation(user), byID(model.TableNameTables, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) DeleteStaticItem(ctx context.Context, id string) error {
	return r.statics.Delete(ctx, byID(model.TableNameStaticItems, id)) //nolint:wrapcheck
}

func (r *repositoryImpl) DeleteWall(ctx context.Context, id string) error {
	return r.walls.Delete(ctx, byID(model.TableNameWalls, id)) //nolint:wrapcheck
}

// ReplaceLayout swaps the room's layout in one transaction. Tables are matched
// by id and updated in place, new ones inserted, missing ones deactivated with
// their upcoming reservations moved to a remaining table that is free and
// seats the party (or cancelled when none is). Static items and walls are recreated.
func (r *repositoryImpl) ReplaceLayout(ctx context.Context, layout model.Layout, user string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".layout.ReplaceLayout")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.tables.RunInTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		existing, err := r.tables.LockTx(ctx, sqltx, activeTables(layout.RoomID))
		if err != nil {
			return err //nolint:wrapcheck
		}

		for i := range layout.Tables {
			if layout.Tables[i].ID == constant.Empty {
				layout.Tables[i].ID = uuid.NewString()
			}
		}

		plan := model.PlanReplacement(existing, layout.Tables)

		for _, table := range plan.Deactivate {
			if err := r.tables.UpdateTx(ctx, sqltx, deactivation(user), byID(model.TableNameTables, table.ID)); err != nil {
				return err //nolint:wrapcheck
			}
		}

		for _, table := range plan.Update {
			if err := r.tables.UpdateTx(ctx, sqltx, placement(table, user), byID(model.TableNameTables, table.ID)); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if len(plan.Insert) > 0 {
			if err := r.tables.InsertBulkTx(ctx, sqltx, plan.Insert); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if err := r.moveBookings(ctx, sqltx, plan.Deactivate, layout.Tables, user); err != nil {
			return err
		}

		if err := r.statics.DeleteTx(ctx, sqltx, inRoom(model.TableNameStaticItems, layout.RoomID)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := r.walls.DeleteTx(ctx, sqltx, inRoom(model.TableNameWalls, layout.RoomID)); err != nil {
			return err //nolint:wrapcheck
		}

		if len(layout.StaticItems) > 0 {
			if err := r.statics.InsertBulkTx(ctx, sqltx, layout.StaticItems); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if len(layout.Walls) > 0 {
			if err := r.walls.InsertBulkTx(ctx, sqltx, layout.Walls); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return nil
	})
}

// ClearLayout deactivates every table of the room and removes its static items and walls.
func (r *repositoryImpl) ClearLayout(ctx context.Context, roomID string, user string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".layout.ClearLayout")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.tables.RunInTx(ctx, func(ctx context.Context, sqltx *sqlx.Tx) error {
		if err := r.tables.UpdateTx(ctx, sqltx, deactivation(user), activeTables(roomID)); err != nil {
			return err //nolint:wrapcheck
		}

		if err := r.statics.DeleteTx(ctx, sqltx, inRoom(model.TableNameStaticItems, roomID)); err != nil {
			return err //nolint:wrapcheck
		}

		return r.walls.DeleteTx(ctx, sqltx, inRoom(model.TableNameWalls, roomID)) //nolint:wrapcheck
	})
}

func upcomingBookings(argName string, tableIDs []string) gDto.FilterGroup {
	return gDto.And(
		gDto.In(model.TableNameBookings, model.FieldTableID, argName, tableIDs),
		gDto.Filter{Table: model.TableNameBookings, Field: model.FieldStatus, Value: constant.ReservationStatusCancelled, Operator: gDto.FilterOperatorNotEq},
		gDto.Filter{Table: model.TableNameBookings, Field: model.FieldReservationDate, Value: timezone.Now().Format(constant.DayFormat), Operator: gDto.FilterOperatorGreaterEq},
	)
}

func tableIDs(tables []model.Table) []string {
	ids := make([]string, len(tables))
	for i, table := range tables {
		ids[i] = table.ID
	}

	return ids
}

// moveBookings relocates upcoming reservations of removed tables onto remaining
// tables that seat the party and are free at that time, cancelling the rest.
func (r *repositoryImpl) moveBookings(ctx context.Context, sqltx *sqlx.Tx, removed, remaining []model.Table, user string) error {
	if len(removed) == 0 {
		return nil
	}

	moving, err := r.bookings.LockTx(ctx, sqltx, upcomingBookings("removed_ids", tableIDs(removed)))
	if err != nil {
		return fmt.Errorf("failed to lock reservations of removed tables: %w", err)
	}

	if len(moving) == 0 {
		return nil
	}

	held := []model.Booking{}

	if len(remaining) > 0 {
		if held, err = r.bookings.LockTx(ctx, sqltx, upcomingBookings("remaining_ids", tableIDs(remaining))); err != nil {
			return fmt.Errorf("failed to lock reservations of remaining tables: %w", err)
		}
	}

	for _, move := range model.Relocate(moving, held, remaining) {
		fields := map[string]any{
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if move.Cancelled {
			fields[model.FieldStatus] = constant.ReservationStatusCancelled
		} else {
			fields[model.FieldTableID] = move.To.ID
		}

		if err := r.bookings.UpdateTx(ctx, sqltx, fields, byID(model.TableNameBookings, move.Booking.ID)); err != nil {
			return err //nolint:wrapcheck
		}

		log.Info().
			Str("reservation_id", move.Booking.ID).
			Str("from_table", move.Booking.TableID).
			Str("to_table", move.To.ID).
			Bool("cancelled", move.Cancelled).
			Msg("reservation moved off a removed table")
	}

	return nil
}

func deactivation(user string) map[string]any {
	return map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}

func placement(table model.Table, user string) map[string]any {
	return map[string]any{
		model.FieldTypeID:        table.TypeID,
		model.FieldTableNumber:   table.TableNumber,
		model.FieldMaxGuests:     table.MaxGuests,
		model.FieldX:             table.X,
		model.FieldY:             table.Y,
		model.FieldRotation:      table.Rotation,
		model.FieldWidth:         table.Width,
		model.FieldHeight:        table.Height,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}
}
