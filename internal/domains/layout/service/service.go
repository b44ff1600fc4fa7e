package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"pureheart/config"
	"pureheart/infras/otel"
	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/layout/editor"
	"pureheart/internal/domains/layout/model"
	"pureheart/internal/domains/layout/model/dto"
	"pureheart/internal/domains/layout/repository"
	roomService "pureheart/internal/domains/room/service"
	"pureheart/shared"
	"pureheart/shared/cache"
	"pureheart/shared/constant"
	"pureheart/shared/failure"
	gRepo "pureheart/shared/repository"
	"pureheart/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetLayout = constant.CachePrefixLayout + ":get"

	maxPreviewScale = 200
)

type Layout interface {
	Get(ctx context.Context, roomID string) (dto.LayoutResponse, error)
	Preview(ctx context.Context, roomID string, scale int) (dto.PreviewResponse, error)
	CreateTable(ctx context.Context, req dto.CreateTableRequest) (dto.TableResponse, error)
	CreateStaticItem(ctx context.Context, req dto.CreateStaticItemRequest) (dto.StaticItemResponse, error)
	CreateWall(ctx context.Context, req dto.CreateWallRequest) (dto.WallResponse, error)
	DrawWall(ctx context.Context, req dto.DrawWallRequest) (dto.WallResponse, error)
	MoveItem(ctx context.Context, id string, req dto.MoveItemRequest) (dto.ItemResponse, error)
	RotateItem(ctx context.Context, id string) (dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error
	Save(ctx context.Context, req dto.SaveLayoutRequest) (dto.LayoutResponse, error)
	Clear(ctx context.Context, roomID string, confirm bool) (dto.LayoutResponse, error)
}

type serviceImpl struct {
	repo  repository.Layout
	rooms roomService.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Layout, rooms roomService.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Layout {
	return &serviceImpl{
		repo:  repo,
		rooms: rooms,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// placed is an item located by id together with the room that holds it.
type placed struct {
	item   editor.Item
	roomID string
}

func (s *serviceImpl) Get(ctx context.Context, roomID string) (res dto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Resolve(ctx, roomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetLayout, room.ID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for layout")

		return res, nil
	}

	layout, err := s.repo.GetLayout(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get layout")

		return res, fmt.Errorf("failed to get layout: %w", err)
	}

	res.FromModel(layout)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save layout to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Preview(ctx context.Context, roomID string, scale int) (res dto.PreviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Preview")
	defer scope.End()
	defer scope.TraceIfError(err)

	if scale <= 0 {
		scale = furniture.DefaultPreviewScale
	}

	if scale > maxPreviewScale {
		return res, failure.BadRequestf("scale must not exceed %d", maxPreviewScale) // nolint:wrapcheck
	}

	session, err := s.session(ctx, roomID)
	if err != nil {
		return res, err
	}

	res.RoomID = session.RoomID()
	res.Scale = scale
	res.Preview = session.Preview(scale)

	return res, nil
}

func (s *serviceImpl) CreateTable(ctx context.Context, req dto.CreateTableRequest) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateTable")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	kind, ok := furniture.KindByTypeID(req.TypeID)
	if !ok {
		return res, failure.BadRequestf("unknown table type %d", req.TypeID) // nolint:wrapcheck
	}

	session, err := s.session(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	draft, err := session.AddTable(kind)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	item := req.Apply(draft)

	for _, table := range session.Tables() {
		if table.Kind == kind && table.TableNumber == item.TableNumber {
			return res, failure.Conflict(fmt.Sprintf("%s is already placed", item.Label())) // nolint:wrapcheck
		}
	}

	table := req.ToModel(session.RoomID(), item, user)

	if err = s.repo.InsertTable(ctx, table); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("%s is already placed", item.Label())) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create table")

		return res, fmt.Errorf("failed to create table: %w", err)
	}

	session.Merge(table.Item())
	res.FromModel(table)
	s.invalidate(ctx, session.RoomID())

	return res, nil
}

func (s *serviceImpl) CreateStaticItem(ctx context.Context, req dto.CreateStaticItemRequest) (res dto.StaticItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateStaticItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.rooms.Resolve(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	draft, err := editor.NewSession(room.ID).AddStaticItem(furniture.Kind(req.Type))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	item := req.ToModel(room.ID, req.Apply(draft), user)

	if err = s.repo.InsertStaticItem(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create static item")

		return res, fmt.Errorf("failed to create static item: %w", err)
	}

	res.FromModel(item)
	s.invalidate(ctx, room.ID)

	return res, nil
}

func (s *serviceImpl) CreateWall(ctx context.Context, req dto.CreateWallRequest) (res dto.WallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWall")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Resolve(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	item := editor.NewSession(room.ID).AddWall(req.X, req.Y, req.Rotation, req.Length)

	return s.insertWall(ctx, room.ID, item)
}

// DrawWall runs one drag through the wall drawer: armed, pressed at start,
// dragged and released at end. Short or zero-length drags are rejected.
func (s *serviceImpl) DrawWall(ctx context.Context, req dto.DrawWallRequest) (res dto.WallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DrawWall")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Resolve(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	session := editor.NewSession(room.ID)
	drawer := session.Drawer()

	drawer.Toggle()
	drawer.PointerDown(req.Start.X, req.Start.Y)
	drawer.PointerMove(req.End.X, req.End.Y)

	wall, ok := drawer.PointerUp(req.End.X, req.End.Y)
	if !ok {
		return res, failure.BadRequestf("wall must be at least %d long", editor.MinWallLength) // nolint:wrapcheck
	}

	return s.insertWall(ctx, room.ID, session.AddWall(wall.X, wall.Y, wall.Rotation, wall.Length))
}

func (s *serviceImpl) insertWall(ctx context.Context, roomID string, item editor.Item) (res dto.WallResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	wall := dto.WallModel(roomID, item, user)

	if err = s.repo.InsertWall(ctx, wall); err != nil {
		log.Error().Err(err).Msg("failed to create wall")

		return res, fmt.Errorf("failed to create wall: %w", err)
	}

	res.FromModel(wall)
	s.invalidate(ctx, roomID)

	return res, nil
}

func (s *serviceImpl) MoveItem(ctx context.Context, id string, req dto.MoveItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MoveItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(session *editor.Session) (editor.Item, bool) {
		return session.MoveItem(id, req.DX, req.DY)
	})
}

func (s *serviceImpl) RotateItem(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RotateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.change(ctx, id, func(session *editor.Session) (editor.Item, bool) {
		return session.RotateItem(id)
	})
}

// change applies an editor mutation, persists the pending item and confirms it,
// or reverts to the stored copy when the write fails.
func (s *serviceImpl) change(ctx context.Context, id string, mutate func(*editor.Session) (editor.Item, bool)) (res dto.ItemResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	found, err := s.locate(ctx, id)
	if err != nil {
		return res, err
	}

	session := editor.NewSession(found.roomID)
	session.Load(found.item)

	item, ok := mutate(session)
	if !ok {
		return res, failure.NotFound("item not found") // nolint:wrapcheck
	}

	if err = s.persist(ctx, item, user); err != nil {
		reverted, _ := session.Revert(id)
		log.Error().Err(err).Str("id", id).Interface("position", reverted.Position).Msg("failed to save item, reverted")

		return res, fmt.Errorf("failed to save item: %w", err)
	}

	session.Confirm(id, item)
	confirmed, _ := session.Item(id)

	res.FromItem(confirmed)
	s.invalidate(ctx, found.roomID)

	return res, nil
}

func (s *serviceImpl) persist(ctx context.Context, item editor.Item, user string) error {
	fields := map[string]any{
		model.FieldX:             item.Position.X,
		model.FieldY:             item.Position.Y,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	switch item.Family() {
	case furniture.FamilyTable:
		fields[model.FieldRotation] = int(item.Rotation)

		return s.repo.UpdateTable(ctx, item.ID, fields) //nolint:wrapcheck
	case furniture.FamilyWall:
		fields[model.FieldRotation] = item.Rotation

		return s.repo.UpdateWall(ctx, item.ID, fields) //nolint:wrapcheck
	default:
		fields[model.FieldRotation] = int(item.Rotation)

		return s.repo.UpdateStaticItem(ctx, item.ID, fields) //nolint:wrapcheck
	}
}

// DeleteItem removes static items and walls; tables are deactivated so their
// reservations stay readable.
func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	found, err := s.locate(ctx, id)
	if err != nil {
		return err
	}

	switch found.item.Family() {
	case furniture.FamilyTable:
		err = s.repo.DeactivateTable(ctx, id, user)
	case furniture.FamilyWall:
		err = s.repo.DeleteWall(ctx, id)
	default:
		err = s.repo.DeleteStaticItem(ctx, id)
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.invalidate(ctx, found.roomID)

	return nil
}

func (s *serviceImpl) Save(ctx context.Context, req dto.SaveLayoutRequest) (res dto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.rooms.Resolve(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	layout := req.ToModel(room.ID, user)

	if err = model.CheckNumbers(layout.Tables); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.ReplaceLayout(ctx, layout, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("table numbers collide with the stored layout") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to save layout")

		return res, fmt.Errorf("failed to save layout: %w", err)
	}

	s.invalidate(ctx, room.ID)

	saved, err := s.repo.GetLayout(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload layout")

		return res, fmt.Errorf("failed to reload layout: %w", err)
	}

	res.FromModel(saved)

	return res, nil
}

func (s *serviceImpl) Clear(ctx context.Context, roomID string, confirm bool) (res dto.LayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !confirm {
		return res, failure.ConfirmationRequired
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.rooms.Resolve(ctx, roomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.ClearLayout(ctx, room.ID, user); err != nil {
		log.Error().Err(err).Msg("failed to clear layout")

		return res, fmt.Errorf("failed to clear layout: %w", err)
	}

	log.Info().Str("room_id", room.ID).Str("user", user).Msg("layout cleared")
	s.invalidate(ctx, room.ID)

	res.FromModel(model.Layout{RoomID: room.ID})

	return res, nil
}

// session loads the room's stored layout into a fresh editor session.
func (s *serviceImpl) session(ctx context.Context, roomID string) (*editor.Session, error) {
	room, err := s.rooms.Resolve(ctx, roomID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	layout, err := s.repo.GetLayout(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get layout")

		return nil, fmt.Errorf("failed to get layout: %w", err)
	}

	session := editor.NewSession(room.ID)
	session.Load(layout.Items()...)

	return session, nil
}

// locate finds an active table, static item or wall by id.
func (s *serviceImpl) locate(ctx context.Context, id string) (placed, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return placed{}, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID != constant.Empty && table.IsActive {
		return placed{item: table.Item(), roomID: table.RoomID}, nil
	}

	item, err := s.repo.GetStaticItem(ctx, id)
	if err != nil {
		return placed{}, fmt.Errorf("failed to get static item: %w", err)
	}

	if item.ID != constant.Empty {
		return placed{item: item.Item(), roomID: item.RoomID}, nil
	}

	wall, err := s.repo.GetWall(ctx, id)
	if err != nil {
		return placed{}, fmt.Errorf("failed to get wall: %w", err)
	}

	if wall.ID != constant.Empty {
		return placed{item: wall.Item(), roomID: wall.RoomID}, nil
	}

	log.Debug().Str("id", id).Msg("layout item not found")

	return placed{}, failure.NotFound("item not found") // nolint:wrapcheck
}

func (s *serviceImpl) invalidate(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetLayout, roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete layout from cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixAvailability)
	}()
}
