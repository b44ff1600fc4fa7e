package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pureheart/config"
	"pureheart/infras/otel"
	"pureheart/internal/domains/furniture"
	layoutModel "pureheart/internal/domains/layout/model"
	layoutRepo "pureheart/internal/domains/layout/repository"
	"pureheart/internal/domains/reservation/availability"
	"pureheart/internal/domains/reservation/event"
	"pureheart/internal/domains/reservation/model"
	"pureheart/internal/domains/reservation/model/dto"
	"pureheart/internal/domains/reservation/policy"
	"pureheart/internal/domains/reservation/repository"
	roomService "pureheart/internal/domains/room/service"
	"pureheart/shared"
	"pureheart/shared/cache"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	"pureheart/shared/failure"
	"pureheart/shared/timezone"

	"github.com/rs/zerolog/log"
)

var sortable = []string{
	model.FieldReservationDate,
	model.FieldStartHour,
	model.FieldStatus,
	model.FieldGuestsCount,
	constant.FieldCreatedAt,
}

type Reservation interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Slots(ctx context.Context, req dto.SlotsRequest) (dto.SlotsResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, date string) (dto.GetReservationsResponse, error)
	Update(ctx context.Context, req dto.CreateReservationRequest, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.ReservationResponse, error)
}

type serviceImpl struct {
	repo      repository.Reservation
	tables    layoutRepo.Layout
	rooms     roomService.Room
	publisher event.Publisher
	policy    policy.Policy
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	now       func() time.Time
}

func New(
	repo repository.Reservation,
	tables layoutRepo.Layout,
	rooms roomService.Room,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		tables:    tables,
		rooms:     rooms,
		publisher: publisher,
		policy:    policy.New(cfg),
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		now:       timezone.Now,
	}
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.now()

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if req.Duration == 0 {
		req.Duration = 1
	}

	if err = errors.Join(s.policy.ValidateDate(date, now), s.policy.ValidateDuration(req.Duration)); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	var startHour *int

	if req.Time != constant.Empty {
		hour, err := dto.ParseHour(req.Time)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		if err := s.policy.ValidateSlot(date, hour, req.Duration, now); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		startHour = &hour
	}

	room, err := s.rooms.Resolve(ctx, req.RoomID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CachePrefixAvailability, room.ID, req.Date, req.Time, strconv.Itoa(req.Duration), req.Exclude)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	tables, err := s.tables.GetTables(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	booked, err := s.repo.GetByDate(ctx, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	results := availability.Check(toAvailability(tables), model.Bookings(booked), availability.Query{
		Date:       date,
		StartHour:  startHour,
		Duration:   req.Duration,
		ExcludeID:  req.Exclude,
		Candidates: s.policy.Slots(date, req.Duration, now),
	})

	res = dto.AvailabilityResponse{
		RoomID:   room.ID,
		Date:     req.Date,
		Time:     req.Time,
		Duration: req.Duration,
		Tables:   make([]dto.TableAvailabilityResponse, len(results)),
	}

	for i, result := range results {
		res.Tables[i].FromResult(result, tables[i].TypeID)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Reservation.AvailabilityCacheTTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// Slots lists the start hours for the selection, rolling to the next day when
// none is left on the requested one.
func (s *serviceImpl) Slots(ctx context.Context, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Slots")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.now()

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	sel := policy.Selection{Date: date, StartHour: -1, Duration: req.Duration}

	if req.Time != constant.Empty {
		if sel.StartHour, err = dto.ParseHour(req.Time); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	resolved := s.policy.Resolve(sel, now)

	return dto.SlotsResponse{
		Date:     resolved.Date.Format(constant.DayFormat),
		Time:     dto.FormatHour(resolved.StartHour),
		Duration: resolved.Duration,
		Slots:    dto.FormatHours(s.policy.Slots(resolved.Date, resolved.Duration, now)),
		Rolled:   !timezone.SameDay(resolved.Date, date),
	}, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.now()

	booking, table, err := s.check(ctx, req, now)
	if err != nil {
		return res, err
	}

	reservation := req.ToModel(booking, user)

	if err = s.book(ctx, table, booking, reservation, func(guard repository.Guard) error {
		return s.repo.Book(ctx, reservation, guard)
	}); err != nil {
		return res, err
	}

	log.Info().Str("reservation_id", reservation.ID).Str("table_id", table.ID).Msg("reservation created")

	res.FromModel(reservation, s.policy, now)
	s.publish(ctx, event.TypeCreated, reservation)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation, s.policy, s.now())

	return res, nil
}

// GetAll pages through reservations, optionally of one date.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, date string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	if date != constant.Empty {
		if _, err = dto.ParseDate(date); err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		filter = gDto.And(gDto.Eq(model.TableName, model.FieldReservationDate, date))
	}

	req.RestrictSort(model.FieldReservationDate+", "+model.FieldStartHour, sortable...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit, s.policy, s.now())

	return res, nil
}

// Update rebooks a reservation with new values. It is refused inside the
// modification lead time and the reservation never conflicts with itself.
func (s *serviceImpl) Update(ctx context.Context, req dto.CreateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.now()

	existing, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if existing.IsCancelled() {
		return res, failure.Conflict("cancelled reservations cannot be changed") // nolint:wrapcheck
	}

	if !s.policy.CanModify(existing.Start(), now) {
		return res, failure.BadRequestf("reservations can only be changed more than %s before the start", hours(s.policy.ModifyLead)) // nolint:wrapcheck
	}

	booking, table, err := s.check(ctx, req, now)
	if err != nil {
		return res, err
	}

	updated := req.ToModel(booking, user)
	updated.ID = existing.ID
	updated.Status = existing.Status
	updated.Metadata = existing.Metadata
	updated.ModifiedBy = user
	updated.ModifiedAt = now

	if err = s.book(ctx, table, booking, updated, func(guard repository.Guard) error {
		return s.repo.Rebook(ctx, updated, user, guard)
	}); err != nil {
		return res, err
	}

	log.Info().Str("reservation_id", id).Str("table_id", table.ID).Msg("reservation updated")

	res.FromModel(updated, s.policy, now)
	s.publish(ctx, event.TypeUpdated, updated)
	s.invalidate(ctx)

	return res, nil
}

// Cancel marks the reservation cancelled, freeing its table. It is refused
// inside the cancellation lead time.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if reservation.IsCancelled() {
		return failure.Conflict("reservation is already cancelled") // nolint:wrapcheck
	}

	if !s.policy.CanCancel(reservation.Start(), s.now()) {
		return failure.BadRequestf("reservations can only be cancelled more than %s before the start", hours(s.policy.CancelLead)) // nolint:wrapcheck
	}

	if err = s.repo.UpdateStatus(ctx, id, constant.ReservationStatusCancelled, user); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = constant.ReservationStatusCancelled

	s.publish(ctx, event.TypeCancelled, reservation)
	s.invalidate(ctx)

	return nil
}

// UpdateStatus is the staff transition between pending, confirmed and cancelled.
// Lead times do not apply; a cancelled reservation stays cancelled.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if reservation.IsCancelled() && req.Status != constant.ReservationStatusCancelled {
		return res, failure.Conflict("cancelled reservations cannot be restored") // nolint:wrapcheck
	}

	if reservation.Status != req.Status {
		if err = s.repo.UpdateStatus(ctx, id, req.Status, user); err != nil {
			log.Error().Err(err).Msg("failed to update reservation status")

			return res, fmt.Errorf("failed to update reservation status: %w", err)
		}

		reservation.Status = req.Status

		s.publish(ctx, event.TypeStatusChanged, reservation)
		s.invalidate(ctx)
	}

	res.FromModel(reservation, s.policy, s.now())

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// check parses the request and validates it against the table it names.
func (s *serviceImpl) check(ctx context.Context, req dto.CreateReservationRequest, now time.Time) (policy.Request, layoutModel.Table, error) {
	booking, err := req.ToPolicy()
	if err != nil {
		return booking, layoutModel.Table{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	table, err := s.tables.GetTable(ctx, req.TableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return booking, table, fmt.Errorf("failed to get table: %w", err)
	}

	if table.ID == constant.Empty || !table.IsActive {
		return booking, table, failure.NotFound("table not found or inactive") // nolint:wrapcheck
	}

	if err = s.policy.Validate(booking, table.MaxGuests, now); err != nil {
		return booking, table, err //nolint:wrapcheck
	}

	return booking, table, nil
}

// book runs write with a guard that re-checks the table under its row lock.
func (s *serviceImpl) book(ctx context.Context, table layoutModel.Table, booking policy.Request, reservation model.Reservation, write func(repository.Guard) error) error {
	hour := booking.StartHour
	query := availability.Query{
		Date:      booking.Date,
		StartHour: &hour,
		Duration:  booking.Duration,
		ExcludeID: reservation.ID,
	}

	guard := func(booked []model.Reservation) error {
		result := availability.Check(toAvailability([]layoutModel.Table{table}), model.Bookings(booked), query)
		if len(result) == 1 && result[0].Available {
			return nil
		}

		if table.Kind() == furniture.KindBanquet {
			return failure.Conflict("the banquet hall is already booked on this date") // nolint:wrapcheck
		}

		return failure.Conflict("the table is already booked for this time") // nolint:wrapcheck
	}

	err := write(guard)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrTableUnavailable):
		return failure.NotFound("table not found or inactive") // nolint:wrapcheck
	case failure.HasCode(err, http.StatusConflict):
		log.Info().Str("table_id", table.ID).Str("date", reservation.Day()).Int("start_hour", hour).Msg("booking conflict")

		return err
	default:
		log.Error().Err(err).Msg("failed to save reservation")

		return fmt.Errorf("failed to save reservation: %w", err)
	}
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, reservation model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.Publish(c, event.New(eventType, reservation)); err != nil {
			log.Error().Err(err).Str("type", eventType).Str("reservation_id", reservation.ID).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixAvailability)
	}()
}

func toAvailability(tables []layoutModel.Table) []availability.Table {
	res := make([]availability.Table, len(tables))
	for i, t := range tables {
		res[i] = availability.Table{
			ID:          t.ID,
			Kind:        t.Kind(),
			TableNumber: t.TableNumber,
			MaxGuests:   t.MaxGuests,
		}
	}

	return res
}

func hours(d time.Duration) string {
	return fmt.Sprintf("%d hours", int(d.Hours()))
}
