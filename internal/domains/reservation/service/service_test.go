package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pureheart/config"
	"pureheart/infras/otel/mocks"
	layoutMocks "pureheart/internal/domains/layout/mocks"
	layoutModel "pureheart/internal/domains/layout/model"
	"pureheart/internal/domains/reservation/event"
	reservationMocks "pureheart/internal/domains/reservation/mocks"
	"pureheart/internal/domains/reservation/model"
	"pureheart/internal/domains/reservation/model/dto"
	"pureheart/internal/domains/reservation/repository"
	"pureheart/internal/domains/reservation/service"
	roomDto "pureheart/internal/domains/room/model/dto"
	roomMocks "pureheart/internal/domains/room/service/mocks"
	cacheMocks "pureheart/shared/cache/mocks"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	"pureheart/shared/failure"
	"pureheart/shared/timezone"
)

const roomID = "5b0e8a39-4f53-4d5b-9a36-0f4f4c1f5f10"

var (
	circular = layoutModel.Table{ID: "11111111-1111-4111-8111-111111111111", RoomID: roomID, TypeID: 1, TableNumber: 1, MaxGuests: 2, IsActive: true}
	rect     = layoutModel.Table{ID: "33333333-3333-4333-8333-333333333333", RoomID: roomID, TypeID: 3, TableNumber: 1, MaxGuests: 10, IsActive: true}
	banquet  = layoutModel.Table{ID: "55555555-5555-4555-8555-555555555555", RoomID: roomID, TypeID: 5, TableNumber: 1, MaxGuests: 25, IsActive: true}
)

type fixture struct {
	svc       service.Reservation
	repo      *reservationMocks.MockReservation
	tables    *layoutMocks.MockLayout
	rooms     *roomMocks.MockRoom
	publisher *reservationMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

// at is the given hour of a March 2026 day in restaurant time.
func at(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, timezone.GetLocation())
}

func calendar(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func newFixture(t *testing.T, now time.Time) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      reservationMocks.NewMockReservation(ctrl),
		tables:    layoutMocks.NewMockLayout(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		publisher: reservationMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Reservation.AvailabilityCacheTTL = 30

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.rooms.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(roomDto.RoomResponse{ID: roomID}, nil).AnyTimes()

	f.svc = service.New(f.repo, f.tables, f.rooms, f.publisher, cfg, f.cache, mocks.NewOtel())
	service.SetClock(f.svc, now)

	return f
}

func booking(id string, table layoutModel.Table, day, hour, duration int) model.Reservation {
	return model.Reservation{
		ID:              id,
		TableID:         table.ID,
		ReservationDate: calendar(day),
		StartHour:       hour,
		Duration:        duration,
		GuestsCount:     2,
		FirstName:       "Anna",
		Phone:           "79161234567",
		Status:          constant.ReservationStatusPending,
	}
}

func validRequest(table layoutModel.Table) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		TableID:         table.ID,
		ReservationDate: "2026-03-11",
		ReservationTime: "19:00",
		Duration:        2,
		GuestsCount:     2,
		FirstName:       "Anna",
		LastName:        "Petrova",
		Phone:           "+7 (916) 123-45-67",
	}
}

func expectPublish(t *testing.T, f fixture, eventType string) {
	t.Helper()

	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, evt event.Event) error {
		assert.Equal(t, eventType, evt.Type)
		assert.Equal(t, "2026-03-11", evt.Date)

		return nil
	}).Times(1)
}

func TestReservationService_Availability(t *testing.T) {
	booked := []model.Reservation{
		booking("a", circular, 11, 18, 2),
		booking("b", banquet, 11, 12, 1),
	}

	t.Run("fixed start hour", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.tables.EXPECT().GetTables(gomock.Any(), roomID).Return([]layoutModel.Table{circular, rect, banquet}, nil)
		f.repo.EXPECT().GetByDate(gomock.Any(), "2026-03-11").Return(booked, nil)

		res, err := f.svc.Availability(context.Background(), dto.AvailabilityRequest{Date: "2026-03-11", Time: "19:00", Duration: 2})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, roomID, res.RoomID)
		require.Len(t, res.Tables, 3)

		assert.False(t, res.Tables[0].Available)
		assert.True(t, res.Tables[1].Available)
		assert.Equal(t, "Rectangular table №1", res.Tables[1].Label)
		assert.Equal(t, 5, res.Tables[1].MinGuests)
		assert.Equal(t, 10, res.Tables[1].MaxGuests)
		assert.False(t, res.Tables[2].Available, "a booked banquet hall is closed all day")
	})

	t.Run("edited reservation does not block itself", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.tables.EXPECT().GetTables(gomock.Any(), roomID).Return([]layoutModel.Table{circular}, nil)
		f.repo.EXPECT().GetByDate(gomock.Any(), "2026-03-11").Return(booked, nil)

		res, err := f.svc.Availability(context.Background(), dto.AvailabilityRequest{Date: "2026-03-11", Time: "19:00", Duration: 1, Exclude: "a"})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.True(t, res.Tables[0].Available)
	})

	t.Run("without start hour lists free times", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.tables.EXPECT().GetTables(gomock.Any(), roomID).Return([]layoutModel.Table{circular, banquet}, nil)
		f.repo.EXPECT().GetByDate(gomock.Any(), "2026-03-11").Return(booked, nil)

		res, err := f.svc.Availability(context.Background(), dto.AvailabilityRequest{Date: "2026-03-11"})

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Duration)
		assert.True(t, res.Tables[0].Available)
		assert.Contains(t, res.Tables[0].AvailableTimes, "17:00")
		assert.NotContains(t, res.Tables[0].AvailableTimes, "18:00")
		assert.NotContains(t, res.Tables[0].AvailableTimes, "19:00")
		assert.Contains(t, res.Tables[0].AvailableTimes, "20:00")
		assert.False(t, res.Tables[1].Available)
		assert.Empty(t, res.Tables[1].AvailableTimes)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.cache.EXPECT().Get(gomock.Any(), "reservation:availability:"+roomID+":2026-03-11:19:00:1:", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*(dest.(*dto.AvailabilityResponse)) = dto.AvailabilityResponse{RoomID: roomID, Date: "2026-03-11"}

				return nil
			})

		res, err := f.svc.Availability(context.Background(), dto.AvailabilityRequest{Date: "2026-03-11", Time: "19:00"})

		require.NoError(t, err)
		assert.Equal(t, "2026-03-11", res.Date)
	})

	invalid := []struct {
		name string
		req  dto.AvailabilityRequest
	}{
		{name: "malformed date", req: dto.AvailabilityRequest{Date: "11.03.2026"}},
		{name: "past date", req: dto.AvailabilityRequest{Date: "2026-03-09"}},
		{name: "beyond booking horizon", req: dto.AvailabilityRequest{Date: "2026-03-30"}},
		{name: "duration too long", req: dto.AvailabilityRequest{Date: "2026-03-11", Duration: 7}},
		{name: "not a full hour", req: dto.AvailabilityRequest{Date: "2026-03-11", Time: "19:30"}},
		{name: "ends after closing", req: dto.AvailabilityRequest{Date: "2026-03-11", Time: "23:00", Duration: 2}},
		{name: "hour already passed today", req: dto.AvailabilityRequest{Date: "2026-03-10", Time: "10:00"}},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at(10, 10))

			_, err := f.svc.Availability(context.Background(), tt.req)

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestReservationService_Slots(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		req  dto.SlotsRequest
		want dto.SlotsResponse
	}{
		{
			name: "today keeps upcoming hours",
			now:  at(10, 20),
			req:  dto.SlotsRequest{Date: "2026-03-10", Duration: 2},
			want: dto.SlotsResponse{Date: "2026-03-10", Time: "21:00", Duration: 2, Slots: []string{"21:00", "22:00"}},
		},
		{
			name: "selected hour is kept",
			now:  at(10, 10),
			req:  dto.SlotsRequest{Date: "2026-03-12", Time: "18:00", Duration: 3},
			want: dto.SlotsResponse{
				Date: "2026-03-12", Time: "18:00", Duration: 3,
				Slots: []string{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00"},
			},
		},
		{
			name: "late evening rolls to tomorrow",
			now:  at(10, 23),
			req:  dto.SlotsRequest{Date: "2026-03-10", Time: "23:00", Duration: 2},
			want: dto.SlotsResponse{
				Date: "2026-03-11", Time: "12:00", Duration: 1, Rolled: true,
				Slots: []string{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00", "21:00", "22:00", "23:00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)

			res, err := f.svc.Slots(context.Background(), tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}

	t.Run("malformed time", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		_, err := f.svc.Slots(context.Background(), dto.SlotsRequest{Date: "2026-03-11", Time: "7pm"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "booked",
			req:  validRequest(circular),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
				f.repo.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r model.Reservation, guard repository.Guard) error {
						assert.Equal(t, "2026-03-11", r.Day())
						assert.Equal(t, 19, r.StartHour)
						assert.Equal(t, "79161234567", r.Phone)
						assert.Equal(t, constant.ReservationStatusPending, r.Status)

						return guard([]model.Reservation{booking("early", circular, 11, 17, 2)})
					})
				expectPublish(t, f, event.TypeCreated)
			},
		},
		{
			name: "overlapping booking",
			req:  validRequest(circular),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
				f.repo.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Reservation, guard repository.Guard) error {
						return guard([]model.Reservation{booking("late", circular, 11, 20, 1)})
					})
			},
			wantCode: http.StatusConflict,
			wantMsg:  "the table is already booked for this time",
		},
		{
			name: "banquet hall taken earlier that day",
			req: func() dto.CreateReservationRequest {
				req := validRequest(banquet)
				req.GuestsCount = 20

				return req
			}(),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), banquet.ID).Return(banquet, nil)
				f.repo.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Reservation, guard repository.Guard) error {
						return guard([]model.Reservation{booking("lunch", banquet, 11, 12, 1)})
					})
			},
			wantCode: http.StatusConflict,
			wantMsg:  "the banquet hall is already booked on this date",
		},
		{
			name: "inactive table",
			req:  validRequest(circular),
			setupMock: func(f fixture) {
				inactive := circular
				inactive.IsActive = false
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(inactive, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "table removed before the lock",
			req:  validRequest(circular),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
				f.repo.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrTableUnavailable)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "too many guests",
			req: func() dto.CreateReservationRequest {
				req := validRequest(circular)
				req.GuestsCount = 5

				return req
			}(),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "too few guests for a large table",
			req: func() dto.CreateReservationRequest {
				req := validRequest(rect)
				req.GuestsCount = 4

				return req
			}(),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), rect.ID).Return(rect, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "quarter past is not bookable",
			req: func() dto.CreateReservationRequest {
				req := validRequest(circular)
				req.ReservationTime = "19:15"

				return req
			}(),
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database failure",
			req:  validRequest(circular),
			setupMock: func(f fixture) {
				f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
				f.repo.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, at(10, 10))
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "19:00", res.ReservationTime)
			assert.Equal(t, "21:00", res.EndTime)
			assert.Equal(t, "+7 (916) 123-45-67", res.Phone)
			assert.True(t, res.CanModify)
			assert.True(t, res.CanCancel)
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	existing := booking("r1", circular, 11, 18, 2)

	t.Run("moves within its own slot", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(existing, nil)
		f.tables.EXPECT().GetTable(gomock.Any(), circular.ID).Return(circular, nil)
		f.repo.EXPECT().Rebook(gomock.Any(), gomock.Any(), "staff", gomock.Any()).
			DoAndReturn(func(_ context.Context, r model.Reservation, _ string, guard repository.Guard) error {
				assert.Equal(t, "r1", r.ID)
				assert.Equal(t, 19, r.StartHour)

				return guard([]model.Reservation{existing})
			})
		expectPublish(t, f, event.TypeUpdated)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff")
		res, err := f.svc.Update(ctx, validRequest(circular), "r1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "r1", res.ID)
		assert.Equal(t, constant.ReservationStatusPending, res.Status)
	})

	t.Run("inside the modification lead time", func(t *testing.T) {
		f := newFixture(t, at(11, 16))

		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(existing, nil)

		_, err := f.svc.Update(context.Background(), validRequest(circular), "r1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "3 hours")
	})

	t.Run("cancelled", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		cancelled := existing
		cancelled.Status = constant.ReservationStatusCancelled
		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(cancelled, nil)

		_, err := f.svc.Update(context.Background(), validRequest(circular), "r1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Reservation{}, nil)

		_, err := f.svc.Update(context.Background(), validRequest(circular), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReservationService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		existing  model.Reservation
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:     "well ahead",
			now:      at(10, 10),
			existing: booking("r1", circular, 11, 19, 2),
			setupMock: func(f fixture) {
				f.repo.EXPECT().UpdateStatus(gomock.Any(), "r1", constant.ReservationStatusCancelled, gomock.Any()).Return(nil)
				expectPublish(t, f, event.TypeCancelled)
			},
		},
		{
			name:      "five hours before the start",
			now:       at(11, 14),
			existing:  booking("r1", circular, 11, 19, 2),
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "already cancelled",
			now:  at(10, 10),
			existing: func() model.Reservation {
				r := booking("r1", circular, 11, 19, 2)
				r.Status = constant.ReservationStatusCancelled

				return r
			}(),
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.now)

			f.repo.EXPECT().Get(gomock.Any(), "r1").Return(tt.existing, nil)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), "r1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	t.Run("confirm", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(booking("r1", circular, 11, 19, 2), nil)
		f.repo.EXPECT().UpdateStatus(gomock.Any(), "r1", constant.ReservationStatusConfirmed, gomock.Any()).Return(nil)
		expectPublish(t, f, event.TypeStatusChanged)

		res, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: constant.ReservationStatusConfirmed}, "r1")

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, constant.ReservationStatusConfirmed, res.Status)
	})

	t.Run("unchanged status writes nothing", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(booking("r1", circular, 11, 19, 2), nil)

		res, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: constant.ReservationStatusPending}, "r1")

		require.NoError(t, err)
		assert.Equal(t, constant.ReservationStatusPending, res.Status)
	})

	t.Run("cancelled cannot be restored", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		cancelled := booking("r1", circular, 11, 19, 2)
		cancelled.Status = constant.ReservationStatusCancelled
		f.repo.EXPECT().Get(gomock.Any(), "r1").Return(cancelled, nil)

		_, err := f.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: constant.ReservationStatusConfirmed}, "r1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestReservationService_GetAll(t *testing.T) {
	t.Run("by date", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Reservation, error) {
				assert.Equal(t, "reservation_date, start_hour", params.SortBy)

				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "reservation_date")
				assert.Contains(t, args, "reservation_date")

				return []model.Reservation{booking("r1", circular, 11, 19, 2)}, nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "phone; DROP TABLE"}, "2026-03-11")

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		require.Len(t, res.Reservations, 1)
		assert.Equal(t, "2026-03-11", res.Reservations[0].ReservationDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := newFixture(t, at(10, 10))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, "tomorrow")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t, at(11, 17))

	f.repo.EXPECT().Get(gomock.Any(), "r1").Return(booking("r1", circular, 11, 19, 2), nil)

	res, err := f.svc.Get(context.Background(), "r1")

	require.NoError(t, err)
	assert.False(t, res.CanModify, "two hours before the start")
	assert.False(t, res.CanCancel)
}
