package reservation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "pureheart/infras/otel/mocks"
	"pureheart/internal/domains/reservation/model/dto"
	"pureheart/internal/domains/reservation/service/mocks"
	"pureheart/internal/handlers/reservation"
	gDto "pureheart/shared/dto"
	"pureheart/shared/failure"
)

const createBody = `{
	"table_id":"3f1c5a4e-8d0b-4f8e-9c61-7a2b1d3e4f50",
	"reservation_date":"2026-03-11",
	"reservation_time":"19:00",
	"duration":2,
	"guests_count":2,
	"first_name":"Anna",
	"phone":"+7 (912) 345-67-89"
}`

func newRouter(t *testing.T) (http.Handler, *mocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReservation(ctrl)

	handler := reservation.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_GetAvailability(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
	}{
		{
			name:   "query forwarded",
			target: "/reserve/availability?date=2026-03-11&time=19:00&duration=2",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Availability(gomock.Any(), dto.AvailabilityRequest{
					Date:     "2026-03-11",
					Time:     "19:00",
					Duration: 2,
				}).Return(dto.AvailabilityResponse{Date: "2026-03-11"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "duration is not a number",
			target:    "/reserve/availability?date=2026-03-11&duration=two",
			setupMock: func(*mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing date",
			target:    "/reserve/availability",
			setupMock: func(*mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "room is not a uuid",
			target:    "/reserve/availability?date=2026-03-11&room_id=hall",
			setupMock: func(*mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "service rejects the date",
			target: "/reserve/availability?date=2025-01-01",
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Availability(gomock.Any(), gomock.Any()).
					Return(dto.AvailabilityResponse{}, failure.BadRequestFromString("date is in the past"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetSlots(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Slots(gomock.Any(), dto.SlotsRequest{Date: "2026-03-11", Duration: 1}).
		Return(dto.SlotsResponse{Date: "2026-03-12", Time: "12:00", Rolled: true}, nil)

	rec := serve(router, http.MethodGet, "/reserve/slots?date=2026-03-11&duration=1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rolled":true`)
}

func TestHandler_CreateReservation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
	}{
		{
			name: "booked",
			body: createBody,
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ any, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
						assert.Equal(t, "19:00", req.ReservationTime)
						assert.Equal(t, 2, req.GuestsCount)

						return dto.ReservationResponse{ID: "res-1"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing fields",
			body:      `{"table_id":"3f1c5a4e-8d0b-4f8e-9c61-7a2b1d3e4f50"}`,
			setupMock: func(*mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "slot taken",
			body: createBody,
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.ReservationResponse{}, failure.Conflict("the table is already booked for this time"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPost, "/reserve", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), "2026-03-11").DoAndReturn(
		func(_ any, params gDto.QueryParams, _ string) (dto.GetReservationsResponse, error) {
			assert.Equal(t, 20, params.Limit)

			return dto.GetReservationsResponse{}, nil
		})

	rec := serve(router, http.MethodGet, "/reserve?date=2026-03-11&limit=20", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ReservationByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "res-1").Return(dto.ReservationResponse{ID: "res-1"}, nil)
	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "res-1").
		Return(dto.ReservationResponse{}, failure.BadRequestFromString("reservations can only be changed more than 3 hours before the start"))
	svc.EXPECT().Cancel(gomock.Any(), "res-1").Return(nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/reserve/res-1", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPut, "/reserve/res-1", createBody).Code)

	rec := serve(router, http.MethodDelete, "/reserve/res-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reservation cancelled successfully")
}

func TestHandler_UpdateReservationStatus(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockReservation)
		wantCode  int
	}{
		{
			name: "confirmed",
			body: `{"status":"confirmed"}`,
			setupMock: func(svc *mocks.MockReservation) {
				svc.EXPECT().UpdateStatus(gomock.Any(), dto.UpdateStatusRequest{Status: "confirmed"}, "res-1").
					Return(dto.ReservationResponse{ID: "res-1", Status: "confirmed"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown status",
			body:      `{"status":"seated"}`,
			setupMock: func(*mocks.MockReservation) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPatch, "/reserve/res-1/status", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
