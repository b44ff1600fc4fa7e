package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pureheart/config"
	"pureheart/infras/otel/mocks"
	roomMocks "pureheart/internal/domains/room/mocks"
	"pureheart/internal/domains/room/model"
	"pureheart/internal/domains/room/model/dto"
	"pureheart/internal/domains/room/service"
	cacheMocks "pureheart/shared/cache/mocks"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	"pureheart/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{Name: "Terrace"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{Name: "Terrace"},
			setupMock: func() {
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff")
			res, err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "staff", res.CreatedBy)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{
		{ID: "1", Name: "Main hall", IsDefault: true},
		{ID: "2", Name: "Terrace"},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:1", gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "1", Name: "Main hall"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:1", gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "room:get:1", gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), "1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Main hall", res.Name)
		})
	}
}

func TestRoomService_Default(t *testing.T) {
	t.Run("existing default room", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "room:default", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetDefault(gomock.Any()).Return(model.Room{ID: "1", Name: "Main hall", IsDefault: true}, nil)

		res, err := svc.Default(context.Background())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "1", res.ID)
	})

	t.Run("creates the default room lazily", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "room:default", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetDefault(gomock.Any()).Return(model.Room{}, nil)
		mockRepo.EXPECT().InsertDefault(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
			assert.True(t, room.IsDefault)
			assert.Equal(t, model.DefaultName, room.Name)
			assert.NotEmpty(t, room.ID)

			return room, nil
		})

		res, err := svc.Default(context.Background())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, model.DefaultName, res.Name)
		assert.True(t, res.IsDefault)
	})

	t.Run("concurrent creation returns the winner", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "room:default", gomock.Any()).Return(errors.New("cache miss"))
		gomock.InOrder(
			mockRepo.EXPECT().GetDefault(gomock.Any()).Return(model.Room{}, nil),
			mockRepo.EXPECT().InsertDefault(gomock.Any(), gomock.Any()).Return(model.Room{ID: "winner", IsDefault: true}, nil),
		)

		res, err := svc.Default(context.Background())

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "winner", res.ID)
	})

	t.Run("insert fails", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "room:default", gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetDefault(gomock.Any()).Return(model.Room{}, nil)
		mockRepo.EXPECT().InsertDefault(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))

		_, err := svc.Default(context.Background())
		assert.Error(t, err)
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "room:default", gomock.Any()).Return(nil)

		_, err := svc.Default(context.Background())
		assert.NoError(t, err)
	})
}

func TestRoomService_Update(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful update",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "Veranda", fields[model.FieldName])
					assert.Equal(t, "staff", fields[constant.FieldModifiedBy])

					return nil
				})
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff")
			err := svc.Update(ctx, dto.UpdateRoomRequest{Name: "Veranda"}, "2")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "2"}, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "default room is kept",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "2", IsDefault: true}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "room with reservations",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "2"}, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "2")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
