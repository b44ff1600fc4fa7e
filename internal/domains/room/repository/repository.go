package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"pureheart/infras/otel"
	"pureheart/infras/postgres"
	"pureheart/internal/domains/room/model"
	gDto "pureheart/shared/dto"
	gRepo "pureheart/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// GetDefault returns the zero Room when no default exists yet.
	GetDefault(ctx context.Context) (model.Room, error)
	// InsertDefault stores room as the default. When another request created
	// one first, the partial unique index rejects the insert and the stored
	// default is returned instead.
	InsertDefault(ctx context.Context, room model.Room) (model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

var defaultFilter = gDto.And(gDto.Eq(model.TableName, model.FieldIsDefault, true))

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDefault(ctx context.Context) (model.Room, error) {
	return r.Get(ctx, defaultFilter)
}

func (r *repositoryImpl) InsertDefault(ctx context.Context, room model.Room) (model.Room, error) {
	err := r.Insert(ctx, room)

	switch {
	case err == nil:
		return room, nil
	case gRepo.IsUniqueViolation(err):
		return r.GetDefault(ctx)
	default:
		return model.Room{}, err
	}
}
