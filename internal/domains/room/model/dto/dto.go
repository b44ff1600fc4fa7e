package dto

import (
	"pureheart/internal/domains/room/model"
	"pureheart/shared"
	gDto "pureheart/shared/dto"
	gModel "pureheart/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(user),
	}
}

// DefaultRoom is the room created on first access when none is marked default.
func DefaultRoom(user string) model.Room {
	return model.Room{
		ID:        uuid.NewString(),
		Name:      model.DefaultName,
		IsDefault: true,
		Metadata:  gModel.NewMetadata(user),
	}
}

type UpdateRoomRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
}

type RoomResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.IsDefault = model.IsDefault
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
