package dto

import (
	"testing"

	"pureheart/internal/domains/room/model"
	gModel "pureheart/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := CreateRoomRequest{Name: "Terrace", Description: "Summer seating"}

	room := req.ToModel("staff")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "Terrace", room.Name)
	assert.Equal(t, "Summer seating", room.Description)
	assert.False(t, room.IsDefault)
	assert.Equal(t, "staff", room.CreatedBy)
	assert.Equal(t, "staff", room.ModifiedBy)
}

func TestDefaultRoom(t *testing.T) {
	room := DefaultRoom("guest")

	assert.Equal(t, model.DefaultName, room.Name)
	assert.True(t, room.IsDefault)
	assert.NotEmpty(t, room.ID)
}

func TestGetRoomsResponse_FromModels(t *testing.T) {
	models := []model.Room{
		{ID: "1", Name: "Main hall", IsDefault: true, Metadata: gModel.Metadata{CreatedBy: "a"}},
		{ID: "2", Name: "Terrace"},
	}

	var res GetRoomsResponse
	res.FromModels(models, 11, 5)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
	assert.True(t, res.Rooms[0].IsDefault)
	assert.Equal(t, "a", res.Rooms[0].CreatedBy)
	assert.Equal(t, "Terrace", res.Rooms[1].Name)
}
