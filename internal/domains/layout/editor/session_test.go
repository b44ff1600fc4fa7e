package editor_test

import (
	"testing"

	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/layout/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(id string, kind furniture.Kind, number int) editor.Item {
	spec, _ := furniture.Lookup(kind)

	return editor.Item{
		ID:          id,
		Kind:        kind,
		Position:    furniture.Point{X: 100, Y: 100},
		Size:        spec.Size,
		TableNumber: number,
		MaxGuests:   spec.MaxGuests,
	}
}

func TestSession_AddTable(t *testing.T) {
	session := editor.NewSession("room-1")
	session.Load(
		newTable("t1", furniture.KindCircular, 1),
		newTable("t2", furniture.KindCircular, 2),
		newTable("t3", furniture.KindVIP, 1),
	)

	draft, err := session.AddTable(furniture.KindCircular)
	require.NoError(t, err)

	assert.Equal(t, 3, draft.TableNumber)
	assert.Equal(t, furniture.Size{Width: 60, Height: 60}, draft.Size)
	assert.Equal(t, furniture.Point{X: editor.StagingX, Y: editor.StagingY}, draft.Position)
	assert.Equal(t, 2, draft.MaxGuests)
	assert.Zero(t, draft.Rotation)
	assert.Empty(t, draft.ID)
	assert.Len(t, session.Tables(), 3, "drafts are not inserted before merge")

	draft.ID = "t4"
	session.Merge(draft)
	assert.Len(t, session.Tables(), 4)
	assert.Equal(t, "Round table №3", draft.Label())
}

func TestSession_AddTableSkipsTakenNumber(t *testing.T) {
	session := editor.NewSession("room-1")
	session.Load(
		newTable("t1", furniture.KindRectangular, 2),
		newTable("t2", furniture.KindRectangular, 5),
	)

	draft, err := session.AddTable(furniture.KindRectangular)
	require.NoError(t, err)
	assert.Equal(t, 3, draft.TableNumber)

	session.Merge(newTable("t3", furniture.KindRectangular, 3))

	draft, err = session.AddTable(furniture.KindRectangular)
	require.NoError(t, err)
	assert.Equal(t, 4, draft.TableNumber)

	session.Merge(newTable("t4", furniture.KindRectangular, 4))

	draft, err = session.AddTable(furniture.KindRectangular)
	require.NoError(t, err)
	assert.Equal(t, 6, draft.TableNumber)
}

func TestSession_AddRejectsWrongFamily(t *testing.T) {
	session := editor.NewSession("room-1")

	_, err := session.AddTable(furniture.KindBar)
	assert.ErrorIs(t, err, editor.ErrNotTableKind)

	_, err = session.AddStaticItem(furniture.KindVIP)
	assert.ErrorIs(t, err, editor.ErrNotStaticKind)

	item, err := session.AddStaticItem(furniture.Kind("piano"))
	require.NoError(t, err)
	assert.Equal(t, furniture.DefaultSize, item.Size)
}

func TestSession_AddWallNormalizesAngle(t *testing.T) {
	session := editor.NewSession("room-1")

	wall := session.AddWall(100, 100, -90, 80)
	assert.InDelta(t, 270.0, wall.Rotation, 1e-9)
	assert.Equal(t, 80, wall.Length)
	assert.Equal(t, furniture.WallThickness, wall.Size.Height)
}

func TestSession_MoveItem(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   furniture.Point
	}{
		{name: "exact multiples", dx: 10, dy: -15, want: furniture.Point{X: 110, Y: 85}},
		{name: "rounds down", dx: 7, dy: 2, want: furniture.Point{X: 105, Y: 100}},
		{name: "rounds half up", dx: 7.5, dy: 12.5, want: furniture.Point{X: 110, Y: 115}},
		{name: "negative", dx: -8, dy: -3, want: furniture.Point{X: 90, Y: 95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := editor.NewSession("room-1")
			session.Load(newTable("t1", furniture.KindVIP, 1))

			moved, ok := session.MoveItem("t1", tt.dx, tt.dy)
			require.True(t, ok)
			assert.Equal(t, tt.want, moved.Position)
			assert.Equal(t, "t1", moved.ID)
			assert.Equal(t, furniture.KindVIP, moved.Kind)
		})
	}
}

func TestSession_MissingIDIsNoop(t *testing.T) {
	session := editor.NewSession("room-1")
	session.Load(newTable("t1", furniture.KindVIP, 1))

	_, ok := session.MoveItem("nope", 10, 10)
	assert.False(t, ok)

	_, ok = session.RotateItem("nope")
	assert.False(t, ok)

	assert.False(t, session.DeleteItem("nope"))

	_, ok = session.Revert("nope")
	assert.False(t, ok)

	assert.Len(t, session.Items(), 1)
	assert.Empty(t, session.Pending())
}

func TestSession_RotateFourTimes(t *testing.T) {
	session := editor.NewSession("room-1")
	wall := session.AddWall(0, 0, 30, 40)
	wall.ID = "w1"
	session.Load(newTable("t1", furniture.KindBanquet, 1), wall)

	for _, itemID := range []string{"t1", "w1"} {
		before, _ := session.Item(itemID)

		for range 4 {
			_, ok := session.RotateItem(itemID)
			require.True(t, ok)
		}

		after, _ := session.Item(itemID)
		assert.InDelta(t, before.Rotation, after.Rotation, 1e-9)
	}

	rotated, _ := session.RotateItem("t1")
	assert.InDelta(t, 90.0, rotated.Rotation, 1e-9)
}

func TestSession_PendingConfirmRevert(t *testing.T) {
	session := editor.NewSession("room-1")
	session.Load(newTable("t1", furniture.KindVIP, 1), newTable("t2", furniture.KindVIP, 2))

	session.MoveItem("t1", 20, 0)
	session.RotateItem("t2")

	pending := session.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, "t1", pending[0].ID)

	server, _ := session.Item("t1")
	session.Confirm("t1", server)

	reverted, ok := session.Revert("t2")
	require.True(t, ok)
	assert.Zero(t, reverted.Rotation)

	assert.Empty(t, session.Pending())

	confirmed, _ := session.Item("t1")
	assert.Equal(t, 120, confirmed.Position.X)
}

func TestSession_SelectionAndDelete(t *testing.T) {
	session := editor.NewSession("room-1")
	session.Load(newTable("t1", furniture.KindVIP, 1), newTable("t2", furniture.KindVIP, 2))

	session.SelectItem("t1")
	selected, ok := session.Selected()
	require.True(t, ok)
	assert.Equal(t, "t1", selected.ID)

	session.SelectItem("t2")
	selected, _ = session.Selected()
	assert.Equal(t, "t2", selected.ID, "only one item is selected at a time")

	session.SelectItem("empty-canvas")
	_, ok = session.Selected()
	assert.False(t, ok)

	session.SelectItem("t1")
	assert.True(t, session.DeleteItem("t1"))
	_, ok = session.Selected()
	assert.False(t, ok)

	session.SelectItem("t2")
	session.ClearSelection()
	_, ok = session.Selected()
	assert.False(t, ok)
}

func TestSession_CollectionsAndClear(t *testing.T) {
	session := editor.NewSession("room-1")

	bar, err := session.AddStaticItem(furniture.KindBar)
	require.NoError(t, err)
	bar.ID = "s1"

	wall := session.AddWall(0, 0, 0, 40)
	wall.ID = "w1"

	session.Load(newTable("t1", furniture.KindVIP, 1), bar, wall)

	assert.Len(t, session.Tables(), 1)
	assert.Len(t, session.StaticItems(), 1)
	assert.Len(t, session.Walls(), 1)
	assert.Equal(t, "room-1", session.RoomID())

	session.SelectItem("s1")
	session.ClearLayout()

	assert.Empty(t, session.Items())
	_, ok := session.Selected()
	assert.False(t, ok)
}

func TestSession_Preview(t *testing.T) {
	session := editor.NewSession("room-1")
	table := newTable("t1", furniture.KindCircular, 1)
	table.Position = furniture.Point{}
	session.Load(table)

	assert.Equal(t, "ooo\nooo\nooo", session.Preview(20))
}
