package model

import (
	"testing"
	"time"

	"pureheart/internal/domains/furniture"

	"github.com/stretchr/testify/assert"
)

func ids(tables []Table) []string {
	res := []string{}
	for _, table := range tables {
		res = append(res, table.ID)
	}

	return res
}

func TestPlanReplacement(t *testing.T) {
	existing := []Table{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	incoming := []Table{{ID: "b", X: 40}, {ID: ""}, {ID: "unknown"}}

	plan := PlanReplacement(existing, incoming)

	assert.Equal(t, []string{"b"}, ids(plan.Update))
	assert.Equal(t, 40, plan.Update[0].X)
	assert.Equal(t, []string{"", "unknown"}, ids(plan.Insert))
	assert.Equal(t, []string{"a", "c"}, ids(plan.Deactivate))
}

func booking(id, table string, day, start, duration, guests int) Booking {
	return Booking{
		ID:              id,
		TableID:         table,
		ReservationDate: time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC),
		StartHour:       start,
		Duration:        duration,
		GuestsCount:     guests,
	}
}

func TestReassign(t *testing.T) {
	tables := []Table{
		{ID: "t2", TypeID: 1, MaxGuests: 2},
		{ID: "t4", TypeID: 1, MaxGuests: 4},
		{ID: "t8", TypeID: 3, MaxGuests: 8},
	}

	tests := []struct {
		name    string
		booking Booking
		tables  []Table
		held    []Booking
		want    string
		wantOK  bool
	}{
		{
			name:    "first table whose bounds admit the party",
			booking: booking("r1", "gone", 14, 18, 2, 2),
			tables:  tables,
			want:    "t2",
			wantOK:  true,
		},
		{
			name:    "skips tables too large for a small party",
			booking: booking("r1", "gone", 14, 18, 2, 1),
			tables:  []Table{{ID: "t8", TypeID: 3, MaxGuests: 8}, {ID: "t2", TypeID: 1, MaxGuests: 2}},
			want:    "t2",
			wantOK:  true,
		},
		{
			name:    "skips a table busy at that time",
			booking: booking("r1", "gone", 14, 18, 2, 2),
			tables:  tables,
			held:    []Booking{booking("r2", "t2", 14, 19, 1, 2)},
			want:    "t4",
			wantOK:  true,
		},
		{
			name:    "back to back booking does not block",
			booking: booking("r1", "gone", 14, 18, 2, 2),
			tables:  tables,
			held:    []Booking{booking("r2", "t2", 14, 20, 2, 2)},
			want:    "t2",
			wantOK:  true,
		},
		{
			name:    "same hour on another date does not block",
			booking: booking("r1", "gone", 14, 18, 2, 2),
			tables:  tables,
			held:    []Booking{booking("r2", "t2", 15, 18, 2, 2)},
			want:    "t2",
			wantOK:  true,
		},
		{
			name:    "party larger than every table",
			booking: booking("r1", "gone", 14, 18, 2, 12),
			tables:  tables,
			wantOK:  false,
		},
		{
			name:    "every fitting table is taken",
			booking: booking("r1", "gone", 14, 18, 2, 4),
			tables:  tables,
			held: []Booking{
				booking("r2", "t4", 14, 17, 3, 4),
				booking("r3", "t8", 14, 19, 1, 6),
			},
			wantOK: false,
		},
		{
			name:    "banquet hall booked earlier that day",
			booking: booking("r1", "gone", 14, 20, 2, 20),
			tables:  []Table{{ID: "hall", TypeID: 5, MaxGuests: 30}},
			held:    []Booking{booking("r2", "hall", 14, 12, 2, 25)},
			wantOK:  false,
		},
		{
			name:    "no tables left",
			booking: booking("r1", "gone", 14, 18, 2, 2),
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reassign(tt.booking, tt.tables, tt.held)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestRelocate(t *testing.T) {
	tables := []Table{
		{ID: "t2", TypeID: 1, MaxGuests: 2},
		{ID: "t8", TypeID: 3, MaxGuests: 8},
	}

	t.Run("same slot bookings do not share a table", func(t *testing.T) {
		moves := Relocate([]Booking{
			booking("r1", "gone-a", 14, 18, 2, 2),
			booking("r2", "gone-b", 14, 18, 2, 2),
			booking("r3", "gone-c", 14, 19, 2, 2),
		}, nil, tables)

		assert.Len(t, moves, 3)
		assert.Equal(t, "t2", moves[0].To.ID)
		assert.False(t, moves[0].Cancelled)
		// t8 only seats four or more, so the second party of two has nowhere to go.
		assert.True(t, moves[1].Cancelled)
		assert.True(t, moves[2].Cancelled)
	})

	t.Run("party that fits nowhere is cancelled", func(t *testing.T) {
		moves := Relocate([]Booking{booking("r1", "gone", 14, 18, 2, 12)}, nil, tables)

		assert.Len(t, moves, 1)
		assert.True(t, moves[0].Cancelled)
		assert.Empty(t, moves[0].To.ID)
	})

	t.Run("existing bookings of remaining tables are respected", func(t *testing.T) {
		held := []Booking{booking("r9", "t8", 14, 18, 3, 6)}

		moves := Relocate([]Booking{
			booking("r1", "gone", 14, 20, 2, 5),
			booking("r2", "gone", 14, 21, 2, 5),
		}, held, tables)

		assert.True(t, moves[0].Cancelled)
		assert.Equal(t, "t8", moves[1].To.ID)
		assert.Len(t, held, 1)
	})

	t.Run("earliest booking is placed first", func(t *testing.T) {
		moves := Relocate([]Booking{
			booking("late", "gone", 15, 18, 2, 2),
			booking("early", "gone", 14, 18, 2, 2),
			booking("clash", "gone", 14, 19, 2, 2),
		}, nil, tables)

		assert.Equal(t, "early", moves[0].Booking.ID)
		assert.Equal(t, "t2", moves[0].To.ID)
		assert.Equal(t, "clash", moves[1].Booking.ID)
		assert.True(t, moves[1].Cancelled)
		assert.Equal(t, "late", moves[2].Booking.ID)
		assert.Equal(t, "t2", moves[2].To.ID)
	})
}

func TestCheckNumbers(t *testing.T) {
	assert.NoError(t, CheckNumbers([]Table{
		{TypeID: 1, TableNumber: 1},
		{TypeID: 1, TableNumber: 2},
		{TypeID: 2, TableNumber: 1},
	}))

	err := CheckNumbers([]Table{{TypeID: 3, TableNumber: 4}, {TypeID: 3, TableNumber: 4}})
	assert.ErrorIs(t, err, ErrDuplicateTableNumber)
	assert.ErrorContains(t, err, "rectangular №4")
}

func TestItems(t *testing.T) {
	width, height := 100, 40

	layout := Layout{
		Tables:      []Table{{ID: "t", TypeID: 1, TableNumber: 3, MaxGuests: 2, X: 10, Y: 20, Rotation: 90}},
		StaticItems: []StaticItem{{ID: "s", Type: "bar", Width: &width, Height: &height}},
		Walls:       []Wall{{ID: "w", X: 0, Y: 0, Rotation: 45, Length: 60}},
	}

	items := layout.Items()

	assert.Len(t, items, 3)
	assert.Equal(t, furniture.KindWall, items[0].Kind)
	assert.Equal(t, 60, items[0].Length)
	assert.Equal(t, furniture.Size{Width: 100, Height: 40}, items[1].Size)
	assert.Equal(t, furniture.KindCircular, items[2].Kind)
	assert.Equal(t, furniture.Size{Width: 60, Height: 60}, items[2].Size)
	assert.Equal(t, 90.0, items[2].Rotation)
	assert.Equal(t, "Round table №3", items[2].Label())
}
