package availability_test

import (
	"testing"
	"time"

	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/reservation/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func hour(h int) *int {
	return &h
}

func booking(id, table string, start, duration int) availability.Reservation {
	return availability.Reservation{ID: id, TableID: table, Date: day, StartHour: start, Duration: duration}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b availability.Interval
		want bool
	}{
		{name: "touching end to start", a: availability.NewInterval(12, 2), b: availability.NewInterval(14, 1), want: false},
		{name: "touching start to end", a: availability.NewInterval(14, 1), b: availability.NewInterval(12, 2), want: false},
		{name: "partial overlap", a: availability.NewInterval(17, 2), b: availability.NewInterval(18, 2), want: true},
		{name: "contained", a: availability.NewInterval(12, 6), b: availability.NewInterval(14, 1), want: true},
		{name: "identical", a: availability.NewInterval(20, 1), b: availability.NewInterval(20, 1), want: true},
		{name: "disjoint", a: availability.NewInterval(12, 1), b: availability.NewInterval(20, 2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.a.Start < tt.b.End && tt.b.Start < tt.a.End, tt.a.Overlaps(tt.b))
		})
	}
}

func TestConflicts(t *testing.T) {
	base := booking("r1", "t1", 12, 2)

	assert.False(t, availability.Conflicts(base, booking("r2", "t1", 14, 1)), "back to back bookings do not conflict")
	assert.True(t, availability.Conflicts(base, booking("r2", "t1", 13, 1)))
	assert.False(t, availability.Conflicts(base, booking("r2", "t2", 13, 1)), "different table")

	otherDay := booking("r2", "t1", 13, 1)
	otherDay.Date = day.AddDate(0, 0, 1)
	assert.False(t, availability.Conflicts(base, otherDay), "different date")

	cancelled := booking("r2", "t1", 13, 1)
	cancelled.Cancelled = true
	assert.False(t, availability.Conflicts(base, cancelled), "cancelled bookings never block")
}

func TestCheck_WithStartHour(t *testing.T) {
	tables := []availability.Table{
		{ID: "t1", Kind: furniture.KindRectangular},
		{ID: "t2", Kind: furniture.KindCircular},
	}
	reservations := []availability.Reservation{booking("r1", "t1", 17, 2)}

	tests := []struct {
		name  string
		query availability.Query
		want  map[string]bool
	}{
		{
			name:  "overlapping window",
			query: availability.Query{Date: day, StartHour: hour(18), Duration: 2},
			want:  map[string]bool{"t1": false, "t2": true},
		},
		{
			name:  "window starting when booking ends",
			query: availability.Query{Date: day, StartHour: hour(19), Duration: 1},
			want:  map[string]bool{"t1": true, "t2": true},
		},
		{
			name:  "own booking excluded while editing",
			query: availability.Query{Date: day, StartHour: hour(18), Duration: 2, ExcludeID: "r1"},
			want:  map[string]bool{"t1": true, "t2": true},
		},
		{
			name:  "other date",
			query: availability.Query{Date: day.AddDate(0, 0, 1), StartHour: hour(17), Duration: 2},
			want:  map[string]bool{"t1": true, "t2": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := availability.Check(tables, reservations, tt.query)
			require.Len(t, result, len(tables))

			for _, res := range result {
				assert.Equal(t, tt.want[res.Table.ID], res.Available, res.Table.ID)
			}
		})
	}
}

func TestCheck_AvailableTimes(t *testing.T) {
	tables := []availability.Table{{ID: "t1", Kind: furniture.KindVIP}}
	reservations := []availability.Reservation{booking("r1", "t1", 14, 2)}

	result := availability.Check(tables, reservations, availability.Query{
		Date:       day,
		Duration:   2,
		Candidates: []int{12, 13, 14, 15, 16, 17},
	})

	require.Len(t, result, 1)
	assert.True(t, result[0].Available)
	assert.Equal(t, []int{12, 16, 17}, result[0].AvailableTimes)

	full := availability.Check(tables, []availability.Reservation{booking("r1", "t1", 12, 6)}, availability.Query{
		Date:       day,
		Duration:   1,
		Candidates: []int{12, 13, 14},
	})
	assert.False(t, full[0].Available)
	assert.Empty(t, full[0].AvailableTimes)
}

func TestCheck_BanquetLockedForDay(t *testing.T) {
	tables := []availability.Table{
		{ID: "hall", Kind: furniture.KindBanquet},
		{ID: "t1", Kind: furniture.KindVIP},
	}
	reservations := []availability.Reservation{booking("r1", "hall", 12, 1)}

	result := availability.Check(tables, reservations, availability.Query{Date: day, StartHour: hour(20), Duration: 1})
	assert.False(t, result[0].Available, "banquet hall is held for the whole day")
	assert.True(t, result[1].Available)

	editing := availability.Check(tables, reservations, availability.Query{Date: day, StartHour: hour(20), Duration: 1, ExcludeID: "r1"})
	assert.True(t, editing[0].Available)
}

func TestFreeStarts(t *testing.T) {
	bookings := []availability.Reservation{booking("r1", "t1", 18, 2)}

	assert.Equal(t, []int{12, 13, 14, 15, 20, 21}, availability.FreeStarts(bookings, []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21}, 3))
	assert.True(t, availability.IsFree(nil, availability.NewInterval(12, 1)))
}
