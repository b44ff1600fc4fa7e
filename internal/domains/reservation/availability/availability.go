// Package availability decides which tables are free for a date, start hour and duration.
// Two bookings of one table conflict when their half-open intervals on the same date overlap,
// so a booking ending at 14:00 leaves the table free for one starting at 14:00.
package availability

import (
	"slices"
	"time"

	"pureheart/internal/domains/furniture"
)

const minutesPerHour = 60

// Interval is a half-open range [Start, End) in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

func NewInterval(startHour, durationHours int) Interval {
	return Interval{
		Start: startHour * minutesPerHour,
		End:   (startHour + durationHours) * minutesPerHour,
	}
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

type Table struct {
	ID          string
	Kind        furniture.Kind
	TableNumber int
	MaxGuests   int
}

type Reservation struct {
	ID        string
	TableID   string
	Date      time.Time
	StartHour int
	Duration  int
	Cancelled bool
}

func (r Reservation) Interval() Interval {
	return NewInterval(r.StartHour, r.Duration)
}

// Conflicts reports whether a and b hold the same table at overlapping times on the same date.
// Cancelled bookings never conflict.
func Conflicts(a, b Reservation) bool {
	if a.Cancelled || b.Cancelled {
		return false
	}

	return a.TableID == b.TableID && SameDate(a.Date, b.Date) && a.Interval().Overlaps(b.Interval())
}

func SameDate(a, b time.Time) bool {
	return a.Format(time.DateOnly) == b.Format(time.DateOnly)
}

// Query selects a window. Without StartHour, every hour in Candidates is tried instead.
type Query struct {
	Date       time.Time
	StartHour  *int
	Duration   int
	ExcludeID  string
	Candidates []int
}

type TableAvailability struct {
	Table          Table
	Available      bool
	AvailableTimes []int
}

// Check evaluates every table against the reservations. The reservation named
// by ExcludeID is ignored, so a booking being edited does not block itself.
// A banquet hall booked at any hour is unavailable for the whole date.
func Check(tables []Table, reservations []Reservation, query Query) []TableAvailability {
	byTable := map[string][]Reservation{}

	for _, res := range reservations {
		if res.Cancelled || (query.ExcludeID != "" && res.ID == query.ExcludeID) || !SameDate(res.Date, query.Date) {
			continue
		}

		byTable[res.TableID] = append(byTable[res.TableID], res)
	}

	result := make([]TableAvailability, 0, len(tables))

	for _, table := range tables {
		booked := byTable[table.ID]
		availability := TableAvailability{Table: table}

		switch {
		case table.Kind == furniture.KindBanquet && len(booked) > 0:
			availability.AvailableTimes = []int{}
		case query.StartHour != nil:
			availability.Available = IsFree(booked, NewInterval(*query.StartHour, query.Duration))
		default:
			availability.AvailableTimes = FreeStarts(booked, query.Candidates, query.Duration)
			availability.Available = len(availability.AvailableTimes) > 0
		}

		result = append(result, availability)
	}

	return result
}

// IsFree reports whether window overlaps none of the bookings.
func IsFree(bookings []Reservation, window Interval) bool {
	return !slices.ContainsFunc(bookings, func(r Reservation) bool {
		return !r.Cancelled && r.Interval().Overlaps(window)
	})
}

// FreeStarts filters candidate start hours down to those free for the duration.
func FreeStarts(bookings []Reservation, candidates []int, duration int) []int {
	free := []int{}

	for _, hour := range candidates {
		if IsFree(bookings, NewInterval(hour, duration)) {
			free = append(free, hour)
		}
	}

	return free
}
