package model

import (
	"errors"
	"fmt"
	"slices"

	"pureheart/internal/domains/reservation/availability"
	"pureheart/internal/domains/reservation/policy"
)

var ErrDuplicateTableNumber = errors.New("table number is used twice")

// Replacement is the effect of a bulk save on a room's active tables.
type Replacement struct {
	Update     []Table
	Insert     []Table
	Deactivate []Table
}

// PlanReplacement matches incoming tables to existing ones by id. Unmatched
// incoming tables are inserted and existing tables missing from the save are
// deactivated, never deleted.
func PlanReplacement(existing, incoming []Table) Replacement {
	plan := Replacement{}
	known := make(map[string]bool, len(existing))
	kept := make(map[string]bool, len(incoming))

	for _, table := range existing {
		known[table.ID] = true
	}

	for _, table := range incoming {
		if table.ID != "" && known[table.ID] {
			plan.Update = append(plan.Update, table)
			kept[table.ID] = true

			continue
		}

		plan.Insert = append(plan.Insert, table)
	}

	for _, table := range existing {
		if !kept[table.ID] {
			plan.Deactivate = append(plan.Deactivate, table)
		}
	}

	return plan
}

// Move is where a booking on a removed table ends up. Cancelled is set when
// no remaining table could take it.
type Move struct {
	Booking   Booking
	To        Table
	Cancelled bool
}

// Reassign picks the first table whose guest bounds admit the party and which
// is free for the booking's window given the bookings it already holds.
func Reassign(booking Booking, tables []Table, held []Booking) (Table, bool) {
	candidates := make([]availability.Table, 0, len(tables))

	for _, table := range tables {
		lo, hi := policy.GuestBounds(table.MaxGuests)
		if booking.GuestsCount < lo || booking.GuestsCount > hi {
			continue
		}

		candidates = append(candidates, availability.Table{
			ID:          table.ID,
			Kind:        table.Kind(),
			TableNumber: table.TableNumber,
			MaxGuests:   table.MaxGuests,
		})
	}

	reservations := make([]availability.Reservation, len(held))
	for i, other := range held {
		reservations[i] = other.Reservation()
	}

	start := booking.StartHour
	result := availability.Check(candidates, reservations, availability.Query{
		Date:      booking.ReservationDate,
		StartHour: &start,
		Duration:  booking.Duration,
		ExcludeID: booking.ID,
	})

	for _, slot := range result {
		if !slot.Available {
			continue
		}

		for _, table := range tables {
			if table.ID == slot.Table.ID {
				return table, true
			}
		}
	}

	return Table{}, false
}

// Relocate moves bookings off removed tables, earliest first. Each booking
// moved counts against the tables chosen for the ones after it.
func Relocate(moving, held []Booking, tables []Table) []Move {
	held = slices.Clone(held)
	moves := make([]Move, 0, len(moving))

	moving = slices.Clone(moving)
	slices.SortStableFunc(moving, func(a, b Booking) int {
		if c := a.ReservationDate.Compare(b.ReservationDate); c != 0 {
			return c
		}

		return a.StartHour - b.StartHour
	})

	for _, booking := range moving {
		target, ok := Reassign(booking, tables, held)
		if ok {
			moved := booking
			moved.TableID = target.ID
			held = append(held, moved)
		}

		moves = append(moves, Move{Booking: booking, To: target, Cancelled: !ok})
	}

	return moves
}

// CheckNumbers rejects two tables of the same type sharing a number.
func CheckNumbers(tables []Table) error {
	type key struct{ typeID, number int }

	seen := make(map[key]bool, len(tables))

	for _, table := range tables {
		k := key{table.TypeID, table.TableNumber}
		if seen[k] {
			return fmt.Errorf("%w: %s №%d", ErrDuplicateTableNumber, table.Kind(), table.TableNumber)
		}

		seen[k] = true
	}

	return nil
}
