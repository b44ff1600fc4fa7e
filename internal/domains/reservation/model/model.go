package model

import (
	"time"

	"pureheart/internal/domains/reservation/availability"
	"pureheart/shared/constant"
	"pureheart/shared/model"
	"pureheart/shared/timezone"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldTableID         = "table_id"
	FieldReservationDate = "reservation_date"
	FieldStartHour       = "start_hour"
	FieldDuration        = "duration"
	FieldGuestsCount     = "guests_count"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldPhone           = "phone"
	FieldStatus          = "status"

	TableNameTables = "tables"
	EntityNameTable = "table"
)

// Reservation books one table for whole hours on a date. ReservationDate is a
// calendar date held at UTC midnight, the way the driver returns DATE columns.
type Reservation struct {
	ID              string    `db:"id"`
	TableID         string    `db:"table_id"`
	ReservationDate time.Time `db:"reservation_date"`
	StartHour       int       `db:"start_hour"`
	Duration        int       `db:"duration"`
	GuestsCount     int       `db:"guests_count"`
	FirstName       string    `db:"first_name"`
	LastName        string    `db:"last_name"`
	Phone           string    `db:"phone"`
	Status          string    `db:"status"`
	model.Metadata
}

// CalendarDate keeps the restaurant-time calendar day of t at UTC midnight.
func CalendarDate(t time.Time) time.Time {
	local := timezone.ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Day is the date as YYYY-MM-DD.
func (r Reservation) Day() string {
	return r.ReservationDate.Format(constant.DayFormat)
}

// Date is midnight of the reservation day in restaurant time.
func (r Reservation) Date() time.Time {
	date, err := timezone.Parse(constant.DayFormat, r.Day())
	if err != nil {
		return time.Time{}
	}

	return date
}

// Start is the moment the reservation begins in restaurant time.
func (r Reservation) Start() time.Time {
	return timezone.At(r.Date(), r.StartHour)
}

func (r Reservation) IsCancelled() bool {
	return r.Status == constant.ReservationStatusCancelled
}

func (r Reservation) Booking() availability.Reservation {
	return availability.Reservation{
		ID:        r.ID,
		TableID:   r.TableID,
		Date:      r.Date(),
		StartHour: r.StartHour,
		Duration:  r.Duration,
		Cancelled: r.IsCancelled(),
	}
}

func Bookings(reservations []Reservation) []availability.Reservation {
	res := make([]availability.Reservation, len(reservations))
	for i, r := range reservations {
		res[i] = r.Booking()
	}

	return res
}

// TableLock is the row locked while a table's bookings are re-checked.
type TableLock struct {
	ID       string `db:"id"`
	IsActive bool   `db:"is_active"`
}
