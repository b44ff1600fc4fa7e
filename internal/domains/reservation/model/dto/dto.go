package dto

import (
	"errors"
	"fmt"
	"time"

	"pureheart/internal/domains/furniture"
	"pureheart/internal/domains/reservation/availability"
	"pureheart/internal/domains/reservation/model"
	"pureheart/internal/domains/reservation/policy"
	"pureheart/shared"
	"pureheart/shared/constant"
	gDto "pureheart/shared/dto"
	gModel "pureheart/shared/model"
	"pureheart/shared/timezone"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be a full hour formatted as HH:00")
)

func ParseDate(value string) (time.Time, error) {
	date, err := timezone.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}

// ParseHour reads "19:00" as 19. Only full hours are bookable.
func ParseHour(value string) (int, error) {
	t, err := time.Parse(constant.HourFormat, value)
	if err != nil || t.Minute() != 0 {
		return 0, ErrInvalidTime
	}

	return t.Hour(), nil
}

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func FormatHours(hours []int) []string {
	res := make([]string, len(hours))
	for i, h := range hours {
		res[i] = FormatHour(h)
	}

	return res
}

type AvailabilityRequest struct {
	RoomID   string `json:"room_id"  validate:"omitempty,uuid"`
	Date     string `json:"date"     validate:"required"`
	Time     string `json:"time"`
	Duration int    `json:"duration" validate:"omitempty,min=1"`
	Exclude  string `json:"exclude"  validate:"omitempty,uuid"`
}

type TableAvailabilityResponse struct {
	TableID        string   `json:"table_id"`
	TypeID         int      `json:"type_id"`
	Kind           string   `json:"kind"`
	Label          string   `json:"label"`
	TableNumber    int      `json:"table_number"`
	MinGuests      int      `json:"min_guests"`
	MaxGuests      int      `json:"max_guests"`
	Available      bool     `json:"available"`
	AvailableTimes []string `json:"available_times,omitempty"`
}

func (r *TableAvailabilityResponse) FromResult(res availability.TableAvailability, typeID int) {
	r.TableID = res.Table.ID
	r.TypeID = typeID
	r.Kind = string(res.Table.Kind)
	r.Label = furniture.Label(res.Table.Kind, res.Table.TableNumber)
	r.TableNumber = res.Table.TableNumber
	r.MinGuests, r.MaxGuests = policy.GuestBounds(res.Table.MaxGuests)
	r.Available = res.Available

	if res.AvailableTimes != nil {
		r.AvailableTimes = FormatHours(res.AvailableTimes)
	}
}

type AvailabilityResponse struct {
	RoomID   string                      `json:"room_id"`
	Date     string                      `json:"date"`
	Time     string                      `json:"time,omitempty"`
	Duration int                         `json:"duration"`
	Tables   []TableAvailabilityResponse `json:"tables"`
}

type SlotsRequest struct {
	Date     string `json:"date"     validate:"required"`
	Time     string `json:"time"`
	Duration int    `json:"duration" validate:"omitempty,min=1"`
}

// SlotsResponse is the selection after rolling forward. Rolled is set when the
// requested date had no slot left.
type SlotsResponse struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Duration int      `json:"duration"`
	Slots    []string `json:"slots"`
	Rolled   bool     `json:"rolled"`
}

type CreateReservationRequest struct {
	TableID         string `json:"table_id"         validate:"required,uuid"`
	ReservationDate string `json:"reservation_date" validate:"required"`
	ReservationTime string `json:"reservation_time" validate:"required"`
	Duration        int    `json:"duration"         validate:"required,min=1"`
	GuestsCount     int    `json:"guests_count"     validate:"required,min=1"`
	FirstName       string `json:"first_name"       validate:"required,max=50"`
	LastName        string `json:"last_name"        validate:"omitempty,max=50"`
	Phone           string `json:"phone"            validate:"required,max=30"`
}

// ToPolicy parses the wire date and time into a request the booking rules can check.
func (c *CreateReservationRequest) ToPolicy() (policy.Request, error) {
	date, err := ParseDate(c.ReservationDate)
	if err != nil {
		return policy.Request{}, err
	}

	hour, err := ParseHour(c.ReservationTime)
	if err != nil {
		return policy.Request{}, err
	}

	return policy.Request{
		Date:      date,
		StartHour: hour,
		Duration:  c.Duration,
		Guests:    c.GuestsCount,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}, nil
}

func (c *CreateReservationRequest) ToModel(req policy.Request, user string) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		TableID:         c.TableID,
		ReservationDate: model.CalendarDate(req.Date),
		StartHour:       req.StartHour,
		Duration:        req.Duration,
		GuestsCount:     req.Guests,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           policy.NormalizePhone(req.Phone),
		Status:          constant.ReservationStatusPending,
		Metadata:        gModel.NewMetadata(user),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	TableID         string `json:"table_id"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	EndTime         string `json:"end_time"`
	Duration        int    `json:"duration"`
	GuestsCount     int    `json:"guests_count"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Status          string `json:"status"`
	CanModify       bool   `json:"can_modify"`
	CanCancel       bool   `json:"can_cancel"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(m model.Reservation, pol policy.Policy, now time.Time) {
	r.ID = m.ID
	r.TableID = m.TableID
	r.ReservationDate = m.Day()
	r.ReservationTime = FormatHour(m.StartHour)
	r.EndTime = FormatHour(m.StartHour + m.Duration)
	r.Duration = m.Duration
	r.GuestsCount = m.GuestsCount
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.Phone = policy.FormatPhone(m.Phone)
	r.Status = m.Status
	r.CanModify = !m.IsCancelled() && pol.CanModify(m.Start(), now)
	r.CanCancel = !m.IsCancelled() && pol.CanCancel(m.Start(), now)
	r.Metadata.FromModel(m.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int, pol policy.Policy, now time.Time) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, pol, now)
	}
}
