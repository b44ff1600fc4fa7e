// Package policy holds the reservation rules: bookable hours, same-day cutoff,
// party size bounds, customer details and the lead times for changes.
package policy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pureheart/config"
	"pureheart/shared/failure"
	"pureheart/shared/timezone"
	"pureheart/shared/validator"
)

var (
	ErrDateInPast      = errors.New("reservation date is in the past")
	ErrDateTooFar      = errors.New("reservation date is too far ahead")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidSlot     = errors.New("start time is not available")
	ErrGuestCount      = errors.New("guest count out of range")
	ErrInvalidName     = errors.New("name may contain only letters, spaces and hyphens")
	ErrInvalidPhone    = errors.New("phone must match +7 (XXX) XXX-XX-XX")
)

type Policy struct {
	OpeningHour  int
	LastSlotHour int
	ClosingHour  int
	MaxDuration  int
	MaxDaysAhead int
	CancelLead   time.Duration
	ModifyLead   time.Duration
}

func Default() Policy {
	return Policy{
		OpeningHour:  12,
		LastSlotHour: 23,
		ClosingHour:  24,
		MaxDuration:  6,
		MaxDaysAhead: 14,
		CancelLead:   6 * time.Hour,
		ModifyLead:   3 * time.Hour,
	}
}

func New(cfg *config.Config) Policy {
	p := Default()
	r := cfg.Reservation

	if r.OpeningHour > 0 {
		p.OpeningHour = r.OpeningHour
	}

	if r.LastSlotHour > 0 {
		p.LastSlotHour = r.LastSlotHour
	}

	if r.ClosingHour > 0 {
		p.ClosingHour = r.ClosingHour
	}

	if r.MaxDurationHours > 0 {
		p.MaxDuration = r.MaxDurationHours
	}

	if r.MaxDaysAhead > 0 {
		p.MaxDaysAhead = r.MaxDaysAhead
	}

	if r.CancelLeadHours > 0 {
		p.CancelLead = time.Duration(r.CancelLeadHours) * time.Hour
	}

	if r.ModifyLeadHours > 0 {
		p.ModifyLead = time.Duration(r.ModifyLeadHours) * time.Hour
	}

	return p
}

// Slots lists the start hours offered on date for the duration: opening to the
// last slot hour, ending by closing time, and on today's date only hours after now.
func (p Policy) Slots(date time.Time, duration int, now time.Time) []int {
	slots := []int{}
	today := timezone.SameDay(date, now)
	currentHour := timezone.ToAppTime(now).Hour()

	for hour := p.OpeningHour; hour <= p.LastSlotHour; hour++ {
		if hour+duration > p.ClosingHour {
			continue
		}

		if today && hour <= currentHour {
			continue
		}

		slots = append(slots, hour)
	}

	return slots
}

type Selection struct {
	Date      time.Time
	StartHour int
	Duration  int
}

// Resolve keeps a selection bookable. When the date has no slot left it moves
// to the next day at opening time for one hour; a start hour that is no longer
// offered moves to the first offered one.
func (p Policy) Resolve(sel Selection, now time.Time) Selection {
	if sel.Duration < 1 || sel.Duration > p.MaxDuration {
		sel.Duration = 1
	}

	date := timezone.StartOfDay(sel.Date)
	if date.Before(timezone.StartOfDay(now)) {
		date = timezone.StartOfDay(now)
	}

	slots := p.Slots(date, sel.Duration, now)
	if len(slots) == 0 {
		return Selection{
			Date:      date.AddDate(0, 0, 1),
			StartHour: p.OpeningHour,
			Duration:  1,
		}
	}

	sel.Date = date
	if !slices.Contains(slots, sel.StartHour) {
		sel.StartHour = slots[0]
	}

	return sel
}

// Start is the moment the reservation begins in restaurant time.
func (p Policy) Start(date time.Time, hour int) time.Time {
	return timezone.At(date, hour)
}

// CanCancel holds while the start is more than CancelLead away.
func (p Policy) CanCancel(start, now time.Time) bool {
	return now.Before(start.Add(-p.CancelLead))
}

// CanModify holds while the start is more than ModifyLead away.
func (p Policy) CanModify(start, now time.Time) bool {
	return now.Before(start.Add(-p.ModifyLead))
}

func (p Policy) ValidateDate(date, now time.Time) error {
	day := timezone.StartOfDay(date)
	today := timezone.StartOfDay(now)

	if day.Before(today) {
		return ErrDateInPast
	}

	if day.After(today.AddDate(0, 0, p.MaxDaysAhead)) {
		return fmt.Errorf("%w: at most %d days", ErrDateTooFar, p.MaxDaysAhead)
	}

	return nil
}

func (p Policy) ValidateDuration(duration int) error {
	if duration < 1 || duration > p.MaxDuration {
		return fmt.Errorf("%w: must be between 1 and %d hours", ErrInvalidDuration, p.MaxDuration)
	}

	return nil
}

// ValidateSlot checks the start hour is among the offered slots.
func (p Policy) ValidateSlot(date time.Time, hour, duration int, now time.Time) error {
	if !slices.Contains(p.Slots(date, duration, now), hour) {
		return fmt.Errorf("%w: %02d:00 for %dh", ErrInvalidSlot, hour, duration)
	}

	return nil
}

// GuestBounds is [ceil(max/2), max] with a floor of one guest.
func GuestBounds(maxGuests int) (int, int) {
	if maxGuests < 1 {
		return 1, 1
	}

	return max(1, (maxGuests+1)/2), maxGuests
}

func ValidateGuests(count, maxGuests int) error {
	lo, hi := GuestBounds(maxGuests)
	if count < lo || count > hi {
		return fmt.Errorf("%w: must be between %d and %d", ErrGuestCount, lo, hi)
	}

	return nil
}

func ValidateName(name string) error {
	if !validator.IsPersonName(name) {
		return ErrInvalidName
	}

	return nil
}

const (
	phoneDigits  = 11
	phoneCountry = '7'
	phoneMarks   = "+()- "
)

// ValidatePhone accepts a +7 number typed as bare digits or in the display
// mask. Its digits must be exactly eleven and start with 7, the form that is stored.
func ValidatePhone(phone string) error {
	stray := strings.IndexFunc(phone, func(r rune) bool {
		return (r < '0' || r > '9') && !strings.ContainsRune(phoneMarks, r)
	})

	d := NormalizePhone(phone)
	if stray >= 0 || len(d) != phoneDigits || d[0] != phoneCountry {
		return ErrInvalidPhone
	}

	return nil
}

// NormalizePhone keeps digits only, the form stored and sent over the wire.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, phone)
}

// FormatPhone masks digits as +7 (XXX) XXX-XX-XX. Partial input is masked as far as it goes.
func FormatPhone(phone string) string {
	d := NormalizePhone(phone)

	switch n := len(d); {
	case n == 0:
		return ""
	case n == 1:
		return "+" + d
	case n <= 4:
		return "+7 (" + d[1:]
	case n <= 7:
		return fmt.Sprintf("+7 (%s) %s", d[1:4], d[4:])
	case n <= 9:
		return fmt.Sprintf("+7 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	default:
		return fmt.Sprintf("+7 (%s) %s-%s-%s", d[1:4], d[4:7], d[7:9], d[9:min(n, 11)])
	}
}

type Request struct {
	Date      time.Time
	StartHour int
	Duration  int
	Guests    int
	FirstName string
	LastName  string
	Phone     string
}

// Validate checks a request against the table capacity and returns a single
// bad request failure listing every problem.
func (p Policy) Validate(req Request, maxGuests int, now time.Time) error {
	errs := []error{}

	if err := p.ValidateDate(req.Date, now); err != nil {
		errs = append(errs, err)
	}

	if err := p.ValidateDuration(req.Duration); err != nil {
		errs = append(errs, err)
	} else if err := p.ValidateSlot(req.Date, req.StartHour, req.Duration, now); err != nil {
		errs = append(errs, err)
	}

	if err := ValidateGuests(req.Guests, maxGuests); err != nil {
		errs = append(errs, err)
	}

	if err := ValidateName(req.FirstName); err != nil {
		errs = append(errs, fmt.Errorf("first name: %w", err))
	}

	if req.LastName != "" {
		if err := ValidateName(req.LastName); err != nil {
			errs = append(errs, fmt.Errorf("last name: %w", err))
		}
	}

	if err := ValidatePhone(req.Phone); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return failure.BadRequest(fmt.Errorf("%s: %w", strings.Join(msgs, "; "), errors.Join(errs...))) // nolint:wrapcheck
}

