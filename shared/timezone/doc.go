// Package timezone pins every clock reading to the restaurant's local zone.
//
// Reservation dates are calendar days and start hours are wall-clock hours in
// that zone, so conversions go through here rather than time.Local:
//
//	today := timezone.StartOfDay(timezone.Now())
//	start := timezone.At(today, 18) // 18:00 local
//	same := timezone.SameDay(start, booking.Date)
//
// The zone comes from APP_TIMEZONE (an IANA name such as "Europe/Moscow") and
// is loaded once on import; an unknown name falls back to UTC with an error log.
package timezone
