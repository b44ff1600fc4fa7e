package service

import "time"

// SetClock fixes the service's notion of now.
func SetClock(svc Reservation, now time.Time) {
	svc.(*serviceImpl).now = func() time.Time { return now }
}
