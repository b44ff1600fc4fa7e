package timezone_test

import (
	"pureheart/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestStartOfDayAndAt(t *testing.T) {
	day, err := timezone.Parse("2006-01-02 15:04", "2024-03-10 17:45")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	start := timezone.StartOfDay(day)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 10 {
		t.Errorf("expected midnight of the 10th, got %v", start)
	}

	evening := timezone.At(day, 18)
	if evening.Hour() != 18 || evening.Day() != 10 {
		t.Errorf("expected 18:00 on the 10th, got %v", evening)
	}

	midnight := timezone.At(day, 24)
	if midnight.Day() != 11 || midnight.Hour() != 0 {
		t.Errorf("expected hour 24 to roll to the 11th, got %v", midnight)
	}

	if !timezone.SameDay(day, evening) {
		t.Error("expected SameDay to hold within one date")
	}
	if timezone.SameDay(day, midnight) {
		t.Error("expected SameDay to fail across midnight")
	}
}
