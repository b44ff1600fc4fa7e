package validator_test

import (
	"pureheart/shared/failure"
	"pureheart/shared/validator"
	"strings"
	"testing"
)

type bookingForm struct {
	Name     string `validate:"required,personname"          json:"name"`
	Phone    string `validate:"required,phone"               json:"phone"`
	Guests   int    `validate:"gte=1,lte=20"                 json:"guests"`
	Date     string `validate:"required,datetime=2006-01-02" json:"date"`
	Rotation int    `validate:"rotation"                     json:"rotation"`
}

func validForm() bookingForm {
	return bookingForm{
		Name:     "Анна-Мария Smith",
		Phone:    "+7 (912) 345-67-89",
		Guests:   4,
		Date:     "2026-03-14",
		Rotation: 270,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *bookingForm)
		wantMsg string
	}{
		{
			name:   "valid form",
			mutate: func(*bookingForm) {},
		},
		{
			name:    "missing name",
			mutate:  func(f *bookingForm) { f.Name = "" },
			wantMsg: "Name is required",
		},
		{
			name:    "name with digits",
			mutate:  func(f *bookingForm) { f.Name = "R2D2" },
			wantMsg: "Name may contain only letters, spaces and hyphens",
		},
		{
			name:    "phone without mask",
			mutate:  func(f *bookingForm) { f.Phone = "89123456789" },
			wantMsg: "Phone must match +7 (XXX) XXX-XX-XX",
		},
		{
			name:    "too many guests",
			mutate:  func(f *bookingForm) { f.Guests = 21 },
			wantMsg: "Guests must be less than or equal to 20",
		},
		{
			name:    "date in wrong layout",
			mutate:  func(f *bookingForm) { f.Date = "14.03.2026" },
			wantMsg: "Date must be a date in 2006-01-02 format",
		},
		{
			name:    "rotation off the quarter turns",
			mutate:  func(f *bookingForm) { f.Rotation = 45 },
			wantMsg: "Rotation must be a multiple of 90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := validator.ValidateStruct(&form)

			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("expected no validation error, got: %v", err)
				}

				return
			}

			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}

			if !failure.HasCode(err, 400) {
				t.Errorf("expected a bad request failure, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "room id", field: "5c1c7b3e-0a41-4d7e-9a52-0c8f6fd1b1a0", tag: "uuid", expectError: false},
		{name: "room id garbage", field: "room-1", tag: "uuid", expectError: true},
		{name: "status", field: "confirmed", tag: "oneof=pending confirmed cancelled", expectError: false},
		{name: "unknown status", field: "seated", tag: "oneof=pending confirmed cancelled", expectError: true},
		{name: "negative rotation still a quarter turn", field: -90, tag: "rotation", expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"name":"Ivan","phone":"+7 (912) 345-67-89","guests":2,"date":"2026-03-14","rotation":0}`,
		},
		{
			name:        "invalid phone",
			jsonBody:    `{"name":"Ivan","phone":"+1 555 0100","guests":2,"date":"2026-03-14"}`,
			expectError: true,
		},
		{
			name:        "malformed body",
			jsonBody:    `{"name":"Ivan","phone":}`,
			expectError: true,
		},
		{
			name:        "empty body",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form bookingForm

			err := validator.Validate(strings.NewReader(tt.jsonBody), &form)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestIsPhone(t *testing.T) {
	valid := []string{"+7 (912) 345-67-89", "+7 (000) 000-00-00"}
	invalid := []string{"", "+7 912 345-67-89", "8 (912) 345-67-89", "+7 (912) 345-67-8", "+7 (912) 345-67-899"}

	for _, phone := range valid {
		if !validator.IsPhone(phone) {
			t.Errorf("expected %q to be accepted", phone)
		}
	}

	for _, phone := range invalid {
		if validator.IsPhone(phone) {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}

func TestIsPersonName(t *testing.T) {
	if validator.IsPersonName("   ") {
		t.Error("blank name accepted")
	}

	if !validator.IsPersonName("Ёлкина Ольга") {
		t.Error("cyrillic name rejected")
	}
}
