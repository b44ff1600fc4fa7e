package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"pureheart/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("invalid date")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid date",
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("scale must be a number"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "scale must be a number",
		},
		{
			name:     "bad request formatted",
			err:      failure.BadRequestf("guests must be between %d and %d", 2, 4),
			wantCode: http.StatusBadRequest,
			wantMsg:  "guests must be between 2 and 4",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("Missing API key"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Missing API key",
		},
		{
			name:     "not found",
			err:      failure.NotFound("table not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "table not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("table is already booked for this time"),
			wantCode: http.StatusConflict,
			wantMsg:  "table is already booked for this time",
		},
		{
			name:     "forbidden",
			err:      failure.ForbiddenError,
			wantCode: http.StatusForbidden,
			wantMsg:  "You don't have the required permissions",
		},
		{
			name:     "confirmation required",
			err:      failure.ConfirmationRequired,
			wantCode: http.StatusPreconditionRequired,
			wantMsg:  "this operation requires confirm=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "plain error", err: errors.New("connection reset"), want: http.StatusInternalServerError},
		{name: "wrapped conflict", err: fmt.Errorf("create reservation: %w", failure.Conflict("taken")), want: http.StatusConflict},
		{name: "double wrapped", err: fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", failure.NotFound("room"))), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("save layout: %w", failure.Conflict("duplicate table number"))

	assert.True(t, failure.HasCode(wrapped, http.StatusConflict))
	assert.False(t, failure.HasCode(wrapped, http.StatusBadRequest))
	assert.False(t, failure.HasCode(errors.New("boom"), http.StatusInternalServerError))
	assert.False(t, failure.HasCode(nil, http.StatusConflict))
}
