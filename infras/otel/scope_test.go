package otel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestToAttribute(t *testing.T) {
	at := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  attribute.Value
	}{
		{name: "string", value: "room-1", want: attribute.StringValue("room-1")},
		{name: "int", value: 4, want: attribute.IntValue(4)},
		{name: "float", value: 90.5, want: attribute.Float64Value(90.5)},
		{name: "ints", value: []int{18, 19}, want: attribute.IntSliceValue([]int{18, 19})},
		{name: "duration", value: 1500 * time.Millisecond, want: attribute.Int64Value(1500)},
		{name: "time", value: at, want: attribute.StringValue("2026-03-14T18:00:00Z")},
		{name: "fallback", value: struct{ X int }{X: 1}, want: attribute.StringValue("{1}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := toAttribute("key", tt.value)

			assert.Equal(t, attribute.Key("key"), kv.Key)
			assert.Equal(t, tt.want, kv.Value)
		})
	}
}
