package otel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pureheart/config"
	"pureheart/infras/otel"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}

	tracer, cleanup := otel.New(cfg)
	defer cleanup()

	ctx, scope := tracer.NewScope(context.Background(), "test", "test.span")

	assert.NotNil(t, ctx)
	assert.NotPanics(t, func() {
		scope.SetAttributes(map[string]any{"table": "t-1", "guests": 4, "active": true})
		scope.TraceIfError(errors.New("boom"))
		scope.TraceIfError(nil)
		scope.AddEvent("done")
		scope.End()
	})
}
