package tracer_test

import (
	"context"
	"errors"
	"testing"

	"fiscale/internal/verify/tracer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, "test.span",
		tracer.String("key", "value"),
		tracer.Bool("flag", true),
	)

	// Context should be returned unchanged
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	// Span methods should not panic
	span.SetAttributes(tracer.String("another", "attr"))
	span.End(nil)
}

func TestNoopTracer_SpanEndWithError(t *testing.T) {
	tr := tracer.NewNoop()

	_, span := tr.Start(context.Background(), "test.span")
	require.NotNil(t, span)

	span.End(errors.New("test error"))
}

func TestHashIdentifier(t *testing.T) {
	t.Run("empty string returns empty", func(t *testing.T) {
		assert.Empty(t, tracer.HashIdentifier(""))
	})

	t.Run("hash is stable and PII-free", func(t *testing.T) {
		h1 := tracer.HashIdentifier("RSSMRA80A01H501U")
		h2 := tracer.HashIdentifier("RSSMRA80A01H501U")
		assert.Equal(t, h1, h2)
		assert.Len(t, h1, 16)
		assert.NotContains(t, h1, "RSSMRA")
	})

	t.Run("different identifiers hash differently", func(t *testing.T) {
		assert.NotEqual(t,
			tracer.HashIdentifier("RSSMRA80A01H501U"),
			tracer.HashIdentifier("12345678903"),
		)
	})
}
