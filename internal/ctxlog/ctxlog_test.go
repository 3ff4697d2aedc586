package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := With(WithLogger(context.Background(), logger), "script", "intro.lua")
	FromContext(ctx).Debug("Decoding started.")

	assert.Contains(t, buf.String(), "script=intro.lua")
	assert.Contains(t, buf.String(), `msg="Decoding started."`)
}
