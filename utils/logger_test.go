package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	defer SetLogger(nil)

	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("slice extracted", "triangles", 12)
	assert.Contains(t, buf.String(), "triangles=12")

	SetLogger(nil)
	buf.Reset()
	Logger().Info("dropped")
	assert.Empty(t, buf.String())
}
