package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLoggerWritesLevelsAboveThreshold(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewTextLogger(&buf, "info")
	require.NoError(t, err)

	ctx := context.Background()
	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	assert.NotContains(t, out, "msg=dbg")
	assert.Contains(t, out, "level=INFO msg=inf b=2")
	assert.Contains(t, out, "level=WARN msg=wrn c=3")
	assert.Contains(t, out, "level=ERROR msg=err d=4")
}

func TestWithAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewTextLogger(&buf, "debug")
	require.NoError(t, err)

	log.With("module", "nickserv/gender").Debug(context.Background(), "hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "module=nickserv/gender")
	assert.Contains(t, out, "k=v")
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")

	_, err = NewTextLogger(&bytes.Buffer{}, "verbose")
	require.Error(t, err)
}
