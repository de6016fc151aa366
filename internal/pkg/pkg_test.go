package pkg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_UniqueAndOrdered(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}

		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_WritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("dropped")
	logger.Warn("kept", "post_id", "p1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "p1", line["post_id"])
}

type customErr struct{}

func (*customErr) Error() string { return "custom" }

func TestRootCause(t *testing.T) {
	base := &customErr{}
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", base))

	assert.Same(t, base, RootCause(wrapped))
	assert.Equal(t, io.EOF, RootCause(io.EOF))
	assert.Nil(t, RootCause(nil))
}

func TestRootCause_MultiWrap(t *testing.T) {
	base := &customErr{}
	joined := fmt.Errorf("lock: %w: %w", fmt.Errorf("acquire: %w", base), io.EOF)

	assert.Same(t, base, RootCause(joined))
	assert.Equal(t, "customErr", TypeName(RootCause(joined)))
	assert.Same(t, base, RootCause(errors.Join(base, io.EOF)))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "customErr", TypeName(&customErr{}))
	assert.Equal(t, "errorString", TypeName(errors.New("x")))
	assert.Equal(t, "string", TypeName("boom"))
	assert.Equal(t, "nil", TypeName(nil))
}
