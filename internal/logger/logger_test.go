package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger(t *testing.T) {
	t.Run("tags entries with the role", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger("stubserver")
		l.Logger = l.Output(&buf)

		l.Info().Msg("hello")

		entry := logEntry(t, &buf)
		assert.Equal(t, "stubserver", entry["role"])
		assert.Contains(t, entry, "time")
	})

	t.Run("caller field is named func", func(t *testing.T) {
		NewLogger("agent")
		assert.Equal(t, "func", zerolog.CallerFieldName)
	})

	t.Run("global level is debug", func(t *testing.T) {
		NewLogger("agent")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})
}

func TestNewAgentLogger(t *testing.T) {
	l := NewAgentLogger("agent")
	require.NotNil(t, l)

	// writes must not panic even when the log file fell back to stdout
	l.Info().Msg("agent logger smoke test")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("agent")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	assert.Equal(t, "agent", logEntry(t, &buf)["role"])
}

func TestFromContext(t *testing.T) {
	t.Run("bare context yields a usable logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("returns the attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("holder", "drain-1").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "drain-1", logEntry(t, &buf)["holder"])
	})
}

func TestWithContext_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("agent")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("round trip")

	assert.Equal(t, "agent", logEntry(t, &buf)["role"])
}

func TestFromRequest(t *testing.T) {
	t.Run("bare request yields a usable logger", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/items/item-a", nil)
		require.NotNil(t, FromRequest(req))
	})

	t.Run("returns the logger on the request context", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "abc123").Logger()

		req := httptest.NewRequest(http.MethodGet, "/api/items/item-a", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		FromRequest(req).Info().Msg("from request")

		assert.Equal(t, "abc123", logEntry(t, &buf)["trace_id"])
	})
}
