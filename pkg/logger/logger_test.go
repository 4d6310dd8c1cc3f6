package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/collection/pkg/logger"
)

type requestIDKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("request_id", id), true
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json at info level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("visible", slog.Int("n", 1))

		records := decode(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "visible", records[0]["msg"])
		assert.Equal(t, "INFO", records[0]["level"])
		assert.InDelta(t, 1, records[0]["n"], 0)
	})

	t.Run("custom level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("shown")
		assert.Len(t, decode(t, &buf), 1)
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithText())
		log.Info("hello", slog.String("locale", "de"))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "locale=de")
	})

	t.Run("applies extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID, nil))

		log.InfoContext(context.WithValue(context.Background(), requestIDKey{}, "abc"), "with id")
		log.InfoContext(context.Background(), "without id")

		records := decode(t, &buf)
		require.Len(t, records, 2)
		assert.Equal(t, "abc", records[0]["request_id"])
		assert.NotContains(t, records[1], "request_id")
	})

	t.Run("extractors survive With and WithGroup", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID)).
			With(slog.String("component", "translations"))

		ctx := context.WithValue(context.Background(), requestIDKey{}, "xyz")
		log.InfoContext(ctx, "first")
		log.WithGroup("g").InfoContext(ctx, "second", slog.Int("n", 2))

		records := decode(t, &buf)
		require.Len(t, records, 2)
		assert.Equal(t, "translations", records[0]["component"])
		assert.Equal(t, "xyz", records[0]["request_id"])
		assert.Equal(t, map[string]any{"n": float64(2), "request_id": "xyz"}, records[1]["g"])
	})

	t.Run("empty sentry dsn logs to output only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{}))
		log.Error("boom")
		records := decode(t, &buf)
		require.Len(t, records, 1)
		assert.Equal(t, "boom", records[0]["msg"])
	})

	t.Run("invalid sentry dsn falls back to output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithSentry(logger.SentryConfig{DSN: "invalid-dsn"}))
		log.Warn("still logged")

		records := decode(t, &buf)
		require.Len(t, records, 2)
		assert.Equal(t, "failed to initialize Sentry", records[0]["msg"])
		assert.Equal(t, "still logged", records[1]["msg"])
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Error("discarded") })
}

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("write failed")
}

func TestMulti(t *testing.T) {
	t.Parallel()

	t.Run("writes to every enabled handler", func(t *testing.T) {
		t.Parallel()
		var debug, warn bytes.Buffer
		h := logger.Multi(
			slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
			slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
		)
		log := slog.New(h).With(slog.String("app", "test"))

		log.Info("info")
		log.Warn("warn")

		assert.Len(t, decode(t, &debug), 2)
		records := decode(t, &warn)
		require.Len(t, records, 1)
		assert.Equal(t, "test", records[0]["app"])
		assert.False(t, h.Enabled(context.Background(), slog.LevelDebug-1))
	})

	t.Run("joins handler errors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ok := slog.NewJSONHandler(&buf, nil)
		h := logger.Multi(failingHandler{ok}, ok, failingHandler{ok})

		err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "msg", 0))
		require.Error(t, err)
		assert.Equal(t, 2, strings.Count(err.Error(), "write failed"))
		assert.Contains(t, buf.String(), `"msg":"msg"`)
	})
}

func TestDecorate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	assert.Same(t, base, logger.Decorate(base))
	assert.Same(t, base, logger.Decorate(base, nil))

	log := slog.New(logger.Decorate(base, requestID))
	log.InfoContext(context.WithValue(context.Background(), requestIDKey{}, "r1"), "decorated")
	records := decode(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0]["request_id"])
}
