package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datagrid/pkg/logger"
)

type ctxKey string

func TestDecorate(t *testing.T) {
	t.Parallel()

	t.Run("injects extracted attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.Decorate(
			slog.NewJSONHandler(&buf, nil),
			func(ctx context.Context) (slog.Attr, bool) {
				if id, ok := ctx.Value(ctxKey("grid")).(string); ok {
					return slog.String("grid", id), true
				}
				return slog.Attr{}, false
			},
		))

		ctx := context.WithValue(context.Background(), ctxKey("grid"), "articles")
		log.InfoContext(ctx, "loaded")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "articles", entry["grid"])
	})

	t.Run("extractor returning false adds nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.Decorate(
			slog.NewJSONHandler(&buf, nil),
			func(context.Context) (slog.Attr, bool) { return slog.Attr{}, false },
		))
		log.Info("loaded")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.NotContains(t, entry, "grid")
	})

	t.Run("nil extractors are filtered", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(logger.Decorate(slog.NewJSONHandler(&buf, nil), nil, nil))

		assert.NotPanics(t, func() { log.Info("loaded") })
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Warn("dropped filter value", slog.String("field", "status"))
	})
}
