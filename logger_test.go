package bitvec

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := New(4096, WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"allocation completed"`)
	assert.Contains(t, buf.String(), `"bits":4096`)

	buf.Reset()
	require.NoError(t, v.BuildRankParallel(context.Background(), 2))
	assert.Contains(t, buf.String(), `"msg":"rank build completed"`)
	assert.Contains(t, buf.String(), `"workers":2`)

	buf.Reset()
	_, err = New(math.MaxUint64, WithLogger(l))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"msg":"allocation failed"`)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	v, err := New(640, WithMetrics(m))
	require.NoError(t, err)
	_, err = v.Rank(639)
	require.NoError(t, err)

	assert.Equal(t, int64(1), m.AllocCount.Load())
	assert.Equal(t, footprint(10), m.AllocBytes.Load())
	assert.Equal(t, int64(1), m.RankBuildCount.Load())
	assert.Equal(t, int64(10), m.RankBuildWords.Load())

	v.Release()
	assert.Zero(t, m.LiveBytes())

	var noop MetricsCollector = NoopMetricsCollector{}
	noop.RecordAlloc(1, nil)
	noop.RecordRelease(1)
	noop.RecordRankBuild(1, 0)
}
