package bitvec

import (
	"context"
	"testing"

	"github.com/hupe1980/bitvec/resource"
	"github.com/hupe1980/bitvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_RangeThenSet(t *testing.T) {
	v, err := New(100)
	require.NoError(t, err)
	require.NoError(t, v.SetRange(0, 50))

	tests := []struct {
		pos  uint64
		want uint64
	}{
		{0, 1},
		{49, 50},
		{50, 50},
		{99, 50},
	}
	for _, tt := range tests {
		got, err := v.Rank(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "rank(%d)", tt.pos)
	}

	require.NoError(t, v.Set(60))
	got, err := v.Rank(99)
	require.NoError(t, err)
	assert.Equal(t, uint64(51), got)
}

func TestRank_OutOfRange(t *testing.T) {
	v, err := New(100)
	require.NoError(t, err)
	require.NoError(t, v.SetRange(0, 100))

	_, err = v.Rank(100)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.Equal(t, uint64(100), v.RankClamped(100))
	assert.Equal(t, uint64(100), v.RankClamped(1<<40))

	empty, err := New(0)
	require.NoError(t, err)
	assert.Zero(t, empty.RankClamped(0))
	assert.True(t, empty.RankValid())
	_, err = empty.Rank(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestRank_MatchesModel(t *testing.T) {
	rng := testutil.NewRNG(7)

	for _, nbits := range []int{1, 64, 511, 512, 513, 4099} {
		for _, density := range []float64{0, 0.05, 0.5, 1} {
			model := rng.Bits(nbits, density)
			v := fromBools(t, model)

			for pos := 0; pos < nbits; pos++ {
				got, err := v.Rank(uint64(pos))
				require.NoError(t, err)
				require.Equal(t, testutil.Rank(model, pos), got, "nbits=%d density=%v pos=%d", nbits, density, pos)
			}
			assert.Equal(t, testutil.Count(model), v.Count())
			assert.Equal(t, testutil.Count(model) > 0, v.Any())
			assert.Equal(t, testutil.Count(model) == 0, v.None())
		}
	}
}

func TestBuildRankParallel(t *testing.T) {
	rng := testutil.NewRNG(11)
	model := rng.Bits(1<<17, 0.3)

	rc := resource.NewController(resource.Config{MaxBackgroundWorkers: 3})
	m := &BasicMetricsCollector{}
	v := fromBools(t, model, WithController(rc), WithMetrics(m))

	require.NoError(t, v.BuildRankParallel(context.Background(), 0))
	assert.True(t, v.RankValid())
	assert.Equal(t, int64(1), m.RankBuildCount.Load())
	assert.Equal(t, int64(v.Words()), m.RankBuildWords.Load())

	for _, pos := range []int{0, 1, 4095, 4096, 65535, 100_000, 1<<17 - 1} {
		got, err := v.Rank(uint64(pos))
		require.NoError(t, err)
		assert.Equal(t, testutil.Rank(model, pos), got, "pos %d", pos)
	}
	assert.Equal(t, int64(1), m.RankBuildCount.Load(), "valid index must not rebuild")
}

func TestBuildRankParallel_Canceled(t *testing.T) {
	v, err := New(1 << 20)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, v.BuildRankParallel(ctx, 4), context.Canceled)
	assert.False(t, v.RankValid())

	r, err := v.Rank(1<<20 - 1)
	require.NoError(t, err)
	assert.Zero(t, r)
	assert.True(t, v.RankValid())
}

func TestCount_UsesIndexWhenValid(t *testing.T) {
	v, err := New(1000)
	require.NoError(t, err)
	require.NoError(t, v.SetRange(100, 333))

	assert.Equal(t, uint64(333), v.Count())
	v.BuildRank()
	assert.Equal(t, uint64(333), v.Count())
}

func BenchmarkRank(b *testing.B) {
	rng := testutil.NewRNG(1)
	v := fromBools(b, rng.Bits(1<<20, 0.5))
	v.BuildRank()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.RankClamped(uint64(i) & (1<<20 - 1))
	}
}

func BenchmarkBuildRank(b *testing.B) {
	rng := testutil.NewRNG(1)
	v := fromBools(b, rng.Bits(1<<20, 0.5))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.BuildRank()
	}
}
