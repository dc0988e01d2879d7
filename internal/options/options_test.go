package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type codecConfig struct {
	depth  int
	little bool
	retry  bool
}

func defaultCodecConfig() *codecConfig {
	return &codecConfig{depth: 512, retry: true}
}

var errBadDepth = errors.New("depth must be positive")

func withDepth(d int) Option[*codecConfig] {
	return New(func(c *codecConfig) error {
		if d <= 0 {
			return errBadDepth
		}
		c.depth = d

		return nil
	})
}

func withLittle() Option[*codecConfig] {
	return NoError(func(c *codecConfig) { c.little = true })
}

func withoutRetry() Option[*codecConfig] {
	return NoError(func(c *codecConfig) { c.retry = false })
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := defaultCodecConfig()
		err := Apply(cfg, withDepth(10), withLittle(), withDepth(20))
		require.NoError(t, err)
		require.Equal(t, 20, cfg.depth)
		require.True(t, cfg.little)
		require.True(t, cfg.retry)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := defaultCodecConfig()
		err := Apply(cfg, withDepth(-1), withoutRetry())
		require.ErrorIs(t, err, errBadDepth)
		require.True(t, cfg.retry, "options after the failing one must not run")
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := defaultCodecConfig()
		require.NoError(t, Apply(cfg, nil, withoutRetry()))
		require.False(t, cfg.retry)
	})

	t.Run("empty option list leaves target untouched", func(t *testing.T) {
		cfg := defaultCodecConfig()
		require.NoError(t, Apply(cfg))
		require.Equal(t, defaultCodecConfig(), cfg)
	})
}

func TestBuild(t *testing.T) {
	cfg, err := Build(defaultCodecConfig, withLittle(), withoutRetry())
	require.NoError(t, err)
	require.Equal(t, &codecConfig{depth: 512, little: true, retry: false}, cfg)

	cfg, err = Build(defaultCodecConfig, withDepth(0))
	require.ErrorIs(t, err, errBadDepth)
	require.Nil(t, cfg)
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	require.NoError(t, NoError(func(p *int) { *p = 42 }).apply(&n))
	require.Equal(t, 42, n)
}
