package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type sinkConfig struct {
	indent int
	name   string
	calls  []string
}

func withIndent(n int) Option[*sinkConfig] {
	return New(func(c *sinkConfig) error {
		if n < 0 {
			return errors.New("indent cannot be negative")
		}
		c.indent = n
		c.calls = append(c.calls, "indent")

		return nil
	})
}

func withName(name string) Option[*sinkConfig] {
	return NoError(func(c *sinkConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &sinkConfig{}
		err := Apply(cfg, withName("grid"), withIndent(4), withName("mesh"))
		require.NoError(t, err)
		require.Equal(t, 4, cfg.indent)
		require.Equal(t, "mesh", cfg.name)
		require.Equal(t, []string{"name", "indent", "name"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &sinkConfig{}
		err := Apply(cfg, withIndent(-1), withName("unreached"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "indent cannot be negative")
		require.Empty(t, cfg.name)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &sinkConfig{indent: 2}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 2, cfg.indent)
	})

	t.Run("nil option is skipped", func(t *testing.T) {
		cfg := &sinkConfig{}
		require.NoError(t, Apply(cfg, nil, withName("a")))
		require.Equal(t, "a", cfg.name)
	})
}
