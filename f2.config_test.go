package f2

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig([]byte(`
cache_size: 16
builtins: false
types:
  q: j
  S: s
`))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CacheSize)
	require.NotNil(t, cfg.Builtins)
	assert.False(t, *cfg.Builtins)
	assert.Equal(t, map[string]string{"q": "j", "S": "s"}, cfg.Types)

	opts, err := cfg.Options()
	require.NoError(t, err)
	engine, err := New(opts...)
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "q"}, engine.Types())
	assert.Equal(t, 16, engine.CacheStats().Capacity)
	assert.Equal(t, `"x" y %s`, engine.Format("%q %S %s", "x", "y"))
}

func TestLoadConfig_JSON(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"cache_size": 8, "types": {"n": "d"}}`))
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	engine := MustNew(opts...)

	assert.Equal(t, []string{"d", "j", "n", "s"}, engine.Types())
	assert.Equal(t, "007", engine.Format("%.3n", 7))
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig([]byte("cache_size: [1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgConfigParse)
	})

	t.Run("negative cache size", func(t *testing.T) {
		_, err := LoadConfig([]byte("cache_size: -1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidCacheSize)
	})

	t.Run("unknown builtin", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("types: {q: x}"))
		require.NoError(t, err)

		_, err = cfg.Options()
		require.Error(t, err)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		builtin, ok := customErr.GetMetadata(MetaKeyBuiltin)
		assert.True(t, ok)
		assert.Equal(t, "x", builtin)
	})

	t.Run("invalid code surfaces in New", func(t *testing.T) {
		cfg, err := LoadConfig([]byte("types: {qq: s}"))
		require.NoError(t, err)

		opts, err := cfg.Options()
		require.NoError(t, err)
		_, err = New(opts...)
		assert.True(t, IsInvalidTypeCode(err))
	})
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f2.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_size: 3\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.CacheSize)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	got, ok := customErr.GetMetadata(MetaKeyPath)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "missing.yaml"), got)
}
