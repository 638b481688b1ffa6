package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Settings{LogLevel: "warn"}, s)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xrange.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config_dir: /tmp/x\nseed: 42\nlog:\n  level: debug\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", s.ConfigDir)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, "debug", s.LogLevel)

	t.Setenv("XRANGE_LOG_LEVEL", "error")
	t.Setenv("XRANGE_SEED", "7")
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", s.LogLevel)
	assert.Equal(t, uint64(7), s.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
