package dirs

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDirsMandatoryFields(t *testing.T) {
	t.Parallel()

	u, err := NewUserDirs("com.example", "Example", "myapp")
	require.NoError(t, err)

	d := u.Dirs()
	for _, path := range []string{d.ConfigDir, d.DataDir, d.CacheDir} {
		require.NotEmpty(t, path)
		assert.True(t, filepath.IsAbs(path), "%s is not absolute", path)
	}

	assert.Equal(t, d.DataDir, d.DataLocalDir)
	assert.NotEmpty(t, d.LogDir)

	// macOS maps both config and data onto Application Support
	if runtime.GOOS != "darwin" {
		assert.NotEqual(t, d.ConfigDir, d.DataDir)
	}
}

func TestUserDirsEmptyApplication(t *testing.T) {
	t.Parallel()

	_, err := NewUserDirs("com.example", "Example", "")
	require.ErrorIs(t, err, ErrInvalidIdentity)
}

func TestUserDirsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := NewUserDirs("com.example", "Example", "myapp")
	require.NoError(t, err)
	second, err := NewUserDirs("com.example", "Example", "myapp")
	require.NoError(t, err)

	assert.Equal(t, first.Dirs(), second.Dirs())
}

func TestUserDirsHonorXDGOverrides(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG environment overrides are only authoritative on Linux")
	}

	// Registered before Setenv so the reload runs after the variables
	// are restored.
	t.Cleanup(xdg.Reload)

	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(base, "runtime"))
	xdg.Reload()

	u, err := NewUserDirs("com.example", "Example", "myapp")
	require.NoError(t, err)

	d := u.Dirs()
	assert.Equal(t, filepath.Join(base, "config", "myapp"), d.ConfigDir)
	assert.Equal(t, filepath.Join(base, "data", "myapp"), d.DataDir)
	assert.Equal(t, filepath.Join(base, "cache", "myapp"), d.CacheDir)
	assert.Equal(t, filepath.Join(base, "state", "myapp"), d.LogDir)
	assert.Equal(t, filepath.Join(base, "runtime", "myapp"), d.RuntimeDir)
}
