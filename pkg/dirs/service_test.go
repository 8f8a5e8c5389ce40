package dirs

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDirsUnix(t *testing.T) {
	t.Parallel()

	for _, goos := range []string{"linux", "darwin", "freebsd", "openbsd", "solaris"} {
		goos := goos
		t.Run(goos, func(t *testing.T) {
			t.Parallel()

			d, err := serviceDirsFor(goos, Identity{Organization: "Example", Application: "myapp"})
			require.NoError(t, err)

			assert.Equal(t, "/etc/myapp", d.ConfigDir)
			assert.Equal(t, "/var/lib/myapp", d.DataDir)
			assert.Equal(t, "/var/lib/myapp", d.DataLocalDir)
			assert.Equal(t, "/var/cache/myapp", d.CacheDir)
			assert.Equal(t, "/var/log/myapp", d.LogDir)
			assert.Equal(t, "/run/myapp", d.RuntimeDir)
		})
	}
}

func TestServiceDirsWindows(t *testing.T) {
	t.Parallel()

	const profile = `C:\Windows\ServiceProfiles\NetworkService\AppData`

	d, err := serviceDirsFor("windows", Identity{Organization: "Example", Application: "myapp"})
	require.NoError(t, err)

	assert.Equal(t, profile+`\Roaming\Example\myapp\config`, d.ConfigDir)
	assert.Equal(t, profile+`\Roaming\Example\myapp\data`, d.DataDir)
	assert.Equal(t, profile+`\Local\Example\myapp\data`, d.DataLocalDir)
	assert.Equal(t, profile+`\Local\Example\myapp\cache`, d.CacheDir)
	assert.Empty(t, d.LogDir)
	assert.Empty(t, d.RuntimeDir)
}

func TestServiceDirsWindowsOrganizationFallback(t *testing.T) {
	t.Parallel()

	d, err := serviceDirsFor("windows", Identity{Application: "myapp"})
	require.NoError(t, err)

	assert.Contains(t, d.ConfigDir, `\Roaming\myapp\myapp\`)
}

func TestServiceDirsUnknownPlatform(t *testing.T) {
	t.Parallel()

	for _, goos := range []string{"js", "wasip1", "plan9"} {
		_, err := serviceDirsFor(goos, Identity{Application: "myapp"})
		require.ErrorIs(t, err, ErrUnsupportedPlatform)
	}
}

func TestNewServiceDirs(t *testing.T) {
	t.Parallel()

	s, err := NewServiceDirs("Example", "myapp")
	require.NoError(t, err)

	if runtime.GOOS != "windows" {
		assert.Equal(t, "/etc/myapp", s.ConfigDir())
		assert.Equal(t, "/var/lib/myapp", s.DataDir())
		assert.Equal(t, "/var/cache/myapp", s.CacheDir())
	}
}

func TestNewServiceDirsRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		organization string
		application  string
	}{
		{name: "empty application"},
		{name: "slash in application", application: "my/app"},
		{name: "traversal in application", application: ".."},
		{name: "slash in organization", organization: "ex/ample", application: "myapp"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewServiceDirs(tt.organization, tt.application)
			require.ErrorIs(t, err, ErrInvalidIdentity)
		})
	}
}
