package dirs

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// UserDirs provides the current user's standard application
// directories, following the platform convention in effect: XDG base
// directories on Unix, the known-folder layout on Windows and the
// Library domains on macOS.
//
// The log directory lives under the state directory, which the XDG base
// directory specification designates for logs and history data. The
// runtime directory is absent when the platform defines none. On macOS
// config and data resolve to the same Application Support folder, and
// on every platform the local data directory equals the data directory.
type UserDirs struct {
	dirs Dirs
}

// NewUserDirs resolves the per-user directories for the given identity
// parts. Qualifier and organization may be empty; they only contribute
// to the directory name on macOS and Windows.
func NewUserDirs(qualifier, organization, application string) (*UserDirs, error) {
	id := Identity{Qualifier: qualifier, Organization: organization, Application: application}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	name := id.userDirName()
	data := filepath.Join(xdg.DataHome, name)

	d := Dirs{
		ConfigDir:    filepath.Join(xdg.ConfigHome, name),
		DataDir:      data,
		DataLocalDir: data,
		CacheDir:     filepath.Join(xdg.CacheHome, name),
		LogDir:       filepath.Join(xdg.StateHome, name),
	}
	if xdg.RuntimeDir != "" {
		d.RuntimeDir = filepath.Join(xdg.RuntimeDir, name)
	}

	return &UserDirs{dirs: d}, nil
}

func (u *UserDirs) CacheDir() string  { return u.dirs.CacheDir }
func (u *UserDirs) ConfigDir() string { return u.dirs.ConfigDir }
func (u *UserDirs) DataDir() string   { return u.dirs.DataDir }

// Dirs returns the full set of resolved directories.
func (u *UserDirs) Dirs() Dirs { return u.dirs }
