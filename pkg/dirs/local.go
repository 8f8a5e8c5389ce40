package dirs

import (
	"fmt"
	"os"
	"path/filepath"
)

// DevRootName is the directory used under the current working directory
// when no explicit development root is given.
const DevRootName = ".dev"

// LocalDirs provides directories under a single local root. It is meant
// for development runs from a source checkout, so that repeated runs do
// not pollute the real user or system directories.
//
// With <base> being the root, the layout is:
//
//	config  <base>/config
//	data    <base>/data
//	cache   <base>/cache
//	log     <base>/log
//	runtime <base>/run
type LocalDirs struct {
	dirs Dirs
}

// NewLocalDirs creates local directories rooted at ".dev" under the
// current working directory.
func NewLocalDirs() (*LocalDirs, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}
	return NewLocalDirsAt(filepath.Join(cwd, DevRootName)), nil
}

// NewLocalDirsAt creates local directories rooted at base. A relative
// base is made absolute against the current working directory.
func NewLocalDirsAt(base string) *LocalDirs {
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}

	data := filepath.Join(base, "data")
	return &LocalDirs{dirs: Dirs{
		ConfigDir:    filepath.Join(base, "config"),
		DataDir:      data,
		DataLocalDir: data,
		CacheDir:     filepath.Join(base, "cache"),
		LogDir:       filepath.Join(base, "log"),
		RuntimeDir:   filepath.Join(base, "run"),
	}}
}

func (l *LocalDirs) CacheDir() string  { return l.dirs.CacheDir }
func (l *LocalDirs) ConfigDir() string { return l.dirs.ConfigDir }
func (l *LocalDirs) DataDir() string   { return l.dirs.DataDir }

// Dirs returns the full set of resolved directories.
func (l *LocalDirs) Dirs() Dirs { return l.dirs }
